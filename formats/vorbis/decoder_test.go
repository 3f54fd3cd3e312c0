// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/ik5/sonipix/audio"
)

// fakeOgg mimics oggvorbis.Reader: Read returns a multiple of channels
// values and io.EOF once drained.
type fakeOgg struct {
	rate     int
	channels int
	data     []float32
	err      error
}

func (f *fakeOgg) SampleRate() int { return f.rate }
func (f *fakeOgg) Channels() int   { return f.channels }

func (f *fakeOgg) Read(p []float32) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	if len(f.data) == 0 {
		return 0, io.EOF
	}
	n := copy(p, f.data)
	f.data = f.data[n:]
	return n, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{"text", []byte("This is not Ogg Vorbis data")},
		{"empty", nil},
		{"ogg magic only", []byte("OggS")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := (Decoder{}).Decode(bytes.NewReader(tt.data)); err == nil {
				t.Error("Decode() error = nil, want error")
			}
		})
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := newSource(&fakeOgg{rate: 48000, channels: 2})

	if src.SampleRate() != 48000 {
		t.Errorf("SampleRate() = %d, want 48000", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
	if src.BufSize() != 4096 {
		t.Errorf("BufSize() = %d, want 4096", src.BufSize())
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	src := newSource(&fakeOgg{rate: 8000, channels: 2, data: []float32{0.1, -0.1, 0.2, -0.2, 0.3, -0.3}})

	dst := make([]float32, 5)
	n, err := src.ReadSamples(dst)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 4 {
		t.Fatalf("ReadSamples() n = %d, want 4 (whole frames only)", n)
	}

	n, err = src.ReadSamples(dst)
	if err != nil || n != 2 {
		t.Fatalf("ReadSamples() = (%d, %v), want (2, nil)", n, err)
	}
	if dst[0] != 0.3 || dst[1] != -0.3 {
		t.Errorf("last frame = %v, want [0.3 -0.3]", dst[:2])
	}

	if n, err := src.ReadSamples(dst); n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() at end = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestSource_DstShorterThanFrame(t *testing.T) {
	t.Parallel()

	src := newSource(&fakeOgg{rate: 8000, channels: 2, data: []float32{1, 1}})

	if _, err := src.ReadSamples(make([]float32, 1)); !errors.Is(err, audio.ErrInvalidDstSize) {
		t.Errorf("ReadSamples() error = %v, want ErrInvalidDstSize", err)
	}
	if n, err := src.ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = (%d, %v), want (0, nil)", n, err)
	}
}

func TestSource_DecodeError(t *testing.T) {
	t.Parallel()

	boom := errors.New("bad packet")
	src := newSource(&fakeOgg{rate: 8000, channels: 1, err: boom})

	if _, err := src.ReadSamples(make([]float32, 8)); !errors.Is(err, boom) {
		t.Errorf("ReadSamples() error = %v, want wrapped bad packet", err)
	}
}

func TestSource_ZeroChannelsClamped(t *testing.T) {
	t.Parallel()

	if got := newSource(&fakeOgg{rate: 8000}).Channels(); got != 1 {
		t.Errorf("Channels() = %d, want 1", got)
	}
}

func TestSource_Collect(t *testing.T) {
	t.Parallel()

	src := newSource(&fakeOgg{rate: 8000, channels: 2, data: []float32{1, 0, 0.5, 0.5, -1, 0}})

	got, err := audio.Collect(src, 8000)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	want := []float64{0.5, 0.5, -0.5}
	if len(got) != len(want) {
		t.Fatalf("Collect() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Collect()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
