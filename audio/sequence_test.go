// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"testing"
)

func TestSequenceSource_ReadAll(t *testing.T) {
	t.Parallel()

	data := []float64{0.5, -0.5, 0.25, -0.25, 0.125}
	src := NewSequenceSource(data, 48000)

	if src.SampleRate() != 48000 || src.Channels() != 1 || src.Len() != 5 {
		t.Fatalf("metadata = %d Hz, %d ch, %d samples", src.SampleRate(), src.Channels(), src.Len())
	}

	buf := make([]float32, 2)
	var got []float32
	for {
		n, err := src.ReadSamples(buf)
		got = append(got, buf[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	if len(got) != len(data) {
		t.Fatalf("read %d samples, want %d", len(got), len(data))
	}
	for i := range data {
		if got[i] != float32(data[i]) {
			t.Errorf("got[%d] = %v, want %v", i, got[i], data[i])
		}
	}
	if src.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0", src.Remaining())
	}
}

func TestSequenceSource_Reset(t *testing.T) {
	t.Parallel()

	src := NewSequenceSource([]float64{1, 2, 3}, 8000)
	buf := make([]float32, 8)

	n, err := src.ReadSamples(buf)
	if n != 3 || err != io.EOF {
		t.Fatalf("ReadSamples() = %d, %v, want 3, io.EOF", n, err)
	}

	n, err = src.ReadSamples(buf)
	if n != 0 || err != io.EOF {
		t.Fatalf("ReadSamples() after end = %d, %v, want 0, io.EOF", n, err)
	}

	src.Reset()
	if src.Remaining() != 3 {
		t.Errorf("Remaining() after Reset = %d, want 3", src.Remaining())
	}
}

func TestSequenceSource_EmptyDst(t *testing.T) {
	t.Parallel()

	src := NewSequenceSource([]float64{1}, 8000)
	n, err := src.ReadSamples(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v, want 0, nil", n, err)
	}
}

func TestToFloat32(t *testing.T) {
	t.Parallel()

	got := ToFloat32([]float64{0.95, -0.95, 0})
	want := []float32{0.95, -0.95, 0}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
