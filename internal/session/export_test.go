// SPDX-License-Identifier: EPL-2.0

package session

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/sonipix/formats/wav"
	"github.com/ik5/sonipix/signal"
)

func TestSession_ExportName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		wave  signal.Waveform
		freq  float64
		stage Stage
		want  string
	}{
		{"image only", signal.Sine, 440, StageImage, "gradient.wav"},
		{"oscillator", signal.Sine, 440, StageOscillator, "Sine_Wave_440Hz_0.20s.wav"},
		{"blend", signal.Sine, 440, StageBlend, "gradient_Sine_Wave_440Hz_0.20s.wav"},
		{"square", signal.Square, 1000, StageBlend, "gradient_Square_Wave_1000Hz_0.20s.wav"},
		{"sawtooth fractional", signal.Sawtooth, 27.5, StageBlend, "gradient_Sawtooth_Wave_27.5Hz_0.20s.wav"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			spec := signal.OscillatorSpec{Waveform: tt.wave, Frequency: tt.freq}
			s := New(testOptions(), spec, nil, nil)
			if err := s.SetImage("gradient", "png", gradient(t, 100, 48)); err != nil {
				t.Fatalf("SetImage() error = %v", err)
			}

			got, err := s.ExportName(tt.stage)
			if err != nil {
				t.Fatalf("ExportName() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ExportName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSession_ExportName_UnknownStage(t *testing.T) {
	t.Parallel()

	s := New(testOptions(), sine440(), nil, nil)
	if err := s.SetImage("board", "png", checkerboard(t)); err != nil {
		t.Fatal(err)
	}

	if _, err := s.ExportName(Stage(5)); !errors.Is(err, ErrUnknownStage) {
		t.Errorf("ExportName(5) error = %v, want ErrUnknownStage", err)
	}
	if _, err := s.Signal(Stage(5)); !errors.Is(err, ErrUnknownStage) {
		t.Errorf("Signal(5) error = %v, want ErrUnknownStage", err)
	}
}

func TestSession_Export(t *testing.T) {
	t.Parallel()

	tests := []struct {
		enc   wav.Encoding
		stage Stage
	}{
		{wav.Float32, StageBlend},
		{wav.PCM16, StageImage},
		{wav.PCM24, StageOscillator},
	}

	for _, tt := range tests {
		t.Run(tt.enc.String(), func(t *testing.T) {
			t.Parallel()

			s := New(testOptions(), sine440(), nil, nil)
			if err := s.SetImage("grad", "png", gradient(t, 16, 8)); err != nil {
				t.Fatalf("SetImage() error = %v", err)
			}

			dir := filepath.Join(t.TempDir(), "WAV Exports")
			path, err := s.Export(dir, tt.stage, tt.enc)
			if err != nil {
				t.Fatalf("Export() error = %v", err)
			}

			wantName, _ := s.ExportName(tt.stage)
			if filepath.Base(path) != wantName {
				t.Errorf("exported %q, want %q", filepath.Base(path), wantName)
			}

			f, err := os.Open(path)
			if err != nil {
				t.Fatal(err)
			}
			defer f.Close()

			src, err := wav.Decoder{}.Decode(f)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}

			var got int
			buf := make([]float32, 64)
			for {
				n, err := src.ReadSamples(buf)
				got += n
				if err == io.EOF {
					break
				}
				if err != nil {
					t.Fatalf("ReadSamples() error = %v", err)
				}
			}

			want, _ := s.Signal(tt.stage)
			if got != len(want) {
				t.Errorf("exported %d samples, want %d", got, len(want))
			}
		})
	}
}

func TestSession_Export_NoImage(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "out")
	s := New(testOptions(), sine440(), nil, nil)

	if _, err := s.Export(dir, StageBlend, wav.Float32); !errors.Is(err, ErrNoImage) {
		t.Errorf("Export() error = %v, want ErrNoImage", err)
	}
	if _, err := os.Stat(dir); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("export dir created without an image: %v", err)
	}
}

func TestSession_ExportAs(t *testing.T) {
	t.Parallel()

	s := New(testOptions(), sine440(), nil, nil)
	if err := s.SetImage("board", "png", checkerboard(t)); err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	path, err := s.ExportAs(dir, "mine.wav", StageImage, wav.Float32)
	if err != nil {
		t.Fatalf("ExportAs() error = %v", err)
	}
	if path != filepath.Join(dir, "mine.wav") {
		t.Errorf("ExportAs() = %q", path)
	}

	st, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if want := int64(44 + 4*4); st.Size() != want {
		t.Errorf("file size = %d, want %d", st.Size(), want)
	}
}

func TestSession_ExportAs_RemovesPartialFile(t *testing.T) {
	t.Parallel()

	s := New(testOptions(), sine440(), nil, nil)
	if err := s.SetImage("board", "png", checkerboard(t)); err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	if _, err := s.ExportAs(dir, "broken.wav", StageBlend, wav.Encoding(42)); !errors.Is(err, wav.ErrUnknownEncoding) {
		t.Fatalf("ExportAs() error = %v, want ErrUnknownEncoding", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "broken.wav")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("failed export left a file behind: %v", err)
	}
}

func TestSession_Encode(t *testing.T) {
	t.Parallel()

	s := New(testOptions(), sine440(), nil, nil)

	var buf bytes.Buffer
	if err := s.Encode(&buf, StageBlend, wav.PCM16); !errors.Is(err, ErrNoImage) {
		t.Errorf("Encode() without image error = %v, want ErrNoImage", err)
	}

	if err := s.SetImage("board", "png", checkerboard(t)); err != nil {
		t.Fatal(err)
	}

	if err := s.Encode(&buf, StageBlend, wav.PCM16); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if want := 44 + 2*7; buf.Len() != want {
		t.Errorf("encoded %d bytes, want %d", buf.Len(), want)
	}
	if err := s.Encode(&bytes.Buffer{}, StageBlend, wav.PCM24); !errors.Is(err, wav.ErrNotSeekable) {
		t.Errorf("Encode(pcm24) error = %v, want ErrNotSeekable", err)
	}
}
