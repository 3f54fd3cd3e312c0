// SPDX-License-Identifier: EPL-2.0

package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ik5/sonipix/formats/wav"
	"github.com/ik5/sonipix/internal/config"
	"github.com/ik5/sonipix/internal/playback"
	"github.com/ik5/sonipix/internal/prompt"
	"github.com/ik5/sonipix/internal/session"
	"github.com/ik5/sonipix/signal"
)

func writeImage(t *testing.T, dir, name string) string {
	t.Helper()

	img := image.NewGray(image.Rect(0, 0, 40, 30))
	for i := range img.Pix {
		img.Pix[i] = uint8(i * 7)
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseFlags(t *testing.T) {
	t.Parallel()

	fs := flag.NewFlagSet("sonipix", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	o, err := parseFlags(fs, []string{"-image", "a.png", "-freq", "880", "-waveform", "square", "-batch"})
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}
	if o.image != "a.png" || o.freq != "880" || o.waveform != "square" || !o.batch {
		t.Errorf("parseFlags() = %+v", o)
	}
}

func TestOptions_Override(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opts    options
		wantErr error
		check   func(*config.Config) bool
	}{
		{
			name:  "frequency with unit",
			opts:  options{freq: "1,000 Hz"},
			check: func(c *config.Config) bool { return c.Frequency == 1000 },
		},
		{
			name:  "direction and out",
			opts:  options{direction: "unidirectional", out: "exports"},
			check: func(c *config.Config) bool { return c.Direction == "unidirectional" && c.ExportDir == "exports" },
		},
		{name: "bad frequency", opts: options{freq: "loud"}, wantErr: prompt.ErrNotANumber},
		{name: "frequency out of range", opts: options{freq: "5"}, wantErr: signal.ErrInvalidSpec},
		{name: "bad waveform", opts: options{waveform: "triangle"}, wantErr: config.ErrInvalid},
		{name: "bad direction", opts: options{direction: "diagonal"}, wantErr: config.ErrInvalid},
		{
			name:  "export format",
			opts:  options{format: "pcm24"},
			check: func(c *config.Config) bool { return c.Encoding() == wav.PCM24 },
		},
		{name: "bad export format", opts: options{format: "mp3"}, wantErr: config.ErrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.Default()
			err := tt.opts.override(cfg)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("override() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("override() error = %v", err)
			}
			if !tt.check(cfg) {
				t.Errorf("override() config = %+v", cfg)
			}
		})
	}
}

func TestRun_Batch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	img := writeImage(t, dir, "ramp.png")
	out := filepath.Join(dir, "exports")

	var stdout, stderr bytes.Buffer
	opts := options{image: img, out: out, waveform: "sawtooth", freq: "220", batch: true}

	if err := run(context.Background(), opts, strings.NewReader(""), &stdout, &stderr); err != nil {
		t.Fatalf("run() error = %v\n%s", err, stderr.String())
	}

	const want = "ramp_Sawtooth_Wave_220Hz_0.05s.wav"
	if !strings.Contains(stdout.String(), "File saved as "+want) {
		t.Errorf("stdout does not name the export:\n%s", stdout.String())
	}
	if _, err := os.Stat(filepath.Join(out, want)); err != nil {
		t.Errorf("export missing: %v", err)
	}
	if !strings.Contains(stdout.String(), session.StageBlend.Title()) {
		t.Errorf("stdout has no plot title:\n%s", stdout.String())
	}
	if !strings.Contains(stderr.String(), "msg=exported") {
		t.Errorf("stderr has no export log:\n%s", stderr.String())
	}
}

func TestRun_BatchToStdout(t *testing.T) {
	t.Parallel()

	img := writeImage(t, t.TempDir(), "ramp.png")

	var stdout, stderr bytes.Buffer
	opts := options{image: img, out: "-", format: "pcm16", batch: true}

	if err := run(context.Background(), opts, strings.NewReader(""), &stdout, &stderr); err != nil {
		t.Fatalf("run() error = %v\n%s", err, stderr.String())
	}

	src, err := wav.Decoder{}.Decode(bytes.NewReader(stdout.Bytes()))
	if err != nil {
		t.Fatalf("stdout is not a WAV stream: %v", err)
	}

	var n int
	buf := make([]float32, 512)
	for {
		k, err := src.ReadSamples(buf)
		n += k
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	// 40x30 pixels convolved with an oscillator of the same length.
	if want := 2*40*30 - 1; n != want {
		t.Errorf("decoded %d samples, want %d", n, want)
	}
}

func TestApp_PlotTargets(t *testing.T) {
	t.Parallel()

	t.Run("none", func(t *testing.T) {
		t.Parallel()

		a, out := newTestApp(t, "")
		a.cfg.Plot = config.PlotNone
		if err := a.sess.LoadImage(writeImage(t, t.TempDir(), "ramp.png")); err != nil {
			t.Fatal(err)
		}

		if err := a.plot(session.StageBlend); err != nil {
			t.Fatalf("plot() error = %v", err)
		}
		if out.Len() != 0 {
			t.Errorf("plot none wrote %q", out.String())
		}
	})

	t.Run("png", func(t *testing.T) {
		t.Parallel()

		a, _ := newTestApp(t, "")
		a.cfg.Plot = config.PlotPNG
		a.cfg.PlotDir = filepath.Join(t.TempDir(), "plots")
		if err := a.sess.LoadImage(writeImage(t, t.TempDir(), "ramp.png")); err != nil {
			t.Fatal(err)
		}

		if err := a.plot(session.StageImage); err != nil {
			t.Fatalf("plot() error = %v", err)
		}
		for _, name := range []string{"ramp_waveform.png", "ramp_fft.png"} {
			if _, err := os.Stat(filepath.Join(a.cfg.PlotDir, name)); err != nil {
				t.Errorf("%s missing: %v", name, err)
			}
		}
	})
}

func TestRun_BatchErrors(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	ctx := context.Background()

	if err := run(ctx, options{batch: true}, strings.NewReader(""), &stdout, &stderr); !errors.Is(err, errNoImage) {
		t.Errorf("run() without image error = %v, want errNoImage", err)
	}

	missing := options{batch: true, image: filepath.Join(t.TempDir(), "nope.png")}
	if err := run(ctx, missing, strings.NewReader(""), &stdout, &stderr); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("run() with missing image error = %v, want os.ErrNotExist", err)
	}

	badKernel := options{batch: true, kernel: "tone.xyz"}
	if err := run(ctx, badKernel, strings.NewReader(""), &stdout, &stderr); err == nil {
		t.Error("run() with unknown kernel format error = nil")
	}
}

func newTestApp(t *testing.T, input string) (*app, *bytes.Buffer) {
	t.Helper()

	cfg := config.Default()
	cfg.ExportDir = filepath.Join(t.TempDir(), "exports")
	cfg.ImageDir = t.TempDir()
	cfg.MaxPromptAttempts = 2

	var out bytes.Buffer
	logger := slog.New(slog.DiscardHandler)

	return &app{
		cfg:    cfg,
		sess:   session.New(cfg.Options(), cfg.Oscillator(), nil, logger),
		player: playback.Discard{},
		prompt: prompt.New(strings.NewReader(input), &out, cfg.MaxPromptAttempts),
		out:    &out,
		log:    logger,
		cols:   60,
	}, &out
}

func TestInteractive_Quit(t *testing.T) {
	t.Parallel()

	a, out := newTestApp(t, "4\n")
	img := writeImage(t, t.TempDir(), "ramp.png")

	if err := a.interactive(context.Background(), img); err != nil {
		t.Fatalf("interactive() error = %v", err)
	}

	for _, want := range []string{"ramp", "Sonified Image Waveform", "Oscillator Waveform", "Shutting down..."} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestInteractive_ModifyAndExport(t *testing.T) {
	t.Parallel()

	// square wave, 880 Hz, export the convolution under its default name, quit
	input := "1\n2\n2\n1\n3\n880\n3\n1\n\n4\n"
	a, out := newTestApp(t, input)
	img := writeImage(t, t.TempDir(), "ramp.png")

	if err := a.interactive(context.Background(), img); err != nil {
		t.Fatalf("interactive() error = %v\n%s", err, out.String())
	}

	spec := a.sess.Oscillator()
	if spec.Waveform != signal.Square || spec.Frequency != 880 {
		t.Errorf("oscillator = %+v, want Square at 880 Hz", spec)
	}

	const want = "ramp_Square_Wave_880Hz_0.05s.wav"
	if _, err := os.Stat(filepath.Join(a.cfg.ExportDir, want)); err != nil {
		t.Errorf("export missing: %v\n%s", err, out.String())
	}
}

func TestInteractive_ChooseImageFromDirectory(t *testing.T) {
	t.Parallel()

	a, out := newTestApp(t, "2\n3\n1\nmine\n4\n")
	writeImage(t, a.cfg.ImageDir, "a.png")
	writeImage(t, a.cfg.ImageDir, "b.png")

	if err := a.interactive(context.Background(), ""); err != nil {
		t.Fatalf("interactive() error = %v\n%s", err, out.String())
	}

	if a.sess.Name() != "b" {
		t.Errorf("Name() = %q, want b", a.sess.Name())
	}
	if _, err := os.Stat(filepath.Join(a.cfg.ExportDir, "mine.wav")); err != nil {
		t.Errorf("renamed export missing: %v", err)
	}
}

func TestInteractive_GivesUp(t *testing.T) {
	t.Parallel()

	a, _ := newTestApp(t, "9\nnope\n")
	img := writeImage(t, t.TempDir(), "ramp.png")

	if err := a.interactive(context.Background(), img); !errors.Is(err, prompt.ErrTooManyAttempts) {
		t.Errorf("interactive() error = %v, want ErrTooManyAttempts", err)
	}
}

func TestInteractive_EndOfInput(t *testing.T) {
	t.Parallel()

	a, _ := newTestApp(t, "")
	img := writeImage(t, t.TempDir(), "ramp.png")

	if err := a.interactive(context.Background(), img); !errors.Is(err, io.EOF) {
		t.Errorf("interactive() error = %v, want io.EOF", err)
	}
}

func TestExistingFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeImage(t, dir, "x.png")

	if got, err := existingFile("  " + path + " "); err != nil || got != path {
		t.Errorf("existingFile(file) = %q, %v", got, err)
	}
	if _, err := existingFile(dir); err == nil {
		t.Error("existingFile(dir) error = nil")
	}
	if _, err := existingFile(filepath.Join(dir, "missing")); err == nil {
		t.Error("existingFile(missing) error = nil")
	}
}
