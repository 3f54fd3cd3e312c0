// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/sonipix/internal/config"
	"github.com/ik5/sonipix/internal/playback"
	"github.com/ik5/sonipix/internal/plot"
	"github.com/ik5/sonipix/internal/prompt"
	"github.com/ik5/sonipix/internal/session"
	"github.com/ik5/sonipix/signal"
)

var errNoImage = errors.New("no image given, use -image")

// stdoutDir as the export directory streams a batch export to stdout.
const stdoutDir = "-"

// Plot sizes.
const (
	waveformRows = 8
	spectrumRows = 6
	pngWidth     = 1024
	pngHeight    = 320
	previewCols  = 64
)

type app struct {
	cfg    *config.Config
	sess   *session.Session
	player playback.Player
	prompt *prompt.Prompter
	out    io.Writer
	log    *slog.Logger
	cols   int
}

// batch renders path once and exports the convolved signal.
func (a *app) batch(ctx context.Context, path string) error {
	if path == "" {
		return errNoImage
	}
	if err := a.sess.LoadImage(path); err != nil {
		return err
	}

	if a.cfg.ExportDir == stdoutDir {
		return a.sess.Encode(a.out, session.StageBlend, a.cfg.Encoding())
	}

	if err := a.plot(session.StageBlend); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return a.export(session.StageBlend)
}

// present shows, plots and plays one stage.
func (a *app) present(ctx context.Context, stage session.Stage) error {
	if err := a.plot(stage); err != nil {
		return err
	}
	return a.audition(ctx, stage)
}

func (a *app) audition(ctx context.Context, stage session.Stage) error {
	data, err := a.sess.Signal(stage)
	if err != nil {
		return err
	}

	a.log.Info("playing",
		"stage", stage,
		"duration", playback.Duration(len(data), a.cfg.SampleRate))

	return a.player.Play(ctx, data)
}

func (a *app) plot(stage session.Stage) error {
	data, err := a.sess.Signal(stage)
	if err != nil {
		return err
	}

	switch a.cfg.Plot {
	case config.PlotBraille:
		spectrum := signal.Analyze(data, a.cfg.SampleRate)
		cols := max(a.cols-1, 10)
		fmt.Fprintf(a.out, "\n%s\n%s\n\nFFT (%d-%d Hz, peak %.0f Hz)\n%s\n",
			stage.Title(), plot.Waveform(data, cols, waveformRows),
			plot.MinFrequency, plot.MaxFrequency, spectrum.Peak(),
			plot.Spectrum(spectrum, cols, spectrumRows))
	case config.PlotPNG:
		return a.plotPNG(stage, data, signal.Analyze(data, a.cfg.SampleRate))
	}

	return nil
}

func (a *app) plotPNG(stage session.Stage, data []float64, spectrum signal.Spectrum) error {
	name, err := a.sess.ExportName(stage)
	if err != nil {
		return err
	}
	base := strings.TrimSuffix(name, filepath.Ext(name))

	if err := os.MkdirAll(a.cfg.PlotDir, 0o755); err != nil {
		return fmt.Errorf("creating plot directory: %w", err)
	}

	write := func(suffix string, render func(io.Writer) error) error {
		path := filepath.Join(a.cfg.PlotDir, base+suffix)

		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating plot: %w", err)
		}
		if err := render(f); err != nil {
			f.Close()
			return fmt.Errorf("rendering %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return err
		}

		a.log.Info("plot written", "path", path)
		return nil
	}

	if err := write("_waveform.png", func(w io.Writer) error {
		return plot.WaveformPNG(w, data, stage.Title(), pngWidth, pngHeight)
	}); err != nil {
		return err
	}

	return write("_fft.png", func(w io.Writer) error {
		return plot.SpectrumPNG(w, spectrum, stage.Title()+" FFT", pngWidth, pngHeight)
	})
}

func (a *app) export(stage session.Stage) error {
	path, err := a.sess.Export(a.cfg.ExportDir, stage, a.cfg.Encoding())
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "File saved as %s\n", filepath.Base(path))
	return nil
}
