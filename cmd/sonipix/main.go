// SPDX-License-Identifier: EPL-2.0

// Command sonipix turns a greyscale image into sound, convolves it with an
// oscillator tone or a sample kernel, and plays, plots and exports the
// result.
//
// Usage:
//
//	sonipix [-config file] [-image path] [-direction d] [-waveform w]
//	        [-freq hz] [-kernel audio] [-out dir] [-format enc] [-batch]
//
// With a terminal on stdin it runs an interactive menu. Otherwise, or with
// -batch, it renders -image once and exports the convolved signal. In batch
// mode "-out -" writes the WAV stream to stdout instead of a directory.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	ossignal "os/signal"
	"strconv"
	"syscall"

	"golang.org/x/term"

	"github.com/ik5/sonipix/internal/config"
	"github.com/ik5/sonipix/internal/playback"
	"github.com/ik5/sonipix/internal/prompt"
	"github.com/ik5/sonipix/internal/session"
)

type options struct {
	config    string
	image     string
	direction string
	waveform  string
	freq      string
	kernel    string
	out       string
	format    string
	batch     bool
}

func parseFlags(fs *flag.FlagSet, args []string) (options, error) {
	var o options

	fs.StringVar(&o.config, "config", "", "YAML configuration file")
	fs.StringVar(&o.image, "image", "", "image to sonify")
	fs.StringVar(&o.direction, "direction", "", "scan direction: bidirectional or unidirectional")
	fs.StringVar(&o.waveform, "waveform", "", "oscillator waveform: sine, square or sawtooth")
	fs.StringVar(&o.freq, "freq", "", "oscillator frequency in Hz")
	fs.StringVar(&o.kernel, "kernel", "", "audio file used instead of the oscillator")
	fs.StringVar(&o.out, "out", "", `export directory, or "-" for stdout in batch mode`)
	fs.StringVar(&o.format, "format", "", "export encoding: float32, pcm16 or pcm24")
	fs.BoolVar(&o.batch, "batch", false, "render and export without prompting")

	err := fs.Parse(args)
	return o, err
}

// override applies command line values on top of the loaded configuration.
func (o options) override(cfg *config.Config) error {
	if o.direction != "" {
		cfg.Direction = o.direction
	}
	if o.waveform != "" {
		cfg.Waveform = o.waveform
	}
	if o.freq != "" {
		f, err := prompt.Frequency(o.freq)
		if err != nil {
			return fmt.Errorf("-freq: %w", err)
		}
		cfg.Frequency = f
	}
	if o.out != "" {
		cfg.ExportDir = o.out
	}
	if o.format != "" {
		cfg.ExportFormat = o.format
	}

	return cfg.Validate()
}

func main() {
	opts, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	ctx, cancel := ossignal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, opts, os.Stdin, os.Stdout, os.Stderr)
	cancel()

	if err != nil {
		fmt.Fprintln(os.Stderr, "sonipix:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := config.Load(opts.config)
	if err != nil {
		return err
	}
	if err := opts.override(cfg); err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.Level()}))

	sess := session.New(cfg.Options(), cfg.Oscillator(), session.Decoders(), logger)
	if opts.kernel != "" {
		if err := sess.SetKernel(opts.kernel); err != nil {
			return err
		}
	}

	interactive := !opts.batch && isTerminal(stdin)

	a := &app{
		cfg:    cfg,
		sess:   sess,
		player: playback.Player(playback.Discard{}),
		out:    stdout,
		log:    logger,
		cols:   terminalWidth(stdout),
	}

	if !interactive {
		return a.batch(ctx, opts.image)
	}

	if cfg.Playback {
		p, err := playback.New(cfg.SampleRate)
		if err != nil {
			logger.Warn("playback disabled", "err", err)
		} else {
			a.player = p
		}
	}
	defer a.player.Close()

	a.prompt = prompt.New(stdin, stdout, cfg.MaxPromptAttempts)

	err = a.interactive(ctx, opts.image)
	if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
		fmt.Fprintln(stdout, "\nShutting down...")
		return nil
	}
	return err
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

const defaultColumns = 80

// terminalWidth is the width of w when it is a terminal, or COLUMNS, or 80.
func terminalWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 0 {
			return cols
		}
	}

	if cols, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && cols > 0 {
		return cols
	}

	return defaultColumns
}
