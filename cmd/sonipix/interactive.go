// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/sonipix/imaging"
	"github.com/ik5/sonipix/internal/prompt"
	"github.com/ik5/sonipix/internal/session"
	"github.com/ik5/sonipix/signal"
)

const rule = "-------------------------------------------------"

var (
	mainMenu = []string{
		"Modify IMG/OSC parameters",
		"Audition convolved audio",
		"Export audio",
		"Quit",
	}
	paramMenu = []string{
		"Select new image",
		"Select oscillator waveform",
		"Select oscillator frequency",
		"Select scan direction",
		"Select sample kernel",
	}
	directionMenu = []string{"Bidirectional", "Unidirectional"}
	waveformMenu  = []string{"Sine", "Square", "Sawtooth"}
	exportMenu    = []string{"Convolved audio", "Image audio", "Oscillator audio"}
)

var (
	directions = []signal.ScanDirection{signal.Bidirectional, signal.Unidirectional}
	waveforms  = []signal.Waveform{signal.Sine, signal.Square, signal.Sawtooth}
	exports    = []session.Stage{session.StageBlend, session.StageImage, session.StageOscillator}
)

func (a *app) interactive(ctx context.Context, image string) error {
	if image == "" {
		if err := a.chooseImage(ctx); err != nil {
			return err
		}
	} else if err := a.sess.LoadImage(image); err != nil {
		return err
	}

	a.preview()

	for _, stage := range []session.Stage{session.StageImage, session.StageOscillator, session.StageBlend} {
		if err := a.present(ctx, stage); err != nil {
			return err
		}
	}

	for {
		title := rule + "\nModify IMG/OSC parameters, audition the convolved\naudio, export audio, or quit.\n" + rule

		pick, err := prompt.Menu(ctx, a.prompt, title, mainMenu)
		if err != nil {
			return err
		}

		switch pick {
		case 0:
			err = a.modify(ctx)
		case 1:
			err = a.present(ctx, session.StageBlend)
		case 2:
			err = a.exportMenu(ctx)
		default:
			fmt.Fprintln(a.out, "Shutting down...")
			return nil
		}

		if err != nil {
			if !recoverable(err) {
				return err
			}
			fmt.Fprintln(a.out, err)
		}
	}
}

// recoverable errors are reported and the menu shown again.
func recoverable(err error) bool {
	return !errors.Is(err, context.Canceled) &&
		!errors.Is(err, prompt.ErrTooManyAttempts) &&
		!errors.Is(err, io.EOF)
}

func (a *app) modify(ctx context.Context) error {
	pick, err := prompt.Menu(ctx, a.prompt, "Please select a parameter to modify\n\n"+a.sess.Summary(), paramMenu)
	if err != nil {
		return err
	}

	switch pick {
	case 0:
		if err := a.chooseImage(ctx); err != nil {
			return err
		}
		a.preview()
		return a.present(ctx, session.StageImage)
	case 1:
		i, err := prompt.Menu(ctx, a.prompt, "Select oscillator waveform", waveformMenu)
		if err != nil {
			return err
		}
		if err := a.sess.SetWaveform(waveforms[i]); err != nil {
			return err
		}
	case 2:
		question := fmt.Sprintf("Oscillator frequency (%d-%d Hz): ", signal.MinFrequency, signal.MaxFrequency)
		f, err := prompt.Ask(ctx, a.prompt, question, prompt.Frequency)
		if err != nil {
			return err
		}
		if err := a.sess.SetFrequency(f); err != nil {
			return err
		}
	case 3:
		i, err := prompt.Menu(ctx, a.prompt, "Select scan direction", directionMenu)
		if err != nil {
			return err
		}
		if err := a.sess.SetDirection(directions[i]); err != nil {
			return err
		}
		return a.present(ctx, session.StageImage)
	default:
		return a.chooseKernel(ctx)
	}

	return a.present(ctx, session.StageOscillator)
}

// chooseImage offers the images found in the configured directory, or asks
// for a path when there are none.
func (a *app) chooseImage(ctx context.Context) error {
	names, err := imaging.List(a.cfg.ImageDir)
	if err != nil {
		a.log.Debug("image directory unavailable", "dir", a.cfg.ImageDir, "err", err)
	}

	var path string
	if len(names) > 0 {
		i, err := prompt.Menu(ctx, a.prompt, "Select an image from "+a.cfg.ImageDir, names)
		if err != nil {
			return err
		}
		path = filepath.Join(a.cfg.ImageDir, names[i])
	} else {
		path, err = prompt.Ask(ctx, a.prompt, "Path of the image to sonify: ", existingFile)
		if err != nil {
			return err
		}
	}

	if err := a.sess.LoadImage(path); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "File found.")

	return nil
}

func (a *app) chooseKernel(ctx context.Context) error {
	path, err := prompt.Ask(ctx, a.prompt, "Audio file to use as kernel (empty for the oscillator): ",
		func(s string) (string, error) {
			if strings.TrimSpace(s) == "" {
				return "", nil
			}
			return existingFile(s)
		})
	if err != nil {
		return err
	}

	if path == "" {
		err = a.sess.ClearKernel()
	} else {
		err = a.sess.SetKernel(path)
	}
	if err != nil {
		return err
	}

	return a.present(ctx, session.StageOscillator)
}

func (a *app) exportMenu(ctx context.Context) error {
	i, err := prompt.Menu(ctx, a.prompt, "Select the audio to export", exportMenu)
	if err != nil {
		return err
	}

	def, err := a.sess.ExportName(exports[i])
	if err != nil {
		return err
	}

	name, err := prompt.Ask(ctx, a.prompt, fmt.Sprintf("File name [%s]: ", def), func(s string) (string, error) {
		if strings.TrimSpace(s) == "" {
			return def, nil
		}
		return prompt.FileName(s)
	})
	if err != nil {
		return err
	}
	if !strings.EqualFold(filepath.Ext(name), ".wav") {
		name += ".wav"
	}

	path, err := a.sess.ExportAs(a.cfg.ExportDir, name, exports[i], a.cfg.Encoding())
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "File saved as %s\n", filepath.Base(path))
	return nil
}

func (a *app) preview() {
	g := a.sess.Grid()
	if g == nil {
		return
	}

	fmt.Fprintf(a.out, "\n%s\n%s %dx%d\n%s\n",
		a.sess.Name(), strings.ToUpper(a.sess.Format()), g.Width(), g.Height(),
		g.Preview(min(previewCols, a.cols)))
}

func existingFile(s string) (string, error) {
	path := strings.TrimSpace(s)
	st, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("file not found: %s", path)
	}
	if st.IsDir() {
		return "", fmt.Errorf("%s is a directory", path)
	}
	return path, nil
}
