// SPDX-License-Identifier: EPL-2.0

package session

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/ik5/sonipix/formats/wav"
)

// ExportName is the file name a stage is saved under:
//
//	image:      {name}.wav
//	oscillator: {waveform}_Wave_{freq}Hz_{seconds}s.wav
//	blend:      {name}_{waveform}_Wave_{freq}Hz_{seconds}s.wav
//
// seconds is twice the oscillator duration with two decimals, which is
// roughly the length of the convolved signal. With a sample kernel the
// waveform and frequency are replaced by the kernel's file name.
func (s *Session) ExportName(stage Stage) (string, error) {
	if s.grid == nil {
		return "", ErrNoImage
	}

	tone := s.toneLabel()

	switch stage {
	case StageImage:
		return s.name + ".wav", nil
	case StageOscillator:
		return tone + ".wav", nil
	case StageBlend:
		return s.name + "_" + tone + ".wav", nil
	default:
		return "", fmt.Errorf("%v: %w", stage, ErrUnknownStage)
	}
}

func (s *Session) toneLabel() string {
	seconds := 2 * float64(s.osc.Samples) / float64(s.opts.SampleRate)

	if s.kernel != nil {
		base := filepath.Base(s.kernelPath)
		return fmt.Sprintf("%s_%.2fs", base[:len(base)-len(filepath.Ext(base))], seconds)
	}

	return fmt.Sprintf("%s_Wave_%sHz_%.2fs",
		s.osc.Waveform,
		strconv.FormatFloat(s.osc.Frequency, 'f', -1, 64),
		seconds)
}

// Export writes stage into dir under ExportName, creating dir if needed,
// and returns the path of the new file.
func (s *Session) Export(dir string, stage Stage, enc wav.Encoding) (string, error) {
	name, err := s.ExportName(stage)
	if err != nil {
		return "", err
	}

	return s.ExportAs(dir, name, stage, enc)
}

// ExportAs is Export with a caller-chosen file name. A file that could not
// be written completely is removed.
func (s *Session) ExportAs(dir, name string, stage Stage, enc wav.Encoding) (string, error) {
	if _, err := s.Signal(stage); err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}

	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating export file: %w", err)
	}

	if err := s.Encode(f, stage, enc); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("writing %s: %w", name, err)
	}

	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("closing %s: %w", name, err)
	}

	s.log.Info("exported", "stage", stage, "path", path, "encoding", enc)

	return path, nil
}

// Encode writes stage as a WAV stream to w. w need not be seekable for the
// float32 and pcm16 encodings.
func (s *Session) Encode(w io.Writer, stage Stage, enc wav.Encoding) error {
	data, err := s.Signal(stage)
	if err != nil {
		return err
	}

	if err := wav.Write(w, s.opts.SampleRate, data, enc); err != nil {
		return err
	}

	s.log.Debug("encoded", "stage", stage, "encoding", enc, "samples", len(data))
	return nil
}
