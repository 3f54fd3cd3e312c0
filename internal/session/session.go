// SPDX-License-Identifier: EPL-2.0

package session

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/sonipix"
	"github.com/ik5/sonipix/audio"
	"github.com/ik5/sonipix/imaging"
	"github.com/ik5/sonipix/signal"
)

// Stage names one of the signals a session holds.
type Stage int

const (
	StageImage Stage = iota
	StageOscillator
	StageBlend
)

func (s Stage) String() string {
	switch s {
	case StageImage:
		return "image"
	case StageOscillator:
		return "oscillator"
	case StageBlend:
		return "blend"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// Title is the heading used when a stage is plotted.
func (s Stage) Title() string {
	switch s {
	case StageImage:
		return "Sonified Image Waveform"
	case StageOscillator:
		return "Oscillator Waveform"
	case StageBlend:
		return "Image/Oscillator Convolution Waveform"
	default:
		return s.String()
	}
}

// Session is not safe for concurrent use.
type Session struct {
	opts     sonipix.Options
	osc      signal.OscillatorSpec
	registry *audio.Registry
	log      *slog.Logger

	grid   *imaging.Grid
	name   string
	format string

	kernelPath string
	kernel     []float64

	image      []float64
	oscillator []float64
	blend      []float64
}

// New starts an empty session. osc supplies the waveform and frequency;
// its length follows the image and its rate follows opts. A nil registry
// means Decoders(), a nil logger discards.
func New(opts sonipix.Options, osc signal.OscillatorSpec, registry *audio.Registry, logger *slog.Logger) *Session {
	if registry == nil {
		registry = Decoders()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	osc.SampleRate = opts.SampleRate

	return &Session{
		opts:     opts,
		osc:      osc,
		registry: registry,
		log:      logger,
	}
}

// Options returns the pipeline options in effect.
func (s *Session) Options() sonipix.Options { return s.opts }

// Oscillator returns the current oscillator spec. Samples is zero until an
// image is loaded.
func (s *Session) Oscillator() signal.OscillatorSpec { return s.osc }

// Grid returns the current image, or nil.
func (s *Session) Grid() *imaging.Grid { return s.grid }

// Name is the current image's file name without extension.
func (s *Session) Name() string { return s.name }

// Format is the decoder name of the current image ("png", "jpeg", ...).
func (s *Session) Format() string { return s.format }

// Kernel returns the path of the sample kernel, or "" when the oscillator
// is synthesized.
func (s *Session) Kernel() string { return s.kernelPath }

// Ready reports whether an image has been loaded and all signals exist.
func (s *Session) Ready() bool { return s.grid != nil }

// Signal returns the current sequence for stage. The slice is shared with
// the session and must not be modified.
func (s *Session) Signal(stage Stage) ([]float64, error) {
	if s.grid == nil {
		return nil, ErrNoImage
	}

	switch stage {
	case StageImage:
		return s.image, nil
	case StageOscillator:
		return s.oscillator, nil
	case StageBlend:
		return s.blend, nil
	default:
		return nil, fmt.Errorf("%v: %w", stage, ErrUnknownStage)
	}
}

// LoadImage decodes path and makes it the current image.
func (s *Session) LoadImage(path string) error {
	grid, format, err := imaging.LoadFile(path)
	if err != nil {
		return err
	}

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return s.SetImage(stem, format, grid)
}

// SetImage replaces the current image and recomputes every signal. The
// oscillator length becomes the image's pixel count.
func (s *Session) SetImage(name, format string, grid *imaging.Grid) error {
	if grid == nil || grid.Len() == 0 {
		return imaging.ErrEmptyImage
	}

	prev := *s
	s.grid, s.name, s.format = grid, name, format
	s.osc.Samples = grid.Len()

	s.log.Info("image loaded",
		"name", name,
		"format", format,
		"width", grid.Width(),
		"height", grid.Height())

	if err := s.Recompute(); err != nil {
		*s = prev
		return err
	}

	return nil
}

// SetDirection changes the scan direction and recomputes.
func (s *Session) SetDirection(dir signal.ScanDirection) error {
	if dir != signal.Unidirectional && dir != signal.Bidirectional {
		return fmt.Errorf("%v: %w", dir, signal.ErrUnknownDirection)
	}

	s.opts.Direction = dir
	return s.recomputeIfReady()
}

// SetWaveform changes the oscillator shape and recomputes. A sample kernel
// stays in use until ClearKernel is called.
func (s *Session) SetWaveform(w signal.Waveform) error {
	spec := s.osc
	spec.Waveform = w
	if err := validateShape(spec); err != nil {
		return err
	}

	s.osc = spec
	return s.recomputeIfReady()
}

// SetFrequency changes the oscillator frequency and recomputes.
func (s *Session) SetFrequency(freq float64) error {
	spec := s.osc
	spec.Frequency = freq
	if err := validateShape(spec); err != nil {
		return err
	}

	s.osc = spec
	return s.recomputeIfReady()
}

// SetKernel reads the audio file at path and uses it instead of the
// synthesized oscillator. The decoded samples are kept, so later image
// changes only loop or cut them again.
func (s *Session) SetKernel(path string) error {
	dec, err := s.registry.Lookup(path)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening kernel: %w", err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	defer src.Close()

	data, err := audio.Collect(src, s.opts.SampleRate)
	if err != nil {
		return fmt.Errorf("reading kernel: %w", err)
	}

	s.log.Info("kernel loaded",
		"path", path,
		"rate", src.SampleRate(),
		"channels", src.Channels(),
		"samples", len(data))

	s.kernelPath, s.kernel = path, data
	return s.recomputeIfReady()
}

// ClearKernel goes back to the synthesized oscillator.
func (s *Session) ClearKernel() error {
	if s.kernel == nil {
		return nil
	}

	s.kernelPath, s.kernel = "", nil
	return s.recomputeIfReady()
}

func (s *Session) recomputeIfReady() error {
	if s.grid == nil {
		return nil
	}
	return s.Recompute()
}

// Recompute rebuilds the image, oscillator and blended signals from the
// current parameters.
func (s *Session) Recompute() error {
	if s.grid == nil {
		return ErrNoImage
	}

	s.warnFade(s.grid.Len())

	image, report := sonipix.ImageSignal(s.grid, s.opts)
	s.warn(StageImage, report)

	osc, err := s.makeOscillator()
	if err != nil {
		return err
	}

	blend, report := sonipix.Blend(image, osc, s.opts)
	s.warn(StageBlend, report)

	s.image, s.oscillator, s.blend = image, osc, blend

	s.log.Debug("signals recomputed",
		"direction", s.opts.Direction,
		"oscillator", s.sourceLabel(),
		"samples", len(image),
		"blend_samples", len(blend))

	return nil
}

func (s *Session) makeOscillator() ([]float64, error) {
	if s.kernel != nil {
		return sonipix.FitKernel(s.kernel, s.osc.Samples, s.opts)
	}

	return sonipix.OscillatorSignal(s.osc, s.opts)
}

func (s *Session) warn(stage Stage, report signal.Report) {
	if err := report.Warning(); err != nil {
		s.log.Warn("normalization produced silence", "stage", stage, "err", err)
	}
}

func (s *Session) warnFade(n int) {
	if _, err := signal.ClampFadeLength(n, s.opts.FadeLength); err != nil {
		s.log.Warn("fade shortened", "samples", n, "fade", s.opts.FadeLength, "err", err)
	}
}

// validateShape checks a spec's waveform and frequency; its length is
// checked once an image sets it.
func validateShape(spec signal.OscillatorSpec) error {
	if spec.Samples <= 0 {
		spec.Samples = 1
	}
	return spec.Validate()
}

func (s *Session) sourceLabel() string {
	if s.kernel != nil {
		return filepath.Base(s.kernelPath)
	}
	return s.osc.Waveform.String()
}
