// SPDX-License-Identifier: EPL-2.0

package sonipix

import (
	"fmt"

	"github.com/ik5/sonipix/audio"
	"github.com/ik5/sonipix/signal"
)

// DefaultSampleRate is the rate every sequence is produced at unless
// Options says otherwise.
const DefaultSampleRate = 48000

// Options carries the parameters shared by every pipeline stage.
type Options struct {
	// SampleRate in Hz.
	SampleRate int
	// Peak amplitude after normalization.
	Peak float64
	// FadeLength in samples for both edges. Zero or negative disables fading.
	FadeLength int
	// Direction used when scanning the image.
	Direction signal.ScanDirection
}

// DefaultOptions returns 48 kHz, peak 0.95, 50 ms fades and snake scanning.
func DefaultOptions() Options {
	return Options{
		SampleRate: DefaultSampleRate,
		Peak:       signal.DefaultPeak,
		FadeLength: signal.DefaultFadeLength(DefaultSampleRate),
		Direction:  signal.Bidirectional,
	}
}

// ImageSignal scans grid, normalizes the result to ±Peak and fades both
// edges. The report tells the caller whether the image was flat.
func ImageSignal(grid signal.Grid, o Options) ([]float64, signal.Report) {
	out, report := signal.Normalize(signal.Scan(grid, o.Direction), o.Peak)
	signal.Fade(out, o.FadeLength)

	return out, report
}

// OscillatorSignal synthesizes spec and fades its edges. spec.SampleRate
// defaults to o.SampleRate when unset.
func OscillatorSignal(spec signal.OscillatorSpec, o Options) ([]float64, error) {
	if spec.SampleRate == 0 {
		spec.SampleRate = o.SampleRate
	}

	out, err := signal.Generate(spec)
	if err != nil {
		return nil, err
	}

	return signal.Fade(out, o.FadeLength), nil
}

// FitKernel turns recorded samples, already mono at o.SampleRate (see
// audio.Collect), into a stand-in for the oscillator: looped or cut to
// samples and faded. data is not modified.
func FitKernel(data []float64, samples int, o Options) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("kernel of %d samples: %w", samples, signal.ErrInvalidSpec)
	}
	if len(data) == 0 {
		return nil, audio.ErrEmptySource
	}

	return signal.Fade(audio.Fit(data, samples), o.FadeLength), nil
}

// Blend convolves the image and oscillator signals, then renormalizes and
// re-fades the result.
func Blend(image, osc []float64, o Options) ([]float64, signal.Report) {
	return signal.Mix(image, osc, o.Peak, o.FadeLength)
}
