// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"fmt"
	"math"
	"strings"
)

// Audible frequency bounds accepted by OscillatorSpec.Validate, in Hz.
const (
	MinFrequency = 10
	MaxFrequency = 22000
)

// Waveform is the shape produced by an oscillator.
type Waveform int

const (
	Sine Waveform = iota
	Square
	Sawtooth
)

func (w Waveform) String() string {
	switch w {
	case Sine:
		return "Sine"
	case Square:
		return "Square"
	case Sawtooth:
		return "Sawtooth"
	default:
		return fmt.Sprintf("Waveform(%d)", int(w))
	}
}

// ParseWaveform accepts "sine", "square", "sawtooth" (or "saw"), case-insensitive.
func ParseWaveform(s string) (Waveform, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sine", "sin":
		return Sine, nil
	case "square", "sqr":
		return Square, nil
	case "sawtooth", "saw":
		return Sawtooth, nil
	}

	return Sine, fmt.Errorf("%q: %w", s, ErrUnknownWaveform)
}

// OscillatorSpec describes a tone to synthesize.
type OscillatorSpec struct {
	Waveform   Waveform
	Frequency  float64 // Hz, MinFrequency..MaxFrequency inclusive
	Samples    int     // number of samples to produce, > 0
	SampleRate int     // Hz, > 0
}

// Validate reports why the spec cannot be synthesized, or nil.
func (s OscillatorSpec) Validate() error {
	switch s.Waveform {
	case Sine, Square, Sawtooth:
	default:
		return fmt.Errorf("waveform %v: %w", s.Waveform, ErrInvalidSpec)
	}

	if math.IsNaN(s.Frequency) || s.Frequency < MinFrequency || s.Frequency > MaxFrequency {
		return fmt.Errorf("frequency %g Hz outside %d..%d Hz: %w",
			s.Frequency, MinFrequency, MaxFrequency, ErrInvalidSpec)
	}

	if s.Samples <= 0 {
		return fmt.Errorf("sample count %d: %w", s.Samples, ErrInvalidSpec)
	}

	if s.SampleRate <= 0 {
		return fmt.Errorf("sample rate %d: %w", s.SampleRate, ErrInvalidSpec)
	}

	return nil
}

// Duration returns the length of the tone in seconds.
func (s OscillatorSpec) Duration() float64 {
	if s.SampleRate <= 0 {
		return 0
	}

	return float64(s.Samples) / float64(s.SampleRate)
}

// Generate synthesizes spec.Samples samples of the requested waveform with
// t[i] = i / SampleRate:
//   - Sine:     sin(2πft)
//   - Square:   +1 for the first half of each period, -1 for the second
//   - Sawtooth: 2(ft - floor(ft + 0.5)), a rising ramp in [-1, 1)
func Generate(spec OscillatorSpec) ([]float64, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	out := make([]float64, spec.Samples)
	rate := float64(spec.SampleRate)
	f := spec.Frequency

	switch spec.Waveform {
	case Sine:
		w := 2 * math.Pi * f
		for i := range out {
			out[i] = math.Sin(w * float64(i) / rate)
		}
	case Square:
		for i := range out {
			cycles := f * float64(i) / rate
			if cycles-math.Floor(cycles) < 0.5 {
				out[i] = 1
			} else {
				out[i] = -1
			}
		}
	case Sawtooth:
		for i := range out {
			cycles := f * float64(i) / rate
			out[i] = 2 * (cycles - math.Floor(cycles+0.5))
		}
	}

	return out, nil
}
