// SPDX-License-Identifier: EPL-2.0

package signal

import "fmt"

// DefaultPeak is the amplitude bound used when none is configured.
const DefaultPeak = 0.95

// Report describes the outcome of a normalization.
type Report struct {
	// Min and Max are the extrema of the normalized output.
	Min float64
	Max float64

	// InputMin and InputMax are the extrema of the data before scaling.
	InputMin float64
	InputMax float64

	// Degenerate is set when the input had no dynamic range and the
	// output was replaced by silence.
	Degenerate bool
}

// Warning returns nil for a usable normalization, or an error wrapping
// ErrDegenerateSignal describing why the output is silent.
func (r Report) Warning() error {
	if !r.Degenerate {
		return nil
	}

	return fmt.Errorf("min = max = %g: %w", r.InputMin, ErrDegenerateSignal)
}

// Clipped reports whether the output exceeds peak in magnitude.
func (r Report) Clipped(peak float64) bool {
	return r.Max > peak || r.Min < -peak
}

// MinMax returns the smallest and largest value of data.
// It returns (0, 0) for an empty slice.
func MinMax(data []float64) (lo, hi float64) {
	if len(data) == 0 {
		return 0, 0
	}

	lo, hi = data[0], data[0]
	for _, v := range data[1:] {
		if v < lo {
			lo = v
		} else if v > hi {
			hi = v
		}
	}

	return lo, hi
}

// Normalize maps data linearly so that its minimum lands on -peak and its
// maximum on +peak. The input is not modified.
//
// A constant (or empty) input cannot be scaled; the result is then a zero
// sequence of the same length and the returned Report has Degenerate set.
func Normalize(data []float64, peak float64) ([]float64, Report) {
	out := make([]float64, len(data))

	lo, hi := MinMax(data)
	report := Report{InputMin: lo, InputMax: hi}

	if len(data) == 0 || hi == lo {
		report.Degenerate = true
		return out, report
	}

	span := hi - lo
	for i, v := range data {
		out[i] = ((2 * (v - lo) / span) - 1) * peak
	}

	report.Min, report.Max = MinMax(out)

	return out, report
}
