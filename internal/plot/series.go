// SPDX-License-Identifier: EPL-2.0

package plot

import (
	"math"

	"github.com/ik5/sonipix/signal"
)

// Frequency axis bounds for spectrum plots, in Hz.
const (
	MinFrequency = 10
	MaxFrequency = 22050
)

// envelope splits data into n equal buckets and returns the minimum and
// maximum of each. Buckets past the end of short data repeat the last
// sample.
func envelope(data []float64, n int) (lo, hi []float64) {
	lo = make([]float64, n)
	hi = make([]float64, n)
	if len(data) == 0 {
		return lo, hi
	}

	for i := range n {
		start := i * len(data) / n
		end := max((i+1)*len(data)/n, start+1)
		start = min(start, len(data)-1)
		end = min(end, len(data))

		lo[i], hi[i] = data[start], data[start]
		for _, v := range data[start+1 : end] {
			lo[i] = min(lo[i], v)
			hi[i] = max(hi[i], v)
		}
	}

	return lo, hi
}

// bands returns, for n logarithmically spaced bands between fmin and fmax,
// the strongest magnitude in each band scaled so the loudest band is 1.
func bands(s signal.Spectrum, n int, fmin, fmax float64) []float64 {
	out := make([]float64, n)
	if len(s.Magnitudes) == 0 || n == 0 {
		return out
	}

	ratio := math.Pow(fmax/fmin, 1/float64(n))
	peak := 0.0

	for i := range n {
		f0 := fmin * math.Pow(ratio, float64(i))
		b0, b1 := s.Bin(f0), s.Bin(f0*ratio)
		for b := b0; b <= b1; b++ {
			out[i] = max(out[i], s.Magnitudes[b])
		}
		peak = max(peak, out[i])
	}

	if peak > 0 {
		for i := range out {
			out[i] /= peak
		}
	}

	return out
}

// scaleY maps v in [-1, 1] onto a dot row, +1 at the top.
func scaleY(v float64, height int) int {
	v = max(-1, min(1, v))
	return int(math.Round((1 - v) / 2 * float64(height-1)))
}
