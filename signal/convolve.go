// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"math/bits"

	"gonum.org/v1/gonum/dsp/fourier"
)

// directLimit is the largest len(a)*len(b) convolved by direct summation.
// Above it Convolve switches to FFT multiplication.
const directLimit = 1 << 16

// Convolve returns the full linear convolution of a and b:
//
//	out[n] = Σ a[k]·b[n-k]
//
// The result has len(a)+len(b)-1 samples, or none when either input is empty.
// Neither input is modified.
func Convolve(a, b []float64) []float64 {
	if len(a) == 0 || len(b) == 0 {
		return []float64{}
	}

	if len(a)*len(b) <= directLimit {
		return convolveDirect(a, b)
	}

	return convolveFFT(a, b)
}

func convolveDirect(a, b []float64) []float64 {
	out := make([]float64, len(a)+len(b)-1)

	for i, x := range a {
		if x == 0 {
			continue
		}
		dst := out[i : i+len(b)]
		for j, y := range b {
			dst[j] += x * y
		}
	}

	return out
}

func convolveFFT(a, b []float64) []float64 {
	n := len(a) + len(b) - 1
	size := nextPow2(n)

	fft := fourier.NewFFT(size)

	// Both inputs are zero padded into one scratch buffer in turn.
	buf := make([]float64, size)

	copy(buf, a)
	fa := fft.Coefficients(nil, buf)

	clear(buf)
	copy(buf, b)
	fb := fft.Coefficients(nil, buf)

	for i := range fa {
		fa[i] *= fb[i]
	}

	fft.Sequence(buf, fa)

	// gonum leaves the inverse transform unscaled.
	scale := 1 / float64(size)
	out := buf[:n]
	for i := range out {
		out[i] *= scale
	}

	return out
}

func nextPow2(n int) int {
	if n <= 1 {
		return 1
	}

	return 1 << bits.Len(uint(n-1))
}

// Mix convolves a with b, then renormalizes the result to [-peak, peak] and
// applies fadeLength sample edge fades. Convolution is unbounded in
// amplitude, so the renormalization is always performed.
func Mix(a, b []float64, peak float64, fadeLength int) ([]float64, Report) {
	out, report := Normalize(Convolve(a, b), peak)
	Fade(out, fadeLength)

	return out, report
}
