// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

// Spectrum holds the magnitude of a real DFT.
type Spectrum struct {
	// Magnitudes has n/2+1 bins, DC first, where n is the analyzed length
	// rounded up to a power of two.
	Magnitudes []float64

	n          int
	sampleRate int
}

// Analyze computes the magnitude spectrum of data sampled at sampleRate.
// data is zero padded to the next power of two; prime lengths would
// otherwise make the transform quadratic.
func Analyze(data []float64, sampleRate int) Spectrum {
	if len(data) == 0 {
		return Spectrum{sampleRate: sampleRate}
	}

	size := nextPow2(len(data))
	buf := make([]float64, size)
	copy(buf, data)

	fft := fourier.NewFFT(size)
	coeffs := fft.Coefficients(nil, buf)

	mags := make([]float64, len(coeffs))
	for i, c := range coeffs {
		mags[i] = cmplx.Abs(c)
	}

	return Spectrum{Magnitudes: mags, n: size, sampleRate: sampleRate}
}

// Frequency returns the centre frequency of bin i in Hz.
func (s Spectrum) Frequency(i int) float64 {
	if s.n == 0 {
		return 0
	}

	return float64(i) * float64(s.sampleRate) / float64(s.n)
}

// Bin returns the index of the bin closest to freq, clamped to the valid range.
func (s Spectrum) Bin(freq float64) int {
	if s.n == 0 || s.sampleRate <= 0 {
		return 0
	}

	i := int(freq*float64(s.n)/float64(s.sampleRate) + 0.5)
	if i < 0 {
		return 0
	}

	if i >= len(s.Magnitudes) {
		return len(s.Magnitudes) - 1
	}

	return i
}

// Peak returns the frequency of the strongest non-DC bin.
func (s Spectrum) Peak() float64 {
	best := 0
	for i := 1; i < len(s.Magnitudes); i++ {
		if best == 0 || s.Magnitudes[i] > s.Magnitudes[best] {
			best = i
		}
	}

	return s.Frequency(best)
}

// SampleRate returns the rate the analyzed signal was sampled at.
func (s Spectrum) SampleRate() int { return s.sampleRate }
