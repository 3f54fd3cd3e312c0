// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"fmt"
	"math"
)

// DefaultFadeSeconds is the fade duration used by DefaultFadeLength (50 ms).
const DefaultFadeSeconds = 0.05

// DefaultFadeLength returns the number of samples in a 50 ms fade at sampleRate.
func DefaultFadeLength(sampleRate int) int {
	return FadeLengthFor(sampleRate, DefaultFadeSeconds)
}

// FadeLengthFor converts a fade duration in seconds to samples.
func FadeLengthFor(sampleRate int, seconds float64) int {
	if sampleRate <= 0 || seconds <= 0 {
		return 0
	}

	return int(math.Round(seconds * float64(sampleRate)))
}

// ClampFadeLength limits length so that the fade-in and fade-out windows of
// an n sample sequence never overlap. The returned error wraps
// ErrInsufficientLength when clamping was needed; the returned length is
// usable either way.
func ClampFadeLength(n, length int) (int, error) {
	if length <= 0 {
		return 0, nil
	}

	if limit := n / 2; length > limit {
		return limit, fmt.Errorf("fade of %d samples on %d samples, clamped to %d: %w",
			length, n, limit, ErrInsufficientLength)
	}

	return length, nil
}

// Fade scales the first length samples of data by a 0→1 linear ramp and the
// last length samples by the mirrored 1→0 ramp. Data is modified in place
// and returned. Samples between the two windows are left untouched.
//
// Applying Fade twice is not a no-op: the edges get the squared ramp.
func Fade(data []float64, length int) []float64 {
	length, _ = ClampFadeLength(len(data), length)
	if length == 0 {
		return data
	}

	last := len(data) - 1
	if length == 1 {
		data[0] = 0
		data[last] = 0
		return data
	}

	den := float64(length - 1)
	for i := range length {
		m := float64(i) / den
		data[i] *= m
		data[last-i] *= m
	}

	return data
}
