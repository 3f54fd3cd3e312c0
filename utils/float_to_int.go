// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// ToPCM scales x from [-1, 1] to a signed integer of bitDepth bits
// (8..32). Out of range input is clamped; the result is rounded to nearest,
// so +1 maps to the largest positive code and -1 to its negation.
func ToPCM(x float64, bitDepth int) int {
	full := float64(int64(1)<<(bitDepth-1) - 1)

	switch {
	case math.IsNaN(x):
		return 0
	case x > 1:
		x = 1
	case x < -1:
		x = -1
	}

	return int(math.Round(x * full))
}

// Float64ToInt16 converts one sample to 16-bit PCM.
func Float64ToInt16(x float64) int16 {
	return int16(ToPCM(x, 16))
}

// Float64sToInt16 converts a sequence to 16-bit PCM.
func Float64sToInt16(data []float64) []int16 {
	out := make([]int16, len(data))
	for i, v := range data {
		out[i] = Float64ToInt16(v)
	}
	return out
}
