// SPDX-License-Identifier: EPL-2.0

package plot

import (
	"math"

	"github.com/ik5/sonipix/signal"
)

// Waveform draws amplitude against sample index. Each dot column shows the
// range of the samples that fall into it, so long signals keep their
// envelope. Amplitudes are clipped to [-1, 1].
func Waveform(data []float64, cols, rows int) *Canvas {
	c := NewCanvas(cols, rows)
	if len(data) == 0 {
		return c
	}

	lo, hi := envelope(data, c.Width())
	for x := range c.Width() {
		c.VLine(x, scaleY(hi[x], c.Height()), scaleY(lo[x], c.Height()))
	}

	return c
}

// Spectrum draws band magnitudes on a logarithmic frequency axis from
// MinFrequency to MaxFrequency (or the Nyquist rate, if lower) as bars
// rising from the bottom edge.
func Spectrum(s signal.Spectrum, cols, rows int) *Canvas {
	c := NewCanvas(cols, rows)

	fmax := math.Min(MaxFrequency, float64(s.SampleRate())/2)
	if fmax <= MinFrequency {
		return c
	}

	h := c.Height()
	for x, m := range bands(s, c.Width(), MinFrequency, fmax) {
		if m <= 0 {
			continue
		}
		top := h - 1 - int(math.Round(m*float64(h-1)))
		c.VLine(x, top, h-1)
	}

	return c
}
