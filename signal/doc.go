// SPDX-License-Identifier: EPL-2.0

// Package signal implements the numeric core of image sonification.
//
// The package turns a two dimensional intensity grid into a one dimensional
// sample sequence and blends it with a synthesized tone:
//   - Scan linearizes a Grid in row-major or boustrophedon (snake) order
//   - Normalize maps a sequence onto [-peak, peak]
//   - Fade applies linear in/out ramps to a sequence's edges
//   - Generate synthesizes sine, square and sawtooth oscillators
//   - Convolve and Mix combine two sequences by linear convolution
//   - Spectrum computes the magnitude of a real DFT for analysis
//
// # Sample Sequences
//
// A sample sequence is a plain []float64 at an implied sample rate. Every
// function returns a slice owned by the caller. Fade is the one exception
// to "fresh output": it scales its argument in place and returns it.
//
// # Pipeline
//
// The usual chain is:
//
//	raw := signal.Scan(grid, signal.Bidirectional)
//	img, report := signal.Normalize(raw, 0.95)
//	signal.Fade(img, signal.DefaultFadeLength(48000))
//
//	osc, err := signal.Generate(signal.OscillatorSpec{
//	    Waveform:   signal.Sine,
//	    Frequency:  440,
//	    Samples:    len(img),
//	    SampleRate: 48000,
//	})
//	signal.Fade(osc, signal.DefaultFadeLength(48000))
//
//	out, report := signal.Mix(img, osc, 0.95, signal.DefaultFadeLength(48000))
//
// # Error Handling
//
// Nothing in this package panics on bad input. A constant input to Normalize
// yields silence and a Report with Degenerate set; an oversized fade is
// clamped; an invalid OscillatorSpec is rejected with ErrInvalidSpec.
package signal
