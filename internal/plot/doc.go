// SPDX-License-Identifier: EPL-2.0

// Package plot draws waveforms and spectra, either as braille text for a
// terminal or as PNG images.
//
// Text plots are built on a [Canvas], where every character holds a 2×4
// block of dots. Spectra use a logarithmic frequency axis from
// [MinFrequency] up to [MaxFrequency] or the Nyquist rate.
package plot
