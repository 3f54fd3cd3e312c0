// SPDX-License-Identifier: EPL-2.0

// Package sonipix turns greyscale images into sound.
//
// An image is read as an intensity grid, linearized into a sample sequence,
// normalized and faded. The result is then convolved with an oscillator
// tone (or any decoded audio file) to give it pitch and timbre.
//
// # Quick Start
//
//	grid, _, _ := imaging.LoadFile("Greyscale Images/moon.png")
//	opts := sonipix.DefaultOptions()
//
//	img, report := sonipix.ImageSignal(grid, opts)
//	if err := report.Warning(); err != nil {
//	    // flat image: img is silence
//	}
//
//	osc, _ := sonipix.OscillatorSignal(signal.OscillatorSpec{
//	    Waveform:  signal.Sine,
//	    Frequency: 440,
//	    Samples:   len(img),
//	}, opts)
//
//	final, _ := sonipix.Blend(img, osc, opts)
//
//	f, _ := os.Create("WAV Exports/moon_Sine_Wave_440Hz_1.00s.wav")
//	wav.Write(f, opts.SampleRate, final, wav.Float32)
//
// # Packages
//
// The numeric work lives in the signal package; this package only chains
// its stages with a shared Options value:
//   - signal: scan, normalize, fade, oscillators, convolution, spectrum
//   - imaging: image decoding to 8-bit luma grids
//   - audio: streaming sources, mono mixing, resampling
//   - formats/wav, formats/aiff, formats/mp3, formats/vorbis: codecs
//
// # Kernels
//
// FitKernel replaces the synthesized oscillator with a recording. The file
// is first mixed to mono and resampled by audio.Collect, then looped or
// truncated to the image length:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	rec, _ := audio.Collect(src, opts.SampleRate)
//	kernel, err := sonipix.FitKernel(rec, len(img), opts)
//
// # Sample Rates and Durations
//
// Every sequence is interpreted at Options.SampleRate. An image of W×H
// pixels lasts W·H/rate seconds; the blended signal is one sample shorter
// than twice that.
package sonipix
