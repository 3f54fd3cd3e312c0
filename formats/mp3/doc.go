// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 files with github.com/hajimehoshi/go-mp3.
//
//	src, err := mp3.Decoder{}.Decode(file)
//	buf := make([]float32, src.BufSize())
//	n, err := src.ReadSamples(buf)
//
// go-mp3 always yields interleaved stereo, so Channels is 2 even for mono
// files. audio.Collect folds the channels and fixes the rate when the
// stream is used as a convolution kernel:
//
//	kernel, err := audio.Collect(src, 48000)
//
// There is no encoder.
package mp3
