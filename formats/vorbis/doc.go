// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files with
// github.com/jfreymuth/oggvorbis.
//
// The decoder yields float32 samples natively, so no integer conversion is
// involved. Reads always return whole frames: a destination shorter than
// one frame fails with audio.ErrInvalidDstSize.
//
//	src, err := vorbis.Decoder{}.Decode(file)
//	kernel, err := audio.Collect(src, 48000)
//
// There is no encoder.
package vorbis
