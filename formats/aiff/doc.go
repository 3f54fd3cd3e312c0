// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF (Audio Interchange File Format) files.
//
// Container parsing is done by github.com/go-audio/aiff; the samples are
// streamed through the shared go-audio IntBuffer adapter so AIFF and WAV
// kernels behave the same once decoded.
//
//	src, err := aiff.Decoder{}.Decode(file)
//	if errors.Is(err, aiff.ErrUnsupportedBitDepth) {
//	    // 8, 16, 24 and 32-bit PCM only
//	}
//
// Output is float32 in [-1, 1] with the file's own rate and channel
// count. AIFF-C (compressed) files are not supported and there is no
// encoder.
//
// Inputs that cannot seek are read fully into memory first, since the
// go-audio parser needs an io.ReadSeeker.
package aiff
