// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes RIFF/WAVE files.
//
// Decoding goes through github.com/go-audio/wav for header and chunk
// parsing. Integer PCM at 8, 16, 24 and 32 bits is streamed through the
// go-audio IntBuffer API; IEEE float data (format tag 3) at 32 or 64 bits
// is read directly from the data chunk.
//
//	src, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    // ErrNotWavFile, ErrUnsupportedFormat, ErrUnsupportedBitDepth, ...
//	}
//	buf := make([]float32, src.BufSize())
//	n, err := src.ReadSamples(buf)
//
// Every decoder output is float32 in [-1, 1]. Unsigned 8-bit data is
// re-centred on zero.
//
// # Writing
//
// Write stores a mono []float64 signal in one of three encodings:
//
//	f, _ := os.Create("out.wav")
//	err := wav.Write(f, 48000, samples, wav.Float32)
//
// Float32 keeps the signal bit-exact to single precision and is the
// default export format. PCM16 and PCM24 clamp to [-1, 1] and go through
// the go-audio encoder, which patches the header sizes on Close and so
// needs an io.WriteSeeker.
//
// WriteFloat32 and WriteWAV16 only need an io.Writer because the sizes are
// known before the first byte is written.
package wav
