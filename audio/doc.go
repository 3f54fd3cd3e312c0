// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming primitives used around the
// sonification core.
//
// This package contains:
//   - Source interface for interleaved float32 streams
//   - SequenceSource to stream a rendered []float64 signal
//   - Resampler for sample rate conversion
//   - MonoMixer for channel mixing
//   - Collect and Fit to turn a decoded recording into a convolution kernel
//   - Registry to pick a decoder by file extension
//
// # Source Interface
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Decoders in the formats/ tree and the processors here all implement it,
// so they chain freely.
//
// # Sample Kernels
//
// Any decodable recording can stand in for the synthesized oscillator:
//
//	reg := audio.NewRegistry()
//	reg.Register(wav.Decoder{}, "wav")
//	dec, err := reg.Lookup("voice.wav")
//	src, err := dec.Decode(file)
//	kernel, err := audio.Collect(src, 48000) // mono, 48 kHz
//	kernel = audio.Fit(kernel, len(imageSignal))
//
// # Streaming a Signal
//
//	src := audio.NewSequenceSource(signal, 48000)
//	buf := make([]float32, 1024)
//	n, err := src.ReadSamples(buf)
//
// # Error Handling
//
// Sources return io.EOF when no more data is available:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    if err == io.EOF {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    // Process n samples from buf
//	}
package audio
