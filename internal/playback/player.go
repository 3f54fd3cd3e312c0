// SPDX-License-Identifier: EPL-2.0

// Package playback plays rendered signals on the default audio device.
//
// The real backend uses github.com/ebitengine/oto/v3 and needs cgo on most
// platforms. Building with -tags headless swaps it for a backend that
// consumes the frames without producing sound.
package playback

import (
	"context"
	"encoding/binary"
	"io"
	"math"
	"time"

	"github.com/ik5/sonipix/audio"
)

// Player plays a mono signal and returns once it has finished, failed or
// ctx was cancelled.
type Player interface {
	Play(ctx context.Context, data []float64) error
	Close() error
}

// Duration is how long n samples last at sampleRate.
func Duration(n, sampleRate int) time.Duration {
	if sampleRate <= 0 {
		return 0
	}
	return time.Duration(n) * time.Second / time.Duration(sampleRate)
}

const bytesPerFrame = 4

// FrameReader serializes a mono Source as 32-bit little-endian float
// frames, the layout oto.FormatFloat32LE expects.
type FrameReader struct {
	src audio.Source
	buf []float32
	err error
}

func NewFrameReader(src audio.Source) *FrameReader {
	return &FrameReader{src: src}
}

func (r *FrameReader) Read(p []byte) (int, error) {
	if r.err != nil {
		return 0, r.err
	}

	frames := len(p) / bytesPerFrame
	if frames == 0 {
		if len(p) == 0 {
			return 0, nil
		}
		return 0, io.ErrShortBuffer
	}

	if cap(r.buf) < frames {
		r.buf = make([]float32, frames)
	}
	r.buf = r.buf[:frames]

	n, err := r.src.ReadSamples(r.buf)
	for i, v := range r.buf[:n] {
		binary.LittleEndian.PutUint32(p[i*bytesPerFrame:], math.Float32bits(v))
	}
	if err != nil {
		r.err = err
	}

	return n * bytesPerFrame, err
}

// Discard accepts every signal and plays nothing. It backs the
// "playback: false" setting.
type Discard struct{}

func (Discard) Play(ctx context.Context, _ []float64) error { return ctx.Err() }
func (Discard) Close() error                               { return nil }
