// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides synthetic audio sources for tests.
package audiotest

import (
	"errors"
	"io"
	"math"
)

// ErrBroken is returned by sources built with NewBrokenSource.
var ErrBroken = errors.New("audiotest: broken source")

// Source generates frames from a function of (frame, channel).
// It satisfies audio.Source without importing it.
type Source struct {
	sampleRate int
	channels   int
	frames     int
	pos        int
	closed     bool
	failAt     int // frame index at which reads start failing, or -1
	waveform   func(frame, channel int) float32
}

// NewSource builds a source of frames frames.
func NewSource(sampleRate, channels, frames int, waveform func(frame, channel int) float32) *Source {
	return &Source{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		failAt:     -1,
		waveform:   waveform,
	}
}

// NewSilentSource produces zeros.
func NewSilentSource(sampleRate, channels, frames int) *Source {
	return NewConstantSource(sampleRate, channels, frames, 0)
}

// NewConstantSource produces the same value on every channel.
func NewConstantSource(sampleRate, channels, frames int, value float32) *Source {
	return NewSource(sampleRate, channels, frames, func(int, int) float32 { return value })
}

// NewSineSource produces a sine of frequency Hz on every channel.
func NewSineSource(sampleRate, channels, frames int, frequency float64) *Source {
	return NewSource(sampleRate, channels, frames, func(frame, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewRampSource produces frame/frames on every channel.
func NewRampSource(sampleRate, channels, frames int) *Source {
	return NewSource(sampleRate, channels, frames, func(frame, _ int) float32 {
		return float32(frame) / float32(frames)
	})
}

// NewBrokenSource produces good frames until failAt, then ErrBroken.
func NewBrokenSource(sampleRate, channels, frames, failAt int) *Source {
	s := NewConstantSource(sampleRate, channels, frames, 0.25)
	s.failAt = failAt
	return s
}

func (s *Source) SampleRate() int { return s.sampleRate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) BufSize() int    { return 4096 }

func (s *Source) Close() error {
	s.closed = true
	return nil
}

// Closed reports whether Close was called.
func (s *Source) Closed() bool { return s.closed }

// Reset rewinds the source.
func (s *Source) Reset() { s.pos = 0 }

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if s.failAt >= 0 && s.pos >= s.failAt {
		return 0, ErrBroken
	}
	if s.pos >= s.frames {
		return 0, io.EOF
	}

	n := min(len(dst)/s.channels, s.frames-s.pos)
	if s.failAt >= 0 {
		n = min(n, s.failAt-s.pos)
	}

	for f := range n {
		for c := range s.channels {
			dst[f*s.channels+c] = s.waveform(s.pos+f, c)
		}
	}
	s.pos += n

	if s.pos >= s.frames {
		return n * s.channels, io.EOF
	}
	return n * s.channels, nil
}
