// SPDX-License-Identifier: EPL-2.0

package audio

import "io"

// SequenceSource streams a mono []float64 sequence as float32 samples.
// It is how rendered signals reach playback and streaming writers.
type SequenceSource struct {
	data []float64
	rate int
	pos  int
}

func NewSequenceSource(data []float64, sampleRate int) *SequenceSource {
	return &SequenceSource{data: data, rate: sampleRate}
}

func (s *SequenceSource) SampleRate() int { return s.rate }
func (s *SequenceSource) Channels() int   { return 1 }
func (s *SequenceSource) BufSize() int    { return 4096 }
func (s *SequenceSource) Close() error    { return nil }

// Len is the total number of samples in the sequence.
func (s *SequenceSource) Len() int { return len(s.data) }

// Remaining is the number of samples not yet read.
func (s *SequenceSource) Remaining() int { return len(s.data) - s.pos }

// Reset rewinds to the first sample.
func (s *SequenceSource) Reset() { s.pos = 0 }

func (s *SequenceSource) ReadSamples(dst []float32) (int, error) {
	if s.pos >= len(s.data) {
		return 0, io.EOF
	}
	if len(dst) == 0 {
		return 0, nil
	}

	n := copyFloat32(dst, s.data[s.pos:])
	s.pos += n

	if s.pos >= len(s.data) {
		return n, io.EOF
	}
	return n, nil
}

// ToFloat32 converts a sequence to float32 samples.
func ToFloat32(data []float64) []float32 {
	out := make([]float32, len(data))
	copyFloat32(out, data)
	return out
}

func copyFloat32(dst []float32, src []float64) int {
	n := min(len(dst), len(src))
	for i, v := range src[:n] {
		dst[i] = float32(v)
	}
	return n
}
