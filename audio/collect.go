// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// Collect drains src into a mono sequence at rate Hz. Multi-channel input is
// averaged by a MonoMixer; a different source rate goes through a Resampler.
// The source is not closed.
func Collect(src Source, rate int) ([]float64, error) {
	var stream Source = NewMonoMixer(src)
	if src.SampleRate() != rate {
		stream = NewResampler(stream, rate)
	}

	out := make([]float64, 0, rate)
	buf := make([]float32, 4096)
	empty := 0

	for {
		n, err := stream.ReadSamples(buf)
		for _, v := range buf[:n] {
			out = append(out, float64(v))
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("collecting samples: %w", err)
		}

		if n == 0 {
			if empty++; empty >= maxEmptyReads {
				return nil, io.ErrNoProgress
			}
		} else {
			empty = 0
		}
	}

	if len(out) == 0 {
		return nil, ErrEmptySource
	}

	return out, nil
}

// Fit returns a sequence of exactly n samples built from data: longer input
// is truncated, shorter input is repeated from the start. A fresh slice is
// always returned. n <= 0 or empty data yields an empty sequence.
func Fit(data []float64, n int) []float64 {
	if n <= 0 || len(data) == 0 {
		return []float64{}
	}

	out := make([]float64, n)
	for i := 0; i < n; i += len(data) {
		copy(out[i:], data)
	}

	return out
}
