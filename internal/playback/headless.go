// SPDX-License-Identifier: EPL-2.0

//go:build headless

package playback

import (
	"context"
	"io"

	"github.com/ik5/sonipix/audio"
)

// HeadlessPlayer runs the same frame conversion as the device backend and
// throws the bytes away.
type HeadlessPlayer struct {
	rate int
}

func New(sampleRate int) (Player, error) {
	return &HeadlessPlayer{rate: sampleRate}, nil
}

func (p *HeadlessPlayer) Play(ctx context.Context, data []float64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := io.Copy(io.Discard, NewFrameReader(audio.NewSequenceSource(data, p.rate)))
	return err
}

func (p *HeadlessPlayer) Close() error { return nil }
