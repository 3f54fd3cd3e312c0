// SPDX-License-Identifier: EPL-2.0

//go:build !headless

package playback

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/ik5/sonipix/audio"
)

// pollInterval is how often Play checks whether oto has drained the signal.
const pollInterval = 10 * time.Millisecond

// OtoPlayer owns the process-wide oto context. oto allows one context per
// process, so create a single OtoPlayer and reuse it.
type OtoPlayer struct {
	ctx  *oto.Context
	rate int
	mtx  sync.Mutex
}

// New opens the default output device as mono float32 at sampleRate.
func New(sampleRate int) (Player, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("opening audio device: %w", err)
	}
	<-ready

	return &OtoPlayer{ctx: ctx, rate: sampleRate}, nil
}

// Play streams data and blocks until oto has played all of it. Calls are
// serialized; cancelling ctx stops the sound immediately.
func (p *OtoPlayer) Play(ctx context.Context, data []float64) error {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	if len(data) == 0 {
		return nil
	}

	player := p.ctx.NewPlayer(NewFrameReader(audio.NewSequenceSource(data, p.rate)))
	defer player.Close()

	player.Play()

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for player.IsPlaying() {
		select {
		case <-ctx.Done():
			player.Pause()
			return ctx.Err()
		case <-ticker.C:
		}
	}

	if err := player.Err(); err != nil {
		return fmt.Errorf("playing signal: %w", err)
	}

	return nil
}

// Close suspends the device. The oto context itself lives until exit.
func (p *OtoPlayer) Close() error {
	return p.ctx.Suspend()
}
