// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/sonipix/utils"
)

// maxEmptyReads bounds how often a source may return (0, nil) in a row.
const maxEmptyReads = 100

// Resampler converts src to another sample rate with Catmull-Rom cubic
// interpolation. Channel count is preserved. When downsampling, a one-pole
// low-pass smooths the input first.
type Resampler struct {
	src      Source
	dstRate  int
	step     float64 // source frames advanced per output frame
	channels int

	// win holds source frames base-1, base, base+1, base+2. Frames past
	// either end of the stream repeat the nearest real frame.
	win  [4][]float32
	base int
	frac float64

	primed bool
	done   bool
	read   int // real frames pulled from src
	last   int // index of the final real frame, valid once done

	in    []float32
	inPos int
	inLen int
	inEOF bool

	smooth bool
	alpha  float32
	prev   []float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	step := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		step:     step,
		channels: channels,
		in:       make([]float32, 1024*channels),
		smooth:   step > 1,
		alpha:    0.5,
		prev:     make([]float32, channels),
	}

	for i := range r.win {
		r.win[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// fetch copies the next source frame into dst. It returns false once the
// source is exhausted.
func (r *Resampler) fetch(dst []float32) (bool, error) {
	empty := 0

	for r.inPos >= r.inLen {
		if r.inEOF {
			return false, nil
		}

		n, err := r.src.ReadSamples(r.in)
		r.inPos = 0
		r.inLen = n - n%r.channels

		if err == io.EOF {
			r.inEOF = true
		} else if err != nil {
			return false, fmt.Errorf("%w", err)
		}

		if n == 0 && !r.inEOF {
			if empty++; empty >= maxEmptyReads {
				return false, io.ErrNoProgress
			}
		}
	}

	copy(dst, r.in[r.inPos:r.inPos+r.channels])
	r.inPos += r.channels

	if r.smooth {
		if r.read == 0 {
			copy(r.prev, dst)
		}
		for c := range dst {
			dst[c] = r.alpha*dst[c] + (1-r.alpha)*r.prev[c]
			r.prev[c] = dst[c]
		}
	}
	r.read++

	return true, nil
}

// pull fills slot with the next frame, or repeats the previous slot past EOF.
func (r *Resampler) pull(slot int) error {
	if !r.done {
		ok, err := r.fetch(r.win[slot])
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
		r.done = true
		r.last = r.read - 1
	}

	copy(r.win[slot], r.win[slot-1])
	return nil
}

func (r *Resampler) prime() error {
	ok, err := r.fetch(r.win[1])
	if err != nil {
		return err
	}
	if !ok {
		r.done = true
		r.last = -1
		return nil
	}

	copy(r.win[0], r.win[1])
	if err := r.pull(2); err != nil {
		return err
	}
	return r.pull(3)
}

// advance slides the window one source frame forward.
func (r *Resampler) advance() error {
	r.win[0], r.win[1], r.win[2], r.win[3] = r.win[1], r.win[2], r.win[3], r.win[0]
	r.base++
	return r.pull(3)
}

// ReadSamples produces interleaved output at the destination rate.
// len(dst) must be a multiple of Channels().
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		r.primed = true
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	frames := len(dst) / r.channels
	written := 0

	for written < frames {
		for r.frac >= 1 {
			r.frac--
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
		}

		if r.done && (r.base > r.last || (r.base == r.last && r.frac > 0)) {
			return written * r.channels, io.EOF
		}

		x := float32(r.frac)
		out := dst[written*r.channels : (written+1)*r.channels]
		for c := range out {
			out[c] = utils.CubicInterpolate(r.win[0][c], r.win[1][c], r.win[2][c], r.win[3][c], x)
		}

		written++
		r.frac += r.step
	}

	return written * r.channels, nil
}
