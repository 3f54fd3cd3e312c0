// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/go-audio/wav"

	"github.com/ik5/sonipix/audio"
	"github.com/ik5/sonipix/internal/intbuf"
)

// WAVE format tags.
const (
	formatPCM   = 1
	formatFloat = 3
)

// floatSource streams IEEE float samples straight out of the data chunk.
type floatSource struct {
	r          io.Reader
	sampleRate int
	channels   int
	width      int
	buf        []byte
}

func (s *floatSource) SampleRate() int { return s.sampleRate }
func (s *floatSource) Channels() int   { return s.channels }
func (s *floatSource) Close() error    { return nil }
func (s *floatSource) BufSize() int    { return intbuf.DefaultBufSize }

func (s *floatSource) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	want := len(dst) * s.width
	if cap(s.buf) < want {
		s.buf = make([]byte, want)
	}
	s.buf = s.buf[:want]

	m, err := io.ReadFull(s.r, s.buf)
	n := m / s.width
	for i := range n {
		b := s.buf[i*s.width:]
		if s.width == 8 {
			dst[i] = float32(math.Float64frombits(binary.LittleEndian.Uint64(b)))
		} else {
			dst[i] = math.Float32frombits(binary.LittleEndian.Uint32(b))
		}
	}

	switch err {
	case nil:
		return n, nil
	case io.EOF, io.ErrUnexpectedEOF:
		return n, io.EOF
	default:
		return n, fmt.Errorf("reading float samples: %w", err)
	}
}

// Decoder reads RIFF/WAVE files holding integer PCM (8, 16, 24 or 32 bit)
// or IEEE float (32 or 64 bit) samples.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := intbuf.Seekable(r)
	if err != nil {
		return nil, fmt.Errorf("reading wav data: %w", err)
	}

	dec := wav.NewDecoder(rs)
	dec.ReadInfo()
	if dec.Err() != nil || dec.NumChans == 0 {
		return nil, ErrNotWavFile
	}

	rate := int(dec.SampleRate)
	channels := int(dec.NumChans)
	depth := int(dec.BitDepth)

	switch dec.WavAudioFormat {
	case formatPCM:
		switch depth {
		case 8, 16, 24, 32:
		default:
			return nil, fmt.Errorf("%d-bit pcm: %w", depth, ErrUnsupportedBitDepth)
		}
	case formatFloat:
		if depth != 32 && depth != 64 {
			return nil, fmt.Errorf("%d-bit float: %w", depth, ErrUnsupportedBitDepth)
		}
	default:
		return nil, fmt.Errorf("format tag %#x: %w", dec.WavAudioFormat, ErrUnsupportedFormat)
	}

	if err := dec.FwdToPCM(); err != nil || dec.PCMChunk == nil {
		return nil, ErrMissingData
	}

	if dec.WavAudioFormat == formatFloat {
		return &floatSource{
			r:          io.LimitReader(dec.PCMChunk.R, int64(dec.PCMSize)),
			sampleRate: rate,
			channels:   channels,
			width:      depth / 8,
		}, nil
	}

	src := intbuf.NewSource(dec, rate, channels, depth)
	if depth == 8 {
		src.WithBias(128)
	}

	return src, nil
}
