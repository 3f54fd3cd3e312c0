// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"

	"github.com/ik5/sonipix/audio"
	"github.com/ik5/sonipix/internal/intbuf"
)

// Decoder reads uncompressed AIFF files. Samples are signed big-endian
// integers in the container and float32 in [-1, 1] on the way out.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := intbuf.Seekable(r)
	if err != nil {
		return nil, fmt.Errorf("reading aiff data: %w", err)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}
	dec.ReadInfo()

	depth := int(dec.BitDepth)
	if !supportedDepth(depth) {
		return nil, fmt.Errorf("%d-bit: %w", depth, ErrUnsupportedBitDepth)
	}

	format := dec.Format()
	if format == nil || format.NumChannels < 1 || format.SampleRate < 1 {
		return nil, ErrUnsupportedAiffLayout
	}

	return intbuf.NewSource(dec, format.SampleRate, format.NumChannels, depth), nil
}

func supportedDepth(bits int) bool {
	switch bits {
	case 8, 16, 24, 32:
		return true
	default:
		return false
	}
}
