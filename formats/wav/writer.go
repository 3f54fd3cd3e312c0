// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strings"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/sonipix/utils"
)

// Encoding selects the sample format of an exported file.
type Encoding int

const (
	Float32 Encoding = iota
	PCM16
	PCM24
)

func (e Encoding) String() string {
	switch e {
	case Float32:
		return "float32"
	case PCM16:
		return "pcm16"
	case PCM24:
		return "pcm24"
	default:
		return fmt.Sprintf("Encoding(%d)", int(e))
	}
}

// BitDepth of one sample in this encoding.
func (e Encoding) BitDepth() int {
	switch e {
	case PCM16:
		return 16
	case PCM24:
		return 24
	default:
		return 32
	}
}

// ParseEncoding accepts the names produced by Encoding.String, case-insensitive.
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "float32", "float":
		return Float32, nil
	case "pcm16":
		return PCM16, nil
	case "pcm24":
		return PCM24, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownEncoding)
	}
}

// Write stores data as a mono WAV file at sampleRate. Samples are expected
// in [-1, 1]; integer encodings clamp anything outside.
//
// PCM goes through the go-audio encoder, which patches the header by
// seeking back. When w cannot seek (a pipe, a socket) PCM16 is streamed
// with WriteWAV16 instead and PCM24 fails with ErrNotSeekable.
func Write(w io.Writer, sampleRate int, data []float64, enc Encoding) error {
	switch enc {
	case Float32:
		return WriteFloat32(w, sampleRate, data)
	case PCM16, PCM24:
		if ws, ok := seekable(w); ok {
			return writePCM(ws, sampleRate, data, enc.BitDepth())
		}
		if enc == PCM16 {
			return WriteWAV16(w, sampleRate, utils.Float64sToInt16(data))
		}
		return fmt.Errorf("%v: %w", enc, ErrNotSeekable)
	default:
		return fmt.Errorf("%v: %w", enc, ErrUnknownEncoding)
	}
}

// seekable reports whether w can actually seek. *os.File always has a Seek
// method, but it fails on pipes and terminals.
func seekable(w io.Writer) (io.WriteSeeker, bool) {
	ws, ok := w.(io.WriteSeeker)
	if !ok {
		return nil, false
	}

	_, err := ws.Seek(0, io.SeekCurrent)
	return ws, err == nil
}

func writePCM(w io.WriteSeeker, sampleRate int, data []float64, bits int) error {
	ints := make([]int, len(data))
	for i, v := range data {
		ints[i] = utils.ToPCM(v, bits)
	}

	e := wav.NewEncoder(w, sampleRate, bits, 1, formatPCM)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           ints,
		SourceBitDepth: bits,
	}

	if err := e.Write(buf); err != nil {
		return fmt.Errorf("encoding %d-bit pcm: %w", bits, err)
	}
	if err := e.Close(); err != nil {
		return fmt.Errorf("finalizing wav: %w", err)
	}

	return nil
}

// header builds the canonical 44-byte header for a single data chunk of
// frames mono samples.
func header(format uint16, bits, sampleRate, frames int) []byte {
	blockAlign := uint16(bits / 8)
	byteRate := uint32(sampleRate) * uint32(blockAlign)
	dataSize := uint32(frames) * uint32(blockAlign)

	h := make([]byte, 44)

	copy(h[0:4], "RIFF")
	binary.LittleEndian.PutUint32(h[4:8], 36+dataSize)
	copy(h[8:12], "WAVE")

	copy(h[12:16], "fmt ")
	binary.LittleEndian.PutUint32(h[16:20], 16)
	binary.LittleEndian.PutUint16(h[20:22], format)
	binary.LittleEndian.PutUint16(h[22:24], 1)
	binary.LittleEndian.PutUint32(h[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(h[28:32], byteRate)
	binary.LittleEndian.PutUint16(h[32:34], blockAlign)
	binary.LittleEndian.PutUint16(h[34:36], uint16(bits))

	copy(h[36:40], "data")
	binary.LittleEndian.PutUint32(h[40:44], dataSize)

	return h
}

// chunkFrames bounds the staging buffer used while streaming sample data.
const chunkFrames = 8192

// WriteFloat32 writes a mono IEEE float WAV. Unlike Write it only needs an
// io.Writer since the header sizes are known up front.
func WriteFloat32(w io.Writer, sampleRate int, data []float64) error {
	if _, err := w.Write(header(formatFloat, 32, sampleRate, len(data))); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	buf := make([]byte, 4*min(len(data), chunkFrames))
	for i := 0; i < len(data); i += chunkFrames {
		chunk := data[i:min(i+chunkFrames, len(data))]
		b := buf[:4*len(chunk)]
		for j, v := range chunk {
			binary.LittleEndian.PutUint32(b[4*j:], math.Float32bits(float32(v)))
		}
		if _, err := w.Write(b); err != nil {
			return fmt.Errorf("writing samples: %w", err)
		}
	}

	return nil
}

// WriteWAV16 writes a mono 16-bit PCM WAV at sampleRate. samples must
// already be int16 PCM.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16) error {
	if _, err := w.Write(header(formatPCM, 16, sampleRate, len(samples))); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	buf := make([]byte, 2*min(len(samples), chunkFrames))
	for i := 0; i < len(samples); i += chunkFrames {
		chunk := samples[i:min(i+chunkFrames, len(samples))]
		b := buf[:2*len(chunk)]
		for j, s := range chunk {
			binary.LittleEndian.PutUint16(b[2*j:], uint16(s))
		}
		if _, err := w.Write(b); err != nil {
			return fmt.Errorf("writing samples: %w", err)
		}
	}

	return nil
}
