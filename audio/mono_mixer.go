// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// MonoMixer averages all channels of src into a single channel.
type MonoMixer struct {
	src Source
	tmp []float32
}

func NewMonoMixer(src Source) *MonoMixer {
	return &MonoMixer{
		src: src,
		tmp: make([]float32, 4096),
	}
}

func (m *MonoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *MonoMixer) Channels() int   { return 1 }
func (m *MonoMixer) BufSize() int    { return m.src.BufSize() }

func (m *MonoMixer) Close() error {
	if err := m.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// ReadSamples writes up to len(dst) mono frames.
func (m *MonoMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := m.src.Channels()
	if channels == 1 {
		return m.src.ReadSamples(dst)
	}

	want := len(dst) * channels
	if cap(m.tmp) < want {
		m.tmp = make([]float32, max(want, 8192))
	}
	m.tmp = m.tmp[:want]

	n, err := m.src.ReadSamples(m.tmp)
	if n == 0 {
		return 0, err
	}

	frames := n / channels
	in := m.tmp

	switch channels {
	case 2:
		for f := range frames {
			dst[f] = (in[2*f] + in[2*f+1]) * 0.5
		}
	default:
		scale := 1 / float32(channels)
		for f := range frames {
			var sum float32
			for _, v := range in[f*channels : (f+1)*channels] {
				sum += v
			}
			dst[f] = sum * scale
		}
	}

	return frames, err
}
