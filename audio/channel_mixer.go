// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// ChannelMixer converts the channel count of src.
//
// Down to mono it averages all channels. Up from mono it copies the single
// channel into every output channel. Any other conversion averages the
// input frame and writes the average to every output channel.
type ChannelMixer struct {
	src Source
	out int
	tmp []float32
}

// NewChannelMixer returns a Source with channels output channels.
func NewChannelMixer(src Source, channels int) *ChannelMixer {
	return &ChannelMixer{
		src: src,
		out: channels,
		tmp: make([]float32, 4096),
	}
}

// NewMonoMixer is shorthand for NewChannelMixer(src, 1).
func NewMonoMixer(src Source) *ChannelMixer {
	return NewChannelMixer(src, 1)
}

func (m *ChannelMixer) SampleRate() int { return m.src.SampleRate() }
func (m *ChannelMixer) Channels() int   { return m.out }
func (m *ChannelMixer) Close() error {
	if err := m.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (m *ChannelMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst)%m.out != 0 {
		return 0, ErrInvalidDstSize
	}
	if len(dst) == 0 {
		return 0, nil
	}

	in := m.src.Channels()
	if in == m.out {
		return m.src.ReadSamples(dst)
	}

	frames := len(dst) / m.out
	need := frames * in
	if cap(m.tmp) < need {
		m.tmp = make([]float32, max(need, 8192))
	}
	m.tmp = m.tmp[:need]

	n, err := m.src.ReadSamples(m.tmp)
	if n == 0 {
		if err == nil {
			err = io.EOF
		}
		return 0, err
	}
	got := n / in

	switch {
	case in == 1:
		for f := range got {
			v := m.tmp[f]
			row := dst[f*m.out : (f+1)*m.out]
			for c := range row {
				row[c] = v
			}
		}
	case in == 2 && m.out == 1:
		for f := range got {
			dst[f] = (m.tmp[f<<1] + m.tmp[f<<1+1]) * 0.5
		}
	default:
		inv := float32(1.0) / float32(in)
		for f := range got {
			var sum float32
			for _, v := range m.tmp[f*in : (f+1)*in] {
				sum += v
			}
			avg := sum * inv
			row := dst[f*m.out : (f+1)*m.out]
			for c := range row {
				row[c] = avg
			}
		}
	}

	return got * m.out, err
}
