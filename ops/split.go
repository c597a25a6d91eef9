// SPDX-License-Identifier: EPL-2.0

package ops

import (
	"fmt"

	"github.com/ik5/sampleblend/audio"
)

// Split divides b into n contiguous segments of equal frame count. The last
// segment also takes the frames left over by the division.
func Split(b audio.Buffer, n int) ([]audio.Buffer, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: split into %d segments", audio.ErrInvalidParameter, n)
	}
	if n == 1 {
		return []audio.Buffer{b.Clone()}, nil
	}

	frames := b.Frames() / n
	if frames == 0 {
		return nil, fmt.Errorf("%w: %d segments from %d frames", audio.ErrTooManySegments, n, b.Frames())
	}

	size := frames * b.Format.Channels
	out := make([]audio.Buffer, n)
	for i := range n {
		from := i * size
		to := from + size
		if i == n-1 {
			to = len(b.Samples)
		}
		seg := make([]float32, to-from)
		copy(seg, b.Samples[from:to])
		out[i] = audio.Buffer{Format: b.Format, Samples: seg}
	}
	return out, nil
}

// Join concatenates bs in order.
func Join(bs []audio.Buffer) (audio.Buffer, error) {
	if len(bs) == 0 {
		return audio.Buffer{}, fmt.Errorf("join: %w", audio.ErrEmptyInput)
	}

	total := 0
	for i, b := range bs {
		if err := audio.CheckFormat(bs[0], b); err != nil {
			return audio.Buffer{}, fmt.Errorf("join segment %d: %w", i, err)
		}
		total += len(b.Samples)
	}

	out := make([]float32, 0, total)
	for _, b := range bs {
		out = append(out, b.Samples...)
	}
	return audio.Buffer{Format: bs[0].Format, Samples: out}, nil
}
