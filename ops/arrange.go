// SPDX-License-Identifier: EPL-2.0

package ops

import (
	"fmt"

	"github.com/ik5/sampleblend/audio"
)

// Repeat plays b n times in a row.
func Repeat(b audio.Buffer, n int) (audio.Buffer, error) {
	if n <= 0 {
		return audio.Buffer{}, fmt.Errorf("%w: repeat %d times", audio.ErrInvalidParameter, n)
	}

	out := make([]float32, 0, len(b.Samples)*n)
	for range n {
		out = append(out, b.Samples...)
	}
	return audio.Buffer{Format: b.Format, Samples: out}, nil
}

// Chop keeps the first 1/n of b and repeats it n times, a stutter that
// roughly preserves the duration.
func Chop(b audio.Buffer, n int) (audio.Buffer, error) {
	if n <= 0 {
		return audio.Buffer{}, fmt.Errorf("%w: chop into %d", audio.ErrInvalidParameter, n)
	}

	head, err := Cut(b, audio.Seconds(0), audio.Seconds(b.Duration()/float64(n)))
	if err != nil {
		return audio.Buffer{}, fmt.Errorf("chop: %w", err)
	}
	return Repeat(head, n)
}

// Reverse plays b backwards. Channel order inside each frame is kept.
func Reverse(b audio.Buffer) audio.Buffer {
	ch := b.Format.Channels
	frames := b.Frames()

	out := make([]float32, len(b.Samples))
	for i := range frames {
		copy(out[i*ch:(i+1)*ch], b.Samples[(frames-1-i)*ch:(frames-i)*ch])
	}
	return audio.Buffer{Format: b.Format, Samples: out}
}

// Remix splits b into len(pattern) segments and reorders them. Each symbol
// of pattern is a 1-based segment number, so "2143" swaps neighbours and
// "1111" loops the opening segment.
func Remix(b audio.Buffer, pattern string) (audio.Buffer, error) {
	symbols := []rune(pattern)
	n := len(symbols)
	if n == 0 {
		return audio.Buffer{}, fmt.Errorf("%w: empty remix pattern", audio.ErrInvalidParameter)
	}

	order := make([]int, n)
	for i, r := range symbols {
		idx := int(r - '0')
		if r < '0' || r > '9' || idx < 1 || idx > n {
			return audio.Buffer{}, fmt.Errorf("%w: remix symbol %q, want 1..%d", audio.ErrInvalidParameter, r, n)
		}
		order[i] = idx - 1
	}

	segs, err := Split(b, n)
	if err != nil {
		return audio.Buffer{}, fmt.Errorf("remix: %w", err)
	}

	picked := make([]audio.Buffer, n)
	for i, idx := range order {
		picked[i] = segs[idx]
	}
	return Join(picked)
}
