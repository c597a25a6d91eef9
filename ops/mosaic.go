// SPDX-License-Identifier: EPL-2.0

package ops

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/ik5/sampleblend/audio"
)

// SilenceSymbol is the pattern symbol for a segment of silence.
const SilenceSymbol = '_'

// SegmentFunc post-processes a freshly picked mosaic segment.
type SegmentFunc func(audio.Buffer) (audio.Buffer, error)

// ValidatePattern reports whether pattern only holds a..z and '_'.
func ValidatePattern(pattern string) error {
	if pattern == "" {
		return fmt.Errorf("%w: empty mosaic pattern", audio.ErrInvalidParameter)
	}
	for i, r := range pattern {
		if r != SilenceSymbol && (r < 'a' || r > 'z') {
			return fmt.Errorf("%w: mosaic symbol %q at %d", audio.ErrInvalidParameter, r, i)
		}
	}
	return nil
}

// Mosaic lays out segments of segmentLen seconds following pattern.
//
// The first occurrence of a letter picks a random segment from b (and runs
// it through post when post is not nil); later occurrences of the same
// letter repeat that exact segment. '_' inserts silence.
func Mosaic(b audio.Buffer, rng *rand.Rand, pattern string, segmentLen float64, post SegmentFunc) (audio.Buffer, error) {
	if err := ValidatePattern(pattern); err != nil {
		return audio.Buffer{}, err
	}
	if !(segmentLen > 0) {
		return audio.Buffer{}, fmt.Errorf("%w: segment length %v", audio.ErrInvalidParameter, segmentLen)
	}
	if segmentLen > b.Duration() {
		return audio.Buffer{}, fmt.Errorf("%w: %.3fs segments from %.3fs source",
			audio.ErrOutOfRange, segmentLen, b.Duration())
	}

	silence := audio.Silence(b.Format, segmentLen)
	picks := make(map[rune]audio.Buffer)
	parts := make([]audio.Buffer, 0, len(pattern))

	for _, r := range pattern {
		if r == SilenceSymbol {
			parts = append(parts, silence)
			continue
		}

		seg, ok := picks[r]
		if !ok {
			var err error
			seg, err = Pick(b, rng, audio.Seconds(segmentLen))
			if err != nil {
				return audio.Buffer{}, fmt.Errorf("mosaic %q: %w", r, err)
			}
			if post != nil {
				if seg, err = post(seg); err != nil {
					return audio.Buffer{}, fmt.Errorf("mosaic %q: %w", r, err)
				}
			}
			picks[r] = seg
		}
		parts = append(parts, seg)
	}

	slog.Debug("ops: mosaic", "pattern", pattern, "segment_len", segmentLen, "picks", len(picks))
	return Join(parts)
}
