// SPDX-License-Identifier: EPL-2.0

package ops

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/ik5/sampleblend/audio"
)

// sampleIndex converts seconds to an interleaved sample index aligned to a
// frame boundary.
func sampleIndex(f audio.Format, seconds float64) int {
	return int(math.Round(seconds*float64(f.SampleRate))) * f.Channels
}

// Cut returns dur of b starting at start. Both times are resolved against
// the duration of b. The end is clamped to the buffer; a start at or past
// the end of b fails with audio.ErrOutOfRange.
func Cut(b audio.Buffer, start, dur audio.Time) (audio.Buffer, error) {
	total := b.Duration()

	startSec, err := start.Resolve(total)
	if err != nil {
		return audio.Buffer{}, fmt.Errorf("cut start: %w", err)
	}
	durSec, err := dur.Resolve(total)
	if err != nil {
		return audio.Buffer{}, fmt.Errorf("cut duration: %w", err)
	}

	// Compare in seconds first; huge times overflow a sample index.
	if startSec >= total {
		return audio.Buffer{}, fmt.Errorf("%w: start %.3fs of %.3fs", audio.ErrOutOfRange, startSec, total)
	}
	durSec = min(durSec, total-startSec)

	from := sampleIndex(b.Format, startSec)
	if from >= len(b.Samples) {
		return audio.Buffer{}, fmt.Errorf("%w: start %.3fs of %.3fs", audio.ErrOutOfRange, startSec, total)
	}

	to := min(from+sampleIndex(b.Format, durSec), len(b.Samples))
	to -= (to - from) % b.Format.Channels

	out := make([]float32, to-from)
	copy(out, b.Samples[from:to])
	return audio.Buffer{Format: b.Format, Samples: out}, nil
}

// Pick cuts dur from a uniformly random position of b. One Float64 is drawn
// from rng.
func Pick(b audio.Buffer, rng *rand.Rand, dur audio.Time) (audio.Buffer, error) {
	total := b.Duration()

	durSec, err := dur.Resolve(total)
	if err != nil {
		return audio.Buffer{}, fmt.Errorf("pick: %w", err)
	}
	if durSec > total {
		return audio.Buffer{}, fmt.Errorf("%w: pick %.3fs from %.3fs", audio.ErrOutOfRange, durSec, total)
	}

	start := rng.Float64() * (total - durSec)
	return Cut(b, audio.Seconds(start), audio.Seconds(durSec))
}
