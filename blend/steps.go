// SPDX-License-Identifier: EPL-2.0

package blend

import (
	"math/rand/v2"

	"github.com/ik5/sampleblend/audio"
	"github.com/ik5/sampleblend/ops"
)

// loops is how many times the finished phrase of most blenders is repeated.
const loops = 4

// coin is a fair coin flip.
func coin(rng *rand.Rand) bool {
	return rng.Float64() < 0.5
}

// quarter keeps the first quarter of b.
func quarter(b audio.Buffer) (audio.Buffer, error) {
	return ops.Cut(b, audio.Seconds(0), audio.MustFraction(1, 4))
}

// half keeps the first or second half of b.
func half(b audio.Buffer, second bool) (audio.Buffer, error) {
	if second {
		return ops.Cut(b, audio.MustFraction(1, 2), audio.MustFraction(1, 1))
	}
	return ops.Cut(b, audio.Seconds(0), audio.MustFraction(1, 2))
}
