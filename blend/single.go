// SPDX-License-Identifier: EPL-2.0

package blend

import (
	"math/rand/v2"

	"github.com/ik5/sampleblend/audio"
	"github.com/ik5/sampleblend/fx"
	"github.com/ik5/sampleblend/ops"
)

const (
	mosaicPattern   = "aa_ac_a_a_abac__"
	mosaicSegment   = 0.17
	mosaicReverbMs  = 100
	mosaicReverbMix = 0.5
)

// Mosaic builds a pattern mosaic out of 0.17 s picks of the input, plays it
// backwards through a short reverb and loops it four times.
func Mosaic(inputs []audio.Buffer, rng *rand.Rand) (audio.Buffer, error) {
	m, err := ops.Mosaic(inputs[0], rng, mosaicPattern, mosaicSegment, nil)
	if err != nil {
		return audio.Buffer{}, err
	}

	m, err = fx.Reverb(mosaicReverbMs, mosaicReverbMix)(ops.Reverse(m))
	if err != nil {
		return audio.Buffer{}, err
	}
	return ops.Repeat(m, loops)
}

// Samplicat loops a random sixteenth of the input four times, fades the loop
// out on a coin flip and repeats the whole four times more.
func Samplicat(inputs []audio.Buffer, rng *rand.Rand) (audio.Buffer, error) {
	a, err := ops.Pick(inputs[0], rng, audio.MustFraction(1, 16))
	if err != nil {
		return audio.Buffer{}, err
	}
	if a, err = ops.Repeat(a, loops); err != nil {
		return audio.Buffer{}, err
	}
	if coin(rng) {
		a = ops.Fade(a, 0, xfadeFloor)
	}
	return ops.Repeat(a, loops)
}
