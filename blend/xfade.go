// SPDX-License-Identifier: EPL-2.0

package blend

import (
	"math/rand/v2"

	"github.com/ik5/sampleblend/audio"
	"github.com/ik5/sampleblend/ops"
)

// xfadeFloor is the level in dB the cross-fade starts and ends at.
const xfadeFloor = -30

// Xfade cross-fades the first quarters of two inputs after matching their
// lengths: the first fades out while the second fades in. A coin flip
// decides whether the mix is normalized. The result loops four times.
func Xfade(inputs []audio.Buffer, rng *rand.Rand) (audio.Buffer, error) {
	f1, err := quarter(inputs[0])
	if err != nil {
		return audio.Buffer{}, err
	}
	f2, err := quarter(inputs[1])
	if err != nil {
		return audio.Buffer{}, err
	}

	w1, w2, _, err := ops.NormalizeSpeed(f1, f2)
	if err != nil {
		return audio.Buffer{}, err
	}

	out := ops.Fade(w1, 0, xfadeFloor)
	in := ops.Fade(w2, xfadeFloor, 0)

	mixed, err := ops.Mix(out, in, coin(rng))
	if err != nil {
		return audio.Buffer{}, err
	}
	return ops.Repeat(mixed, loops)
}
