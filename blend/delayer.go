// SPDX-License-Identifier: EPL-2.0

package blend

import (
	"fmt"
	"math/rand/v2"

	"github.com/ik5/sampleblend/audio"
	"github.com/ik5/sampleblend/ops"
)

// delayDivisors are the fractions of the loop length the second layer can
// be delayed by.
var delayDivisors = [...]float64{4, 8, 16, 32}

// Delayer layers the first quarters of two inputs, stretched to their
// average length, with the second one delayed by 1/4, 1/8, 1/16 or 1/32 of
// that length. The normalized mix is looped four times.
func Delayer(inputs []audio.Buffer, rng *rand.Rand) (audio.Buffer, error) {
	w0, err := quarter(inputs[0])
	if err != nil {
		return audio.Buffer{}, err
	}
	w1, err := quarter(inputs[1])
	if err != nil {
		return audio.Buffer{}, err
	}

	w0, w1, avg, err := ops.NormalizeSpeed(w0, w1)
	if err != nil {
		return audio.Buffer{}, err
	}

	offset := avg / delayDivisors[rng.IntN(len(delayDivisors))]

	body, err := ops.Cut(w1, audio.Seconds(0), audio.Seconds(avg-offset))
	if err != nil {
		return audio.Buffer{}, fmt.Errorf("delayed layer: %w", err)
	}
	delayed, err := ops.Add(audio.Silence(w1.Format, offset), body)
	if err != nil {
		return audio.Buffer{}, err
	}

	mixed, err := ops.Mix(w0, delayed, true)
	if err != nil {
		return audio.Buffer{}, err
	}
	return ops.Repeat(mixed, loops)
}
