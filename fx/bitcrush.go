// SPDX-License-Identifier: EPL-2.0

package fx

import (
	"fmt"
	"math"

	"github.com/ik5/sampleblend/audio"
	"github.com/ik5/sampleblend/ops"
	"github.com/ik5/sampleblend/utils"
)

// bitcrushShift is added to the requested semitones before pitching up.
const bitcrushShift = 24

// Bitcrush pitches b up by semitones+24 with ops.Speed and then stretches
// the result back to the original sample count.
//
// The second pass runs over the flat interleaved samples and ignores frame
// boundaries, so channels bleed into each other and short grains repeat.
// That grit is the effect.
func Bitcrush(semitones float64) Effect {
	return func(b audio.Buffer) (audio.Buffer, error) {
		factor := math.Pow(2, (semitones+bitcrushShift)/12)

		pitched, err := ops.Speed(b, factor)
		if err != nil {
			return audio.Buffer{}, fmt.Errorf("bitcrush: %w", err)
		}

		src := pitched.Samples
		target := len(b.Samples)
		out := make([]float32, target)

		if len(src) == target {
			copy(out, src)
		} else if len(src) > 0 {
			ratio := float64(len(src)) / float64(target)
			for i := range out {
				p := float64(i) * ratio
				lo := math.Floor(p)
				frac := float32(p - lo)
				i1, i2 := int(lo), int(math.Ceil(p))

				var s1 float32
				if i1 < len(src) {
					s1 = src[i1]
				}
				s2 := s1
				if i2 < len(src) {
					s2 = src[i2]
				}
				out[i] = utils.LinearInterpolate(s1, s2, frac)
			}
		}

		for i, s := range out {
			out[i] = utils.SoftClamp(s)
		}
		return audio.Buffer{Format: b.Format, Samples: out}, nil
	}
}
