// SPDX-License-Identifier: EPL-2.0

package ops

import (
	"github.com/ik5/sampleblend/audio"
	"github.com/ik5/sampleblend/utils"
)

// Gain multiplies b by 10^(db/20) and soft clamps the result.
func Gain(b audio.Buffer, db float64) audio.Buffer {
	amp := utils.DBToAmplitude(db)

	out := make([]float32, len(b.Samples))
	for i, s := range b.Samples {
		out[i] = utils.SoftClamp(float32(float64(s) * amp))
	}
	return audio.Buffer{Format: b.Format, Samples: out}
}

// Fade ramps the amplitude linearly from startDB to endDB across the
// samples of b, then soft clamps.
func Fade(b audio.Buffer, startDB, endDB float64) audio.Buffer {
	from := utils.DBToAmplitude(startDB)
	to := utils.DBToAmplitude(endDB)

	n := len(b.Samples)
	out := make([]float32, n)
	for i, s := range b.Samples {
		var pos float64
		if n > 1 {
			pos = float64(i) / float64(n-1)
		}
		amp := from + float64((to-from)*pos)
		out[i] = utils.SoftClamp(float32(float64(s) * amp))
	}
	return audio.Buffer{Format: b.Format, Samples: out}
}

// MaxGain scales b so its peak becomes exactly 1.0. Silent buffers and
// buffers already peaking at or above 1.0 come back unchanged.
func MaxGain(b audio.Buffer) audio.Buffer {
	out := b.Clone()

	peak := out.Peak()
	if peak >= 1 {
		return out
	}
	scale(out.Samples, peak)
	return out
}
