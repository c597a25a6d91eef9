// SPDX-License-Identifier: EPL-2.0

package fx

import (
	"math"

	"github.com/ik5/sampleblend/audio"
	"github.com/ik5/sampleblend/ops"
	"github.com/ik5/sampleblend/utils"
)

// Overdrive boosts b by gainDB, saturates it with tanh and applies outDB.
func Overdrive(gainDB, outDB float64) Effect {
	return func(b audio.Buffer) (audio.Buffer, error) {
		in := utils.DBToAmplitude(gainDB)
		post := utils.DBToAmplitude(outDB)

		out := make([]float32, len(b.Samples))
		for i, s := range b.Samples {
			out[i] = utils.SoftClamp(float32(math.Tanh(float64(s)*in) * post))
		}
		return audio.Buffer{Format: b.Format, Samples: out}, nil
	}
}

// Reverb feeds each channel back into itself delayMs later, scaled by
// decay. The result is hard clamped as it is built, so the feedback never
// runs away.
func Reverb(delayMs int, decay float64) Effect {
	return func(b audio.Buffer) (audio.Buffer, error) {
		out := b.Clone()
		ch := b.Format.Channels
		delay := b.Format.SampleRate * delayMs / 1000
		if delay <= 0 {
			return out, nil
		}

		d := float32(decay)
		frames := b.Frames()
		for c := range ch {
			for i := delay; i < frames; i++ {
				idx := i*ch + c
				out.Samples[idx] = utils.Clamp(out.Samples[idx] + float32(d*out.Samples[(i-delay)*ch+c]))
			}
		}
		return out, nil
	}
}

// ReverbReverse runs Reverb and plays the result backwards, so the echoes
// swell in ahead of each sound.
func ReverbReverse(delayMs int, decay float64) Effect {
	reverb := Reverb(delayMs, decay)
	return func(b audio.Buffer) (audio.Buffer, error) {
		out, err := reverb(b)
		if err != nil {
			return audio.Buffer{}, err
		}
		return ops.Reverse(out), nil
	}
}
