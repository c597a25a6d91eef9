// SPDX-License-Identifier: EPL-2.0

package fx

import (
	"fmt"
	"math"

	"github.com/ik5/sampleblend/audio"
	"github.com/ik5/sampleblend/utils"
)

// Effect transforms a buffer into a new one.
type Effect func(audio.Buffer) (audio.Buffer, error)

func checkCutoff(cutoff float64) error {
	if !(cutoff > 0) || math.IsInf(cutoff, 0) {
		return fmt.Errorf("%w: cutoff %v Hz", audio.ErrInvalidParameter, cutoff)
	}
	return nil
}

// Lowpass is a one-pole low-pass filter run per channel.
func Lowpass(cutoff float64) Effect {
	return func(b audio.Buffer) (audio.Buffer, error) {
		if err := checkCutoff(cutoff); err != nil {
			return audio.Buffer{}, err
		}

		w := 2 * math.Pi * cutoff
		alpha := float32(w / (float64(b.Format.SampleRate) + w))
		ch := b.Format.Channels

		prev := make([]float32, ch)
		out := make([]float32, len(b.Samples))
		for i, x := range b.Samples {
			c := i % ch
			y := float32(alpha*x) + float32((1-alpha)*prev[c])
			prev[c] = y
			out[i] = utils.SoftClamp(y)
		}
		return audio.Buffer{Format: b.Format, Samples: out}, nil
	}
}

// Highpass is a one-pole high-pass filter run per channel, with make-up
// gain for the pass band.
func Highpass(cutoff float64) Effect {
	return func(b audio.Buffer) (audio.Buffer, error) {
		if err := checkCutoff(cutoff); err != nil {
			return audio.Buffer{}, err
		}

		alpha := float32(1 / (1 + float64(b.Format.SampleRate)/(2*math.Pi*cutoff)))
		makeup := 1 / ((1 + alpha) / 2)
		ch := b.Format.Channels

		prevX := make([]float32, ch)
		prevY := make([]float32, ch)
		out := make([]float32, len(b.Samples))
		for i, x := range b.Samples {
			c := i % ch
			y := alpha * (prevY[c] + x - prevX[c]) * makeup
			prevY[c], prevX[c] = y, x
			out[i] = utils.SoftClamp(y)
		}
		return audio.Buffer{Format: b.Format, Samples: out}, nil
	}
}
