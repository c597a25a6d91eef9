// SPDX-License-Identifier: EPL-2.0

package fx

import (
	"fmt"
	"math"

	"github.com/ik5/sampleblend/audio"
	"github.com/ik5/sampleblend/utils"
)

// Flanger mixes b with a copy delayed by delayMs plus an LFO swept amount
// of up to depthMs. feedback in [-1, 1] routes the delayed signal back into
// the delay line.
//
// The delay line is indexed by interleaved sample, not by frame, as in the
// classic mono design this is modelled on.
func Flanger(delayMs, depthMs, rateHz, feedback float64) Effect {
	return func(b audio.Buffer) (audio.Buffer, error) {
		if delayMs < 0 || depthMs < 0 || rateHz < 0 || feedback < -1 || feedback > 1 {
			return audio.Buffer{}, fmt.Errorf("%w: flanger delay %v depth %v rate %v feedback %v",
				audio.ErrInvalidParameter, delayMs, depthMs, rateHz, feedback)
		}

		rate := float64(b.Format.SampleRate)
		size := max(int((delayMs+depthMs)/1000*rate), 1)
		line := make([]float32, size)

		write := 0
		phase := 0.0
		step := 2 * math.Pi * rateHz / rate
		fb := float32(feedback)

		out := make([]float32, len(b.Samples))
		for i, x := range b.Samples {
			sweep := delayMs + float64(depthMs*(float64(math.Sin(phase)*0.5)+0.5))
			lag := sweep / 1000 * rate

			read := math.Mod(float64(write)-lag, float64(size))
			if read < 0 {
				read += float64(size)
			}
			lo := math.Floor(read)
			frac := float32(read - lo)
			i1 := int(lo) % size
			i2 := int(math.Ceil(read)) % size

			delayed := utils.LinearInterpolate(line[i1], line[i2], frac)
			echo := float32(fb * delayed)
			out[i] = utils.Clamp(x + delayed + echo)
			line[write] = x + echo

			write = (write + 1) % size
			phase += step
		}
		return audio.Buffer{Format: b.Format, Samples: out}, nil
	}
}
