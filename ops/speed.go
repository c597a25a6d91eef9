// SPDX-License-Identifier: EPL-2.0

package ops

import (
	"fmt"
	"math"

	"github.com/ik5/sampleblend/audio"
)

// Speed plays b back factor times faster at the same sample rate, so both
// duration and pitch change. factor > 1 shortens, factor < 1 lengthens.
//
// Output frame i reads the source at p = i*factor and interpolates linearly
// between frames floor(p) and ceil(p). Frames past the end read as silence.
func Speed(b audio.Buffer, factor float64) (audio.Buffer, error) {
	if factor <= 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return audio.Buffer{}, fmt.Errorf("%w: speed factor %v", audio.ErrInvalidParameter, factor)
	}

	ch := b.Format.Channels
	n := math.Floor(float64(b.Frames()) / factor)
	if n > float64(math.MaxInt/max(ch, 1)) {
		return audio.Buffer{}, fmt.Errorf("%w: speed factor %v makes %v frames", audio.ErrInvalidParameter, factor, n)
	}
	frames := int(n)
	out := make([]float32, frames*ch)

	at := func(frame, c int) float32 {
		idx := frame*ch + c
		if idx >= len(b.Samples) {
			return 0
		}
		return b.Samples[idx]
	}

	for i := range frames {
		p := float64(i) * factor
		lo := math.Floor(p)
		frac := float32(p - lo)
		i1, i2 := int(lo), int(math.Ceil(p))

		for c := range ch {
			// Rounded products, see utils.LinearInterpolate.
			out[i*ch+c] = float32(at(i1, c)*(1-frac)) + float32(at(i2, c)*frac)
		}
	}

	return audio.Buffer{Format: b.Format, Samples: out}, nil
}

// Resize time stretches b to last seconds. An empty buffer is returned as is.
func Resize(b audio.Buffer, seconds float64) (audio.Buffer, error) {
	if seconds <= 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return audio.Buffer{}, fmt.Errorf("%w: resize to %vs", audio.ErrInvalidParameter, seconds)
	}

	d := b.Duration()
	if d == 0 {
		return b.Clone(), nil
	}
	return Speed(b, d/seconds)
}

// NormalizeSpeed resizes a and b to the mean of their durations and returns
// that mean.
func NormalizeSpeed(a, b audio.Buffer) (audio.Buffer, audio.Buffer, float64, error) {
	avg := (a.Duration() + b.Duration()) / 2

	ra, err := Resize(a, avg)
	if err != nil {
		return audio.Buffer{}, audio.Buffer{}, 0, fmt.Errorf("normalize speed: %w", err)
	}
	rb, err := Resize(b, avg)
	if err != nil {
		return audio.Buffer{}, audio.Buffer{}, 0, fmt.Errorf("normalize speed: %w", err)
	}
	return ra, rb, avg, nil
}
