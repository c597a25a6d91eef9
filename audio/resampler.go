// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/sampleblend/utils"
)

// smoothing is the coefficient of the one-pole low-pass applied to the
// input when the Resampler lowers the sample rate.
const smoothing float32 = 0.5

// Resampler converts src to another sample rate using Catmull-Rom
// interpolation over a sliding window of four frames. Channel count is kept.
//
// This changes the sample rate without changing duration; see ops.Speed for
// time stretching at a fixed rate.
type Resampler struct {
	src      Source
	dstRate  int
	step     float64 // source frames consumed per output frame
	channels int

	// window[0] = t-1, window[1] = t0, window[2] = t+1, window[3] = t+2
	window [4][]float32
	valid  [4]bool
	primed bool

	pos     float64 // fractional position between window[1] and window[2]
	scratch []float32
	eof     bool

	lowpass bool
	state   []float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	step := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		step:     step,
		channels: channels,
		scratch:  make([]float32, channels),
		lowpass:  step > 1.0,
		state:    make([]float32, channels),
	}
	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// pull reads one frame from the source into dst. ok is false once the
// source has nothing more to give.
func (r *Resampler) pull(dst []float32) (bool, error) {
	if r.eof {
		return false, nil
	}

	n, err := r.src.ReadSamples(r.scratch)
	if err == io.EOF {
		r.eof = true
	} else if err != nil {
		return false, fmt.Errorf("%w", err)
	}
	if n < r.channels {
		r.eof = true
		return false, nil
	}

	copy(dst, r.scratch)
	if r.lowpass {
		for c := range r.channels {
			dst[c] = float32(smoothing*dst[c]) + float32((1-smoothing)*r.state[c])
			r.state[c] = dst[c]
		}
	}
	return true, nil
}

// prime loads the first frames. The frame before the stream start repeats
// the first frame, and a one frame stream is held for one source period.
func (r *Resampler) prime() error {
	r.primed = true

	ok, err := r.pull(r.window[1])
	if err != nil {
		return err
	}
	if !ok {
		return io.EOF
	}
	if r.lowpass {
		// Start the filter from the first frame instead of from silence.
		copy(r.window[1], r.scratch)
		copy(r.state, r.scratch)
	}
	copy(r.window[0], r.window[1])
	r.valid[0], r.valid[1] = true, true

	for i := 2; i < len(r.window); i++ {
		ok, err := r.pull(r.window[i])
		if err != nil {
			return err
		}
		if !ok {
			if i == 2 {
				copy(r.window[2], r.window[1])
				r.valid[2] = true
			}
			return nil
		}
		r.valid[i] = true
	}
	return nil
}

// advance slides the window one frame forward.
func (r *Resampler) advance() error {
	first := r.window[0]
	copy(r.window[:], r.window[1:])
	copy(r.valid[:], r.valid[1:])
	r.window[3] = first

	ok, err := r.pull(r.window[3])
	if err != nil {
		return err
	}
	r.valid[3] = ok
	if !r.valid[1] || !r.valid[2] {
		return io.EOF
	}
	return nil
}

// ReadSamples produces interleaved samples at the destination rate.
// dst length should be a multiple of r.channels.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	frames := len(dst) / r.channels
	written := 0

	for written < frames {
		for r.pos >= 1.0 {
			r.pos -= 1.0
			if err := r.advance(); err != nil {
				if err == io.EOF {
					return written * r.channels, io.EOF
				}
				return written * r.channels, err
			}
		}

		if !r.valid[1] || !r.valid[2] {
			return written * r.channels, io.EOF
		}

		x := float32(r.pos)
		out := dst[written*r.channels : (written+1)*r.channels]
		for c := range r.channels {
			y1 := r.window[1][c]
			y2 := r.window[2][c]
			y0, y3 := y1, y2
			if r.valid[0] {
				y0 = r.window[0][c]
			}
			if r.valid[3] {
				y3 = r.window[3][c]
			}
			out[c] = utils.CubicInterpolate(y0, y1, y2, y3, x)
		}

		written++
		r.pos += r.step
	}

	return written * r.channels, nil
}
