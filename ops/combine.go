// SPDX-License-Identifier: EPL-2.0

package ops

import (
	"fmt"

	"github.com/ik5/sampleblend/audio"
)

// Add appends b to a.
func Add(a, b audio.Buffer) (audio.Buffer, error) {
	if err := audio.CheckFormat(a, b); err != nil {
		return audio.Buffer{}, fmt.Errorf("add: %w", err)
	}

	out := make([]float32, len(a.Samples)+len(b.Samples))
	copy(out, a.Samples)
	copy(out[len(a.Samples):], b.Samples)
	return audio.Buffer{Format: a.Format, Samples: out}, nil
}

// Mix averages a and b sample by sample, padding the shorter one with
// silence. With normalize set, a non-silent result is scaled so that its
// peak is exactly 1.0.
func Mix(a, b audio.Buffer, normalize bool) (audio.Buffer, error) {
	if err := audio.CheckFormat(a, b); err != nil {
		return audio.Buffer{}, fmt.Errorf("mix: %w", err)
	}

	out := make([]float32, max(len(a.Samples), len(b.Samples)))
	for i := range out {
		var x, y float32
		if i < len(a.Samples) {
			x = a.Samples[i]
		}
		if i < len(b.Samples) {
			y = b.Samples[i]
		}
		out[i] = (x + y) / 2
	}

	mixed := audio.Buffer{Format: a.Format, Samples: out}
	if normalize {
		scale(mixed.Samples, mixed.Peak())
	}
	return mixed, nil
}

// scale divides samples by peak in place. A zero peak is left alone.
func scale(samples []float32, peak float32) {
	if peak == 0 {
		return
	}
	for i := range samples {
		samples[i] /= peak
	}
}
