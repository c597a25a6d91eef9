// SPDX-License-Identifier: EPL-2.0

package sampleblend

import (
	"fmt"

	"github.com/ik5/sampleblend/audio"
)

// ConformAll brings inputs to one Format so they can be blended together.
// Zero fields of target are taken from the first input. Inputs already in
// the target format are returned as they are.
func ConformAll(inputs []audio.Buffer, target audio.Format) ([]audio.Buffer, error) {
	if len(inputs) == 0 {
		return nil, audio.ErrEmptyInput
	}

	if target.Channels == 0 {
		target.Channels = inputs[0].Format.Channels
	}
	if target.SampleRate == 0 {
		target.SampleRate = inputs[0].Format.SampleRate
	}

	out := make([]audio.Buffer, len(inputs))
	for i, in := range inputs {
		if in.Format == target {
			out[i] = in
			continue
		}

		b, err := audio.Conform(in, target)
		if err != nil {
			return nil, fmt.Errorf("input %d: %w", i, err)
		}
		out[i] = b
	}
	return out, nil
}
