// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// Conform returns b converted to format f.
//
// The conversion is a pipeline: Resampler when the rate differs, then
// ChannelMixer when the channel count differs. A buffer already in f is
// returned as is.
func Conform(b Buffer, f Format) (Buffer, error) {
	if err := f.Validate(); err != nil {
		return Buffer{}, err
	}
	if b.Format == f {
		return b, nil
	}
	if len(b.Samples) == 0 {
		return Buffer{Format: f}, nil
	}

	var src Source = NewBufferSource(b)
	if b.Format.SampleRate != f.SampleRate {
		src = NewResampler(src, f.SampleRate)
	}
	if b.Format.Channels != f.Channels {
		src = NewChannelMixer(src, f.Channels)
	}

	out, err := ReadAll(src)
	if err != nil {
		return Buffer{}, fmt.Errorf("conform to %s: %w", f, err)
	}
	return out, nil
}
