// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"

	"github.com/ik5/sampleblend/audio"
	"github.com/ik5/sampleblend/internal/pcm"
)

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := pcm.ReadSeeker(r)
	if err != nil {
		return nil, err
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}
	dec.ReadInfo()

	bitDepth := int(dec.BitDepth)
	if !pcm.Supported(bitDepth) {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	f := dec.Format()
	if f == nil || f.NumChannels < 1 || f.SampleRate < 1 {
		return nil, ErrUnsupportedAiffLayout
	}

	// AIFF stores 8-bit samples signed.
	return pcm.NewSource(dec, f.SampleRate, f.NumChannels, bitDepth, false), nil
}

// Encode writes b as an AIFF file of bitDepth bits.
func Encode(w io.WriteSeeker, b audio.Buffer, bitDepth int) error {
	if err := b.Format.Validate(); err != nil {
		return err
	}
	if !pcm.Supported(bitDepth) {
		return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	ch, sr := b.Format.Channels, b.Format.SampleRate
	enc := aiff.NewEncoder(w, sr, bitDepth, ch)

	if err := enc.Write(pcm.IntBuffer(b.Samples, sr, ch, bitDepth, false)); err != nil {
		return fmt.Errorf("aiff: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("aiff: encode: %w", err)
	}
	return nil
}
