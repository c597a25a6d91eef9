// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"

	"github.com/ik5/sampleblend/audio"
	"github.com/ik5/sampleblend/internal/pcm"
)

// Encode writes b as an integer PCM WAV file of bitDepth bits (8, 16, 24 or
// 32). Samples outside [-1, 1] are clipped.
func Encode(w io.WriteSeeker, b audio.Buffer, bitDepth int) error {
	if err := b.Format.Validate(); err != nil {
		return err
	}
	if !pcm.Supported(bitDepth) {
		return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	ch, sr := b.Format.Channels, b.Format.SampleRate
	enc := gowav.NewEncoder(w, sr, bitDepth, ch, formatPCM)

	if err := enc.Write(pcm.IntBuffer(b.Samples, sr, ch, bitDepth, true)); err != nil {
		return fmt.Errorf("wav: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wav: encode: %w", err)
	}
	return nil
}
