// SPDX-License-Identifier: EPL-2.0

// Package pcm adapts the integer PCM decoders of github.com/go-audio to
// audio.Source.
package pcm

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"slices"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/sampleblend/utils"
)

// Reader is the part of the go-audio decoders a Source pulls from.
type Reader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

var bitDepths = []int{8, 16, 24, 32}

// Supported reports whether Source can convert samples of bitDepth bits.
func Supported(bitDepth int) bool {
	return slices.Contains(bitDepths, bitDepth)
}

// Source converts the integer samples of r to float32.
type Source struct {
	r          Reader
	sampleRate int
	channels   int
	bitDepth   int
	offset     int // subtracted before scaling, 128 for unsigned 8-bit data

	intBuf *goaudio.IntBuffer
}

// NewSource wraps r. unsigned marks 8-bit data stored as 0..255, as WAV does.
func NewSource(r Reader, sampleRate, channels, bitDepth int, unsigned bool) *Source {
	s := &Source{
		r:          r,
		sampleRate: sampleRate,
		channels:   channels,
		bitDepth:   bitDepth,
	}
	if unsigned && bitDepth == 8 {
		s.offset = 128
	}
	return s
}

func (s *Source) SampleRate() int { return s.sampleRate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) Close() error    { return nil }

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:   make([]int, len(dst)),
			Format: &goaudio.Format{NumChannels: s.channels, SampleRate: s.sampleRate},
		}
	} else {
		s.intBuf.Data = s.intBuf.Data[:len(dst)]
	}

	n, err := s.r.PCMBuffer(s.intBuf)
	if n == 0 {
		if err != nil && !errors.Is(err, io.EOF) {
			return 0, fmt.Errorf("pcm: %w", err)
		}
		return 0, io.EOF
	}

	for i, v := range s.intBuf.Data[:n] {
		dst[i] = utils.IntToFloat32(v-s.offset, s.bitDepth)
	}

	if errors.Is(err, io.EOF) {
		return n, io.EOF
	}
	return n, err
}

// ReadSeeker returns r itself when it can seek, or buffers it in memory.
// The go-audio decoders need to seek.
func ReadSeeker(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("pcm: buffering input: %w", err)
	}
	return bytes.NewReader(data), nil
}

// IntBuffer converts samples to a go-audio buffer of bitDepth-bit integers.
// With unsigned set, 8-bit values are shifted to 0..255.
func IntBuffer(samples []float32, sampleRate, channels, bitDepth int, unsigned bool) *goaudio.IntBuffer {
	offset := 0
	if unsigned && bitDepth == 8 {
		offset = 128
	}

	data := make([]int, len(samples))
	for i, x := range samples {
		data[i] = utils.Float32ToInt(x, bitDepth) + offset
	}

	return &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
}
