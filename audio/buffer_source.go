// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// bufferSource streams an in-memory Buffer through the Source interface so
// that it can feed a Resampler or ChannelMixer.
type bufferSource struct {
	buf Buffer
	pos int
}

// NewBufferSource returns a Source reading the samples of b from the start.
func NewBufferSource(b Buffer) Source {
	return &bufferSource{buf: b}
}

func (s *bufferSource) SampleRate() int { return s.buf.Format.SampleRate }
func (s *bufferSource) Channels() int   { return s.buf.Format.Channels }
func (s *bufferSource) Close() error    { return nil }

func (s *bufferSource) ReadSamples(dst []float32) (int, error) {
	if s.pos >= len(s.buf.Samples) {
		return 0, io.EOF
	}
	// Hand out whole frames only.
	want := len(dst) - len(dst)%s.buf.Format.Channels
	n := copy(dst[:want], s.buf.Samples[s.pos:])
	s.pos += n
	if s.pos >= len(s.buf.Samples) {
		return n, io.EOF
	}
	return n, nil
}

// readChunk is the scratch size used by ReadAll.
const readChunk = 4096

// ReadAll drains src into a Buffer. The source is not closed.
func ReadAll(src Source) (Buffer, error) {
	f := Format{Channels: src.Channels(), SampleRate: src.SampleRate()}
	if err := f.Validate(); err != nil {
		return Buffer{}, err
	}

	var samples []float32
	buf := make([]float32, readChunk*f.Channels)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			samples = append(samples, buf[:n]...)
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return Buffer{}, fmt.Errorf("%w", err)
		}

		if n == 0 {
			// A source that makes no progress without an error is treated as finished.
			break
		}
	}

	// Drop a trailing partial frame from sources that do not honour frame boundaries.
	samples = samples[:len(samples)-len(samples)%f.Channels]

	return Buffer{Format: f, Samples: samples}, nil
}
