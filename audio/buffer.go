// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"
)

// Format describes the layout of a Buffer.
type Format struct {
	Channels   int `yaml:"channels" json:"channels" msgpack:"channels"`
	SampleRate int `yaml:"sample_rate" json:"sample_rate" msgpack:"sample_rate"`
}

// Validate reports ErrInvalidFormat for a Format without channels or rate.
func (f Format) Validate() error {
	if f.Channels < 1 || f.SampleRate <= 0 {
		return fmt.Errorf("%w: %d channels at %d Hz", ErrInvalidFormat, f.Channels, f.SampleRate)
	}
	return nil
}

func (f Format) String() string {
	return fmt.Sprintf("%dch@%dHz", f.Channels, f.SampleRate)
}

// Frames converts seconds to a whole number of frames, rounding to nearest.
func (f Format) Frames(seconds float64) int {
	return int(math.Round(seconds * float64(f.SampleRate)))
}

// Buffer is an in-memory block of interleaved samples.
//
// Buffers are treated as values: operators in this module never write into
// the Samples of a Buffer they receive, they allocate a new one.
type Buffer struct {
	Format  Format
	Samples []float32
}

// NewBuffer validates f and checks that samples holds whole frames.
func NewBuffer(f Format, samples []float32) (Buffer, error) {
	if err := f.Validate(); err != nil {
		return Buffer{}, err
	}
	if len(samples)%f.Channels != 0 {
		return Buffer{}, fmt.Errorf("%w: %d samples is not a multiple of %d channels",
			ErrInvalidFormat, len(samples), f.Channels)
	}
	return Buffer{Format: f, Samples: samples}, nil
}

// Silence returns a zeroed buffer lasting seconds (rounded to whole frames).
// Negative durations produce an empty buffer.
func Silence(f Format, seconds float64) Buffer {
	frames := max(f.Frames(seconds), 0)
	return Buffer{Format: f, Samples: make([]float32, frames*f.Channels)}
}

// Len is the number of samples across all channels.
func (b Buffer) Len() int { return len(b.Samples) }

// Frames is the number of sample frames.
func (b Buffer) Frames() int {
	if b.Format.Channels == 0 {
		return 0
	}
	return len(b.Samples) / b.Format.Channels
}

// Duration in seconds.
func (b Buffer) Duration() float64 {
	if b.Format.SampleRate == 0 {
		return 0
	}
	return float64(b.Frames()) / float64(b.Format.SampleRate)
}

// Peak returns the largest absolute sample value.
func (b Buffer) Peak() float32 {
	var peak float32
	for _, s := range b.Samples {
		if s < 0 {
			s = -s
		}
		if s > peak {
			peak = s
		}
	}
	return peak
}

// Clone returns a deep copy.
func (b Buffer) Clone() Buffer {
	out := make([]float32, len(b.Samples))
	copy(out, b.Samples)
	return Buffer{Format: b.Format, Samples: out}
}

// Equal reports whether both buffers have the same format and identical samples.
func (b Buffer) Equal(o Buffer) bool {
	if b.Format != o.Format || len(b.Samples) != len(o.Samples) {
		return false
	}
	for i := range b.Samples {
		if b.Samples[i] != o.Samples[i] {
			return false
		}
	}
	return true
}

// CheckFormat returns ErrFormatMismatch when a and b cannot be combined.
func CheckFormat(a, b Buffer) error {
	if a.Format != b.Format {
		return fmt.Errorf("%w: %s vs %s", ErrFormatMismatch, a.Format, b.Format)
	}
	return nil
}
