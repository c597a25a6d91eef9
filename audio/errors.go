// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")

	// ErrFormatMismatch is returned when two buffers that must be combined
	// differ in channel count or sample rate.
	ErrFormatMismatch = errors.New("audio formats do not match")

	// ErrInvalidFormat is returned for a Format with no channels or no rate,
	// or for sample data that is not a whole number of frames.
	ErrInvalidFormat = errors.New("invalid audio format")

	// ErrInvalidTime covers negative, unparsable or zero-denominator times.
	ErrInvalidTime = errors.New("invalid time expression")

	// ErrOutOfRange is returned when an offset or duration falls outside the buffer.
	ErrOutOfRange = errors.New("time offset out of range")

	ErrTooManySegments  = errors.New("too many segments for buffer length")
	ErrEmptyInput       = errors.New("empty input")
	ErrInvalidParameter = errors.New("invalid parameter")
)
