// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Time is either an absolute number of seconds or a fraction of the
// duration of the buffer it is applied to.
type Time struct {
	value    float64
	fraction bool
}

// Seconds builds an absolute time expression.
func Seconds(s float64) Time {
	return Time{value: s}
}

// Fraction builds a relative time expression num/den.
func Fraction(num, den float64) (Time, error) {
	if den == 0 {
		return Time{}, fmt.Errorf("%w: zero denominator", ErrInvalidTime)
	}
	v := num / den
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return Time{}, fmt.Errorf("%w: fraction %v/%v", ErrInvalidTime, num, den)
	}
	return Time{value: v, fraction: true}, nil
}

// MustFraction is Fraction for constant arguments known to be valid.
func MustFraction(num, den float64) Time {
	t, err := Fraction(num, den)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseTime accepts "1.5" (seconds) or "1/4" (fraction of the buffer).
func ParseTime(s string) (Time, error) {
	s = strings.TrimSpace(s)
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return Time{}, fmt.Errorf("%w: %q", ErrInvalidTime, s)
		}
		return Seconds(v), nil
	}

	num, den, ok := strings.Cut(s, "/")
	if !ok {
		return Time{}, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	n, errN := strconv.ParseFloat(strings.TrimSpace(num), 64)
	d, errD := strconv.ParseFloat(strings.TrimSpace(den), 64)
	if errN != nil || errD != nil {
		return Time{}, fmt.Errorf("%w: invalid fraction %q", ErrInvalidTime, s)
	}
	return Fraction(n, d)
}

// IsFraction reports whether t is relative.
func (t Time) IsFraction() bool { return t.fraction }

// Resolve turns t into seconds in the context of a buffer lasting total seconds.
func (t Time) Resolve(total float64) (float64, error) {
	if t.fraction {
		return t.value * total, nil
	}
	if t.value < 0 || math.IsNaN(t.value) {
		return 0, fmt.Errorf("%w: negative duration %v", ErrInvalidTime, t.value)
	}
	return t.value, nil
}

func (t Time) String() string {
	if t.fraction {
		return strconv.FormatFloat(t.value, 'g', -1, 64) + "x"
	}
	return strconv.FormatFloat(t.value, 'g', -1, 64) + "s"
}
