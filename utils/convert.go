// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Clamp limits x to [-1, 1].
func Clamp(x float32) float32 {
	switch {
	case x > 1:
		return 1
	case x < -1:
		return -1
	default:
		return x
	}
}

// SoftClamp bends x into (-1, 1) with tanh. Values well inside the range are
// barely changed.
func SoftClamp(x float32) float32 {
	return float32(math.Tanh(float64(x)))
}

// Float32ToInt16 converts a sample to 16-bit PCM, hard clamping first.
func Float32ToInt16(x float32) int16 {
	return int16(Clamp(x) * math.MaxInt16)
}

// FullScale is the largest positive integer sample for bitDepth.
func FullScale(bitDepth int) int {
	return 1<<(bitDepth-1) - 1
}

// Float32ToInt converts a sample to a signed PCM integer of bitDepth bits.
func Float32ToInt(x float32, bitDepth int) int {
	return int(float64(Clamp(x)) * float64(FullScale(bitDepth)))
}

// IntToFloat32 converts a signed PCM integer of bitDepth bits to a sample.
func IntToFloat32(v, bitDepth int) float32 {
	return float32(float64(v) / float64(int64(1)<<(bitDepth-1)))
}

// DBToAmplitude converts a gain in decibels to a linear factor.
func DBToAmplitude(db float64) float64 {
	return math.Pow(10, db/20)
}
