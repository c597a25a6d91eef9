// SPDX-License-Identifier: EPL-2.0

package utils

// The float32 conversions around products below force rounding before the
// add, so no architecture fuses them into FMA and renders stay bit identical
// across platforms.

// CubicInterpolate evaluates a Catmull-Rom spline through four consecutive
// samples. x is the position between y1 (x=0) and y2 (x=1).
func CubicInterpolate(y0, y1, y2, y3, x float32) float32 {
	a0 := float32(-0.5*y0) + float32(1.5*y1) - float32(1.5*y2) + float32(0.5*y3)
	a1 := y0 - float32(2.5*y1) + float32(2*y2) - float32(0.5*y3)
	a2 := float32(-0.5*y0) + float32(0.5*y2)
	a3 := y1

	v := float32(a0*x) + a1
	v = float32(v*x) + a2
	return float32(v*x) + a3
}

// LinearInterpolate returns a + (b-a)*x.
func LinearInterpolate(a, b, x float32) float32 {
	return a + float32((b-a)*x)
}
