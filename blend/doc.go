// SPDX-License-Identifier: EPL-2.0

// Package blend combines several recordings into one composition.
//
// A Blender is a fixed algorithm built from the operators of package ops.
// Every structural decision it makes (which segment, which branch, how much
// delay) is drawn from the *rand.Rand passed in, so the same seed and the
// same inputs always render the same samples.
//
// Blenders are looked up by name in a Registry. The Blend dispatcher adds
// random selection ("rand"), an optional post effect and final peak
// normalization:
//
//	rng := rand.New(rand.NewPCG(seed, seed))
//	out, err := blend.Blend(inputs, rng, "rand", blend.Options{FXChance: 0.3})
//
// Registered blenders:
//
//	delayer     2 inputs  echo-like layering of two offset loops
//	m4ze        2 inputs  64-way segment maze over two duration-matched inputs
//	mosaic      1 input   pattern mosaic, reversed and reverberated
//	outbreaker  3 inputs  three mk-built tracks from indexed segments
//	samplicat   1 input   looped sixteenth of the input
//	xfade       2 inputs  cross-fade of two duration-matched loops
package blend
