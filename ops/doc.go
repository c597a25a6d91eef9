// SPDX-License-Identifier: EPL-2.0

// Package ops implements the primitive operators used to build compositions:
// slicing (Cut, Pick, Split, Join), combination (Add, Mix), level (Gain,
// Fade, MaxGain), time stretching (Speed, Resize, NormalizeSpeed) and the
// pattern driven Mosaic composer.
//
// Every operator takes buffers by value and returns a newly allocated
// buffer; inputs are never modified. Operators that make random choices take
// the generator as an explicit argument:
//
//	rng := rand.New(rand.NewPCG(42, 42))
//	seg, err := ops.Pick(buf, rng, audio.MustFraction(1, 16))
//
// Errors wrap the sentinels of package audio.
package ops
