// SPDX-License-Identifier: EPL-2.0

// Package fx provides single-pass effects that can be applied to a buffer
// after a composition: filters, a pitch stutter ("bitcrush"), a flanger,
// overdrive and a feedback reverb.
//
// Effects are plain functions built by constructors that bind their
// parameters:
//
//	crush := fx.Bitcrush(12)
//	out, err := crush(buf)
//
// The registry builds effects by name with parameters drawn from a caller
// supplied generator, which is how compositions pick post effects:
//
//	out, err := fx.Apply(buf, rng, "rand")
package fx
