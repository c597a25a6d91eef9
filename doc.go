// SPDX-License-Identifier: EPL-2.0

// Package sampleblend cuts, stretches and mixes audio samples and composes
// new pieces out of them with seeded generative blenders.
//
// Every random decision is drawn from a *rand.Rand handed in by the caller,
// so the same seed and the same inputs always render the same samples:
//
//	inputs, _ := sampleblend.LoadDir("samples", 3, sampleblend.NewRand(seed))
//	inputs, _ = sampleblend.ConformAll(inputs, audio.Format{})
//	out, _ := blend.Blend(inputs, sampleblend.NewRand(seed), "rand", blend.Options{})
//	_ = sampleblend.SaveFile("out.wav", out, 16)
//
// The work is split across subpackages:
//   - audio: the Buffer model, time expressions and streaming rate and
//     channel conversion
//   - ops: primitive operators such as Cut, Resize, Mix and Mosaic
//   - fx: post effects
//   - blend: the blenders and the dispatcher that picks one
//   - cache: a render cache keyed by inputs, seed and blender
//   - formats/wav, formats/aiff, formats/mp3, formats/vorbis: file formats
//
// This package ties them together with file loading, saving and a cached
// Render.
package sampleblend
