// SPDX-License-Identifier: EPL-2.0

// Package cache stores rendered compositions so a repeated blend with the
// same inputs, seed, blender and options can skip the work.
//
// A Key is a SHA-256 digest of everything that determines a render. Two
// Store implementations are provided: Memory for tests and one-shot runs and
// Badger, which persists buffers to disk encoded with msgpack.
package cache
