// SPDX-License-Identifier: EPL-2.0

// Package aiff reads and writes AIFF files through github.com/go-audio/aiff.
// Integer PCM at 8, 16, 24 and 32 bits is supported in both directions.
package aiff
