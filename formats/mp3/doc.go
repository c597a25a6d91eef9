// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 input through github.com/hajimehoshi/go-mp3.
//
// The decoder always produces 16-bit stereo, so mono files come out with
// both channels equal. There is no MP3 encoder; renders are written as WAV
// or AIFF.
package mp3
