// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis input through github.com/jfreymuth/oggvorbis.
package vorbis
