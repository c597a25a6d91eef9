// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes WAV files.
//
// Decoder handles integer PCM at 8, 16, 24 and 32 bits, in plain or
// extensible format chunks, on top of github.com/go-audio/wav. 8-bit WAV
// data is unsigned and is centred before scaling.
//
// Encode writes a Buffer at any of those bit depths. It needs an
// io.WriteSeeker because the header sizes are patched on Close. WritePCM16
// streams 16-bit output to any io.Writer, such as standard output:
//
//	err := wav.WritePCM16(os.Stdout, buf)
package wav
