// SPDX-License-Identifier: EPL-2.0

// Command sampleblend transforms audio samples and composes new pieces out
// of them.
//
// Usage:
//
//	sampleblend [flags] <command> [args]
//
// Primitive operators (cut, speed, mix, mosaic, ...) read one or more files
// and write the result to -o, or as 16-bit WAV to standard output. The blend
// command runs a generative blender over files or directories of samples:
//
//	sampleblend blend samples/ --seed 42 --blender outbreaker -o out.wav
//
// Settings are read from sampleblend.yaml in the working directory, or the
// file given with --config. Flags override the file.
package main

import (
	"fmt"
	"os"

	"github.com/ik5/sampleblend/cmd/sampleblend/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
