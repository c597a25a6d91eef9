// SPDX-License-Identifier: EPL-2.0

// Package utils holds small numeric helpers shared by the audio packages:
// sample format conversion, clamping, decibel math and interpolation.
package utils
