// SPDX-License-Identifier: EPL-2.0

package aiff_test

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/sampleblend/audio"
	"github.com/ik5/sampleblend/formats/aiff"
	"github.com/ik5/sampleblend/internal/audiotest"
)

func encode(t *testing.T, b audio.Buffer, bitDepth int) []byte {
	t.Helper()

	f, err := os.Create(filepath.Join(t.TempDir(), "out.aiff"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if err := aiff.Encode(f, b, bitDepth); err != nil {
		t.Fatalf("Encode() unexpected error: %v", err)
	}

	data, err := os.ReadFile(f.Name())
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	for _, bitDepth := range []int{8, 16, 24, 32} {
		t.Run(fmt.Sprintf("%d-bit", bitDepth), func(t *testing.T) {
			t.Parallel()

			in := audiotest.Sine(audio.Format{Channels: 2, SampleRate: 22050}, 0.1, 440)

			src, err := aiff.Decoder{}.Decode(bytes.NewReader(encode(t, in, bitDepth)))
			if err != nil {
				t.Fatalf("Decode() unexpected error: %v", err)
			}
			out, err := audio.ReadAll(src)
			if err != nil {
				t.Fatalf("ReadAll() unexpected error: %v", err)
			}

			if out.Format != in.Format {
				t.Fatalf("Format = %v, want %v", out.Format, in.Format)
			}
			if out.Len() != in.Len() {
				t.Fatalf("Len() = %d, want %d", out.Len(), in.Len())
			}

			tolerance := max(2/math.Pow(2, float64(bitDepth-1)), 1e-6)
			for i := range in.Samples {
				if d := math.Abs(float64(out.Samples[i] - in.Samples[i])); d > tolerance {
					t.Fatalf("sample %d = %v, want %v", i, out.Samples[i], in.Samples[i])
				}
			}
		})
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	for _, data := range [][]byte{nil, []byte("This is not AIFF data")} {
		if _, err := (aiff.Decoder{}).Decode(bytes.NewReader(data)); !errors.Is(err, aiff.ErrNotAiffFile) {
			t.Errorf("Decode(%q) error = %v, want ErrNotAiffFile", data, err)
		}
	}
}

func TestEncode_UnsupportedBitDepth(t *testing.T) {
	t.Parallel()

	f, err := os.Create(filepath.Join(t.TempDir(), "out.aiff"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	b := audiotest.Sine(audio.Format{Channels: 1, SampleRate: 8000}, 0.1, 440)
	if err := aiff.Encode(f, b, 20); !errors.Is(err, aiff.ErrUnsupportedBitDepth) {
		t.Errorf("Encode() error = %v, want ErrUnsupportedBitDepth", err)
	}
}
