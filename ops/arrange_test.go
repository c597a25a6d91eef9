// SPDX-License-Identifier: EPL-2.0

package ops_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/ik5/sampleblend/audio"
	"github.com/ik5/sampleblend/internal/audiotest"
	"github.com/ik5/sampleblend/ops"
)

func TestRepeat(t *testing.T) {
	t.Parallel()

	src := audiotest.Ramp(stereo, 0.1)
	got, err := ops.Repeat(src, 3)
	if err != nil {
		t.Fatalf("Repeat() unexpected error: %v", err)
	}
	if got.Len() != 3*src.Len() {
		t.Fatalf("Len() = %d, want %d", got.Len(), 3*src.Len())
	}
	for i := range 3 {
		part := got.Samples[i*src.Len() : (i+1)*src.Len()]
		if !slices.Equal(part, src.Samples) {
			t.Errorf("repetition %d differs from the source", i)
		}
	}

	if _, err := ops.Repeat(src, 0); !errors.Is(err, audio.ErrInvalidParameter) {
		t.Errorf("Repeat(0) error = %v, want ErrInvalidParameter", err)
	}
}

func TestChop(t *testing.T) {
	t.Parallel()

	src := audiotest.Ramp(mono, 1)
	got, err := ops.Chop(src, 8)
	if err != nil {
		t.Fatalf("Chop() unexpected error: %v", err)
	}
	if !near(got.Duration(), src.Duration(), 1.0/8000) {
		t.Errorf("Duration() = %v, want %v", got.Duration(), src.Duration())
	}

	head := got.Samples[:1000]
	if !slices.Equal(head, src.Samples[:1000]) {
		t.Error("first slice is not the start of the source")
	}
	if !slices.Equal(got.Samples[7000:], head) {
		t.Error("last slice does not repeat the first")
	}

	if _, err := ops.Chop(src, -1); !errors.Is(err, audio.ErrInvalidParameter) {
		t.Errorf("Chop(-1) error = %v, want ErrInvalidParameter", err)
	}
}

func TestReverse(t *testing.T) {
	t.Parallel()

	src := audio.Buffer{Format: stereo, Samples: []float32{1, -1, 2, -2, 3, -3}}
	got := ops.Reverse(src)

	want := []float32{3, -3, 2, -2, 1, -1}
	if !slices.Equal(got.Samples, want) {
		t.Errorf("Reverse() = %v, want %v", got.Samples, want)
	}
	if !ops.Reverse(got).Equal(src) {
		t.Error("reversing twice did not restore the source")
	}
}

func TestRemix(t *testing.T) {
	t.Parallel()

	src := audio.Buffer{Format: mono, Samples: []float32{1, 2, 3, 4}}

	tests := []struct {
		pattern string
		want    []float32
	}{
		{"1234", []float32{1, 2, 3, 4}},
		{"4321", []float32{4, 3, 2, 1}},
		{"1111", []float32{1, 1, 1, 1}},
		{"21", []float32{3, 4, 1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			t.Parallel()

			got, err := ops.Remix(src, tt.pattern)
			if err != nil {
				t.Fatalf("Remix() unexpected error: %v", err)
			}
			if !slices.Equal(got.Samples, tt.want) {
				t.Errorf("Remix(%q) = %v, want %v", tt.pattern, got.Samples, tt.want)
			}
		})
	}
}

func TestRemix_InvalidPattern(t *testing.T) {
	t.Parallel()

	src := audiotest.Ramp(mono, 0.1)
	for _, p := range []string{"", "1a23", "125", "120"} {
		if _, err := ops.Remix(src, p); !errors.Is(err, audio.ErrInvalidParameter) {
			t.Errorf("Remix(%q) error = %v, want ErrInvalidParameter", p, err)
		}
	}
}
