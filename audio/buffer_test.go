// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"errors"
	"testing"

	"github.com/ik5/sampleblend/audio"
	"github.com/ik5/sampleblend/internal/audiotest"
)

var stereo = audio.Format{Channels: 2, SampleRate: 44100}

func TestFormat_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		format  audio.Format
		wantErr bool
	}{
		{"mono", audio.Format{Channels: 1, SampleRate: 8000}, false},
		{"stereo", stereo, false},
		{"no channels", audio.Format{Channels: 0, SampleRate: 8000}, true},
		{"no rate", audio.Format{Channels: 2, SampleRate: 0}, true},
		{"negative rate", audio.Format{Channels: 2, SampleRate: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.format.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, audio.ErrInvalidFormat) {
				t.Errorf("Validate() error = %v, want ErrInvalidFormat", err)
			}
		})
	}
}

func TestFormat_Frames(t *testing.T) {
	t.Parallel()

	f := audio.Format{Channels: 1, SampleRate: 1000}
	tests := []struct {
		seconds float64
		want    int
	}{
		{0, 0},
		{1, 1000},
		{0.0004, 0},
		{0.0005, 1},
		{0.25, 250},
	}

	for _, tt := range tests {
		if got := f.Frames(tt.seconds); got != tt.want {
			t.Errorf("Frames(%v) = %d, want %d", tt.seconds, got, tt.want)
		}
	}
}

func TestNewBuffer(t *testing.T) {
	t.Parallel()

	if _, err := audio.NewBuffer(stereo, make([]float32, 4)); err != nil {
		t.Fatalf("NewBuffer() unexpected error: %v", err)
	}

	_, err := audio.NewBuffer(stereo, make([]float32, 3))
	if !errors.Is(err, audio.ErrInvalidFormat) {
		t.Errorf("NewBuffer() with partial frame error = %v, want ErrInvalidFormat", err)
	}

	_, err = audio.NewBuffer(audio.Format{}, nil)
	if !errors.Is(err, audio.ErrInvalidFormat) {
		t.Errorf("NewBuffer() with zero format error = %v, want ErrInvalidFormat", err)
	}
}

func TestSilence(t *testing.T) {
	t.Parallel()

	b := audio.Silence(stereo, 0.5)
	if b.Frames() != 22050 {
		t.Errorf("Frames() = %d, want 22050", b.Frames())
	}
	if b.Len() != 44100 {
		t.Errorf("Len() = %d, want 44100", b.Len())
	}
	if b.Duration() != 0.5 {
		t.Errorf("Duration() = %v, want 0.5", b.Duration())
	}
	if b.Peak() != 0 {
		t.Errorf("Peak() = %v, want 0", b.Peak())
	}

	if got := audio.Silence(stereo, -1).Len(); got != 0 {
		t.Errorf("Silence(-1).Len() = %d, want 0", got)
	}
}

func TestBuffer_Peak(t *testing.T) {
	t.Parallel()

	b := audio.Buffer{Format: stereo, Samples: []float32{0.1, -0.7, 0.5, 0.2}}
	if got := b.Peak(); got != 0.7 {
		t.Errorf("Peak() = %v, want 0.7", got)
	}
}

func TestBuffer_CloneIsIndependent(t *testing.T) {
	t.Parallel()

	b := audiotest.Sine(stereo, 0.01, 440)
	c := b.Clone()
	if !c.Equal(b) {
		t.Fatal("Clone() is not Equal to the original")
	}

	c.Samples[0] = 42
	if b.Samples[0] == 42 {
		t.Error("writing into the clone changed the original")
	}
	if c.Equal(b) {
		t.Error("Equal() = true after modification")
	}
}

func TestBuffer_ZeroValue(t *testing.T) {
	t.Parallel()

	var b audio.Buffer
	if b.Frames() != 0 || b.Duration() != 0 {
		t.Errorf("zero Buffer: Frames() = %d, Duration() = %v", b.Frames(), b.Duration())
	}
}

func TestCheckFormat(t *testing.T) {
	t.Parallel()

	a := audio.Silence(stereo, 0.1)
	b := audio.Silence(audio.Format{Channels: 1, SampleRate: 44100}, 0.1)

	if err := audio.CheckFormat(a, a); err != nil {
		t.Errorf("CheckFormat(a, a) = %v, want nil", err)
	}
	if err := audio.CheckFormat(a, b); !errors.Is(err, audio.ErrFormatMismatch) {
		t.Errorf("CheckFormat(a, b) = %v, want ErrFormatMismatch", err)
	}
}
