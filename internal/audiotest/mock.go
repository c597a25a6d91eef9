// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"io"
	"math"
	"math/rand/v2"

	"github.com/ik5/sampleblend/audio"
)

// Waveform returns the value of a sample given its frame index and channel.
type Waveform func(frame, channel int) float32

// MockSource is a test helper that generates audio data for testing.
// It implements the audio.Source interface.
type MockSource struct {
	sampleRate  int
	channels    int
	totalFrames int
	generated   int
	waveform    Waveform
}

// NewMockSource creates a new mock audio source producing totalFrames frames.
func NewMockSource(sampleRate, channels, totalFrames int, waveform Waveform) *MockSource {
	return &MockSource{
		sampleRate:  sampleRate,
		channels:    channels,
		totalFrames: totalFrames,
		waveform:    waveform,
	}
}

// NewSineSource creates a mock source that generates a sine wave.
func NewSineSource(sampleRate, channels, totalFrames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, SineWave(sampleRate, frequency, 1))
}

// NewConstantSource creates a mock source with constant value.
func NewConstantSource(sampleRate, channels, totalFrames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(int, int) float32 { return value })
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) Close() error    { return nil }

// Reset rewinds the source to its first frame.
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.totalFrames {
		return 0, io.EOF
	}

	frames := min(len(dst)/m.channels, m.totalFrames-m.generated)
	for f := range frames {
		for ch := range m.channels {
			dst[f*m.channels+ch] = m.waveform(m.generated+f, ch)
		}
	}

	m.generated += frames
	if m.generated >= m.totalFrames {
		return frames * m.channels, io.EOF
	}
	return frames * m.channels, nil
}

// SineWave is a Waveform of the given frequency and amplitude.
func SineWave(sampleRate int, frequency float64, amplitude float32) Waveform {
	return func(frame, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return amplitude * float32(math.Sin(2*math.Pi*frequency*t))
	}
}

// Render evaluates w into a Buffer of the given format and duration.
func Render(f audio.Format, seconds float64, w Waveform) audio.Buffer {
	frames := f.Frames(seconds)
	samples := make([]float32, frames*f.Channels)
	for i := range frames {
		for ch := range f.Channels {
			samples[i*f.Channels+ch] = w(i, ch)
		}
	}
	return audio.Buffer{Format: f, Samples: samples}
}

// Sine renders a sine tone peaking at 0.5.
func Sine(f audio.Format, seconds, frequency float64) audio.Buffer {
	return Render(f, seconds, SineWave(f.SampleRate, frequency, 0.5))
}

// Constant renders a buffer where every sample equals value.
func Constant(f audio.Format, seconds float64, value float32) audio.Buffer {
	return Render(f, seconds, func(int, int) float32 { return value })
}

// Ramp renders samples that rise linearly with the frame index, which makes
// it easy to tell where a slice came from.
func Ramp(f audio.Format, seconds float64) audio.Buffer {
	frames := max(f.Frames(seconds), 1)
	return Render(f, seconds, func(frame, _ int) float32 {
		return float32(frame) / float32(frames)
	})
}

// Noise renders reproducible white noise in [-0.8, 0.8].
func Noise(f audio.Format, seconds float64, seed uint64) audio.Buffer {
	rng := rand.New(rand.NewPCG(seed, seed))
	return Render(f, seconds, func(int, int) float32 {
		return float32(rng.Float64()*1.6 - 0.8)
	})
}
