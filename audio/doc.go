// SPDX-License-Identifier: EPL-2.0

// Package audio provides the sample containers and streaming primitives the
// rest of the module is built on.
//
// # Buffers
//
// A Buffer holds interleaved float32 samples in [-1.0, 1.0] together with
// its Format (channel count and sample rate):
//
//	f := audio.Format{Channels: 2, SampleRate: 44100}
//	b := audio.Silence(f, 1.5)
//	fmt.Println(b.Frames(), b.Duration())
//
// Buffers are values. Code in this module never mutates the samples of a
// Buffer it was given.
//
// # Time expressions
//
// A Time is either absolute seconds or a fraction of the buffer it is
// applied to, and is resolved against a duration:
//
//	quarter := audio.MustFraction(1, 4)
//	secs, _ := quarter.Resolve(b.Duration())
//
// # Sources
//
// The Source interface is a pull based stream:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// Decoders, the Resampler and the ChannelMixer all implement it and can be
// chained. NewBufferSource and ReadAll bridge between Sources and Buffers,
// and Conform runs the whole chain to bring a Buffer to a target Format.
//
// # Resampling
//
// The Resampler changes the sample rate using cubic interpolation while
// keeping the duration:
//
//	r := audio.NewResampler(src, 16000)
//	out, err := audio.ReadAll(r)
//
// # Format registry
//
// Registry maps file extensions to Decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, _ := registry.Get(".WAV")
//
// # Error Handling
//
// Sources return io.EOF when no more data is available. All other failures
// wrap one of the sentinel errors declared in this package, so callers can
// test them with errors.Is.
package audio
