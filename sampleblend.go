// SPDX-License-Identifier: EPL-2.0

package sampleblend

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/sampleblend/audio"
	"github.com/ik5/sampleblend/formats/aiff"
	"github.com/ik5/sampleblend/formats/mp3"
	"github.com/ik5/sampleblend/formats/vorbis"
	"github.com/ik5/sampleblend/formats/wav"
)

var (
	ErrUnknownFormat = errors.New("unknown audio file format")
	ErrNoSamples     = errors.New("no audio files found")
)

var decoders = newDecoders()

func newDecoders() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("wave", wav.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("aif", aiff.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	return r
}

// Decoders returns the registry of every supported input format, keyed by
// file extension.
func Decoders() *audio.Registry {
	return decoders
}

// NewRand returns the generator every draw of a render comes from.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// Load decodes r as format (an extension such as "wav") into a Buffer.
func Load(r io.Reader, format string) (audio.Buffer, error) {
	dec, ok := decoders.Get(format)
	if !ok {
		return audio.Buffer{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	src, err := dec.Decode(r)
	if err != nil {
		return audio.Buffer{}, err
	}
	defer src.Close()

	return audio.ReadAll(src)
}

// LoadFile decodes the file at path, picking the decoder by extension.
func LoadFile(path string) (audio.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return audio.Buffer{}, err
	}
	defer f.Close()

	b, err := Load(f, filepath.Ext(path))
	if err != nil {
		return audio.Buffer{}, fmt.Errorf("%s: %w", path, err)
	}
	slog.Debug("sampleblend: loaded", "path", path, "format", b.Format, "duration", b.Duration())
	return b, nil
}

// Supported reports whether path has the extension of a registered format.
func Supported(path string) bool {
	ext := filepath.Ext(path)
	if ext == "" {
		return false
	}
	_, ok := decoders.Get(ext)
	return ok
}

// ListDir returns the supported audio files directly inside dir, sorted by
// name.
func ListDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.Type().IsRegular() && Supported(e.Name()) {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	return files, nil
}

// LoadDir loads n files drawn from dir with one IntN each. The same file may
// be drawn more than once.
func LoadDir(dir string, n int, rng *rand.Rand) ([]audio.Buffer, error) {
	files, err := ListDir(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoSamples, dir)
	}

	out := make([]audio.Buffer, 0, n)
	for range n {
		b, err := LoadFile(files[rng.IntN(len(files))])
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

// LoadPaths loads every file in paths. A directory stands for n files drawn
// from it as LoadDir does.
func LoadPaths(paths []string, n int, rng *rand.Rand) ([]audio.Buffer, error) {
	var out []audio.Buffer
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}

		if info.IsDir() {
			bs, err := LoadDir(p, n, rng)
			if err != nil {
				return nil, err
			}
			out = append(out, bs...)
			continue
		}

		b, err := LoadFile(p)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	if len(out) == 0 {
		return nil, ErrNoSamples
	}
	return out, nil
}

// SaveFile writes b to path as WAV or AIFF, chosen by extension, with
// bitDepth bits per sample.
func SaveFile(path string, b audio.Buffer, bitDepth int) error {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))

	var encode func(io.WriteSeeker, audio.Buffer, int) error
	switch ext {
	case "wav", "wave":
		encode = wav.Encode
	case "aif", "aiff":
		encode = aiff.Encode
	default:
		return fmt.Errorf("%w: can't write %q", ErrUnknownFormat, ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := encode(f, b, bitDepth); err != nil {
		_ = f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}
