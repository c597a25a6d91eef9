// SPDX-License-Identifier: EPL-2.0

package cache

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/ik5/sampleblend/audio"
)

// record is the msgpack form of a stored buffer.
type record struct {
	Channels   int       `msgpack:"ch"`
	SampleRate int       `msgpack:"sr"`
	Samples    []float32 `msgpack:"s"`
}

func encode(b audio.Buffer) ([]byte, error) {
	data, err := msgpack.Marshal(record{
		Channels:   b.Format.Channels,
		SampleRate: b.Format.SampleRate,
		Samples:    b.Samples,
	})
	if err != nil {
		return nil, fmt.Errorf("cache: encode: %w", err)
	}
	return data, nil
}

// decode validates what it reads, so a corrupt entry surfaces as an error
// rather than a malformed Buffer.
func decode(data []byte) (audio.Buffer, error) {
	var r record
	if err := msgpack.Unmarshal(data, &r); err != nil {
		return audio.Buffer{}, fmt.Errorf("cache: decode: %w", err)
	}
	b, err := audio.NewBuffer(audio.Format{Channels: r.Channels, SampleRate: r.SampleRate}, r.Samples)
	if err != nil {
		return audio.Buffer{}, fmt.Errorf("cache: decode: %w", err)
	}
	return b, nil
}
