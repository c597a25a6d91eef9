// SPDX-License-Identifier: EPL-2.0

package cache

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"hash"
	"math"

	"github.com/ik5/sampleblend/audio"
	"github.com/ik5/sampleblend/blend"
)

// Key identifies one render.
type Key [sha256.Size]byte

func (k Key) String() string {
	return hex.EncodeToString(k[:])
}

// NewKey digests the inputs, in order, together with the seed, the blender
// name and the options. The unresolved name is used, so "rand" and the name
// it resolves to are different keys.
func NewKey(inputs []audio.Buffer, seed uint64, blender string, opts blend.Options) Key {
	h := sha256.New()

	writeUint(h, uint64(len(inputs)))
	for _, in := range inputs {
		writeUint(h, uint64(in.Format.Channels))
		writeUint(h, uint64(in.Format.SampleRate))
		writeUint(h, uint64(len(in.Samples)))

		buf := make([]byte, 4*len(in.Samples))
		for i, s := range in.Samples {
			binary.LittleEndian.PutUint32(buf[4*i:], math.Float32bits(s))
		}
		h.Write(buf)
	}

	writeUint(h, seed)
	writeString(h, blender)
	writeString(h, opts.PostFX)
	writeUint(h, math.Float64bits(opts.FXChance))

	var k Key
	h.Sum(k[:0])
	return k
}

func writeUint(h hash.Hash, v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	h.Write(b[:])
}

// writeString is length prefixed so "ab"+"c" and "a"+"bc" differ.
func writeString(h hash.Hash, s string) {
	writeUint(h, uint64(len(s)))
	h.Write([]byte(s))
}
