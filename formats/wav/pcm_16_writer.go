// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/sampleblend/audio"
	"github.com/ik5/sampleblend/utils"
)

// headerSize of a canonical PCM WAV file.
const headerSize = 44

// WritePCM16 writes b as a 16-bit PCM WAV file. Unlike Encode it needs no
// seeking, since the sizes are known up front.
func WritePCM16(w io.Writer, b audio.Buffer) error {
	if err := b.Format.Validate(); err != nil {
		return err
	}

	numChannels := uint16(b.Format.Channels)
	bitsPerSample := uint16(16)
	byteRate := uint32(b.Format.SampleRate) * uint32(numChannels) * uint32(bitsPerSample/8)
	blockAlign := numChannels * (bitsPerSample / 8)
	dataSize := uint32(len(b.Samples) * 2)

	header := make([]byte, headerSize)

	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], headerSize-8+dataSize)
	copy(header[8:12], "WAVE")

	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], formatPCM)
	binary.LittleEndian.PutUint16(header[22:24], numChannels)
	binary.LittleEndian.PutUint32(header[24:28], uint32(b.Format.SampleRate))
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)

	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("wav: header: %w", err)
	}

	const chunkSize = 8192
	if len(b.Samples) == 0 {
		return nil
	}

	buf := make([]byte, min(len(b.Samples), chunkSize)*2)
	for i := 0; i < len(b.Samples); i += chunkSize {
		chunk := b.Samples[i:min(i+chunkSize, len(b.Samples))]
		buf = buf[:len(chunk)*2]

		for j, s := range chunk {
			binary.LittleEndian.PutUint16(buf[j*2:], uint16(utils.Float32ToInt16(s)))
		}

		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("wav: data: %w", err)
		}
	}

	return nil
}
