// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"bytes"
	"errors"
	"io"
	"math"
	"strings"
	"testing"

	goaudio "github.com/go-audio/audio"
)

// mockReader hands out data in the chunks PCMBuffer asks for.
type mockReader struct {
	data   []int
	offset int
	err    error
}

func (m *mockReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	n := copy(buf.Data, m.data[m.offset:])
	m.offset += n
	return n, nil
}

func TestSource_BitDepths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bitDepth int
		unsigned bool
		data     []int
		want     []float32
	}{
		{"16-bit", 16, false, []int{0, 16384, -16384, -32768}, []float32{0, 0.5, -0.5, -1}},
		{"24-bit", 24, false, []int{4194304, -8388608}, []float32{0.5, -1}},
		{"32-bit", 32, false, []int{1 << 30, math.MinInt32}, []float32{0.5, -1}},
		{"signed 8-bit", 8, false, []int{64, -128}, []float32{0.5, -1}},
		{"unsigned 8-bit", 8, true, []int{128, 192, 0}, []float32{0, 0.5, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := NewSource(&mockReader{data: tt.data}, 8000, 1, tt.bitDepth, tt.unsigned)
			dst := make([]float32, 16)

			n, err := src.ReadSamples(dst)
			if err != nil {
				t.Fatalf("ReadSamples() unexpected error: %v", err)
			}
			if n != len(tt.want) {
				t.Fatalf("ReadSamples() = %d, want %d", n, len(tt.want))
			}
			for i, want := range tt.want {
				if math.Abs(float64(dst[i]-want)) > 1e-6 {
					t.Errorf("dst[%d] = %v, want %v", i, dst[i], want)
				}
			}
		})
	}
}

func TestSource_EOF(t *testing.T) {
	t.Parallel()

	src := NewSource(&mockReader{data: []int{1, 2}}, 8000, 2, 16, false)
	dst := make([]float32, 4)

	if n, err := src.ReadSamples(dst); n != 2 || err != nil {
		t.Fatalf("first ReadSamples() = %d, %v, want 2, nil", n, err)
	}
	if n, err := src.ReadSamples(dst); n != 0 || !errors.Is(err, io.EOF) {
		t.Errorf("second ReadSamples() = %d, %v, want 0, io.EOF", n, err)
	}
}

func TestSource_Error(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	src := NewSource(&mockReader{err: errBoom}, 8000, 1, 16, false)

	if _, err := src.ReadSamples(make([]float32, 4)); !errors.Is(err, errBoom) {
		t.Errorf("ReadSamples() error = %v, want %v", err, errBoom)
	}
}

func TestSource_EmptyDst(t *testing.T) {
	t.Parallel()

	src := NewSource(&mockReader{data: []int{1}}, 8000, 1, 16, false)
	if n, err := src.ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v, want 0, nil", n, err)
	}
}

func TestIntBuffer(t *testing.T) {
	t.Parallel()

	buf := IntBuffer([]float32{0, 1, -1, 2}, 8000, 2, 8, true)
	want := []int{128, 255, 1, 255}
	for i, v := range want {
		if buf.Data[i] != v {
			t.Errorf("Data[%d] = %d, want %d", i, buf.Data[i], v)
		}
	}
	if buf.Format.NumChannels != 2 || buf.SourceBitDepth != 8 {
		t.Errorf("IntBuffer() format = %+v, depth %d", buf.Format, buf.SourceBitDepth)
	}
}

func TestReadSeeker(t *testing.T) {
	t.Parallel()

	br := bytes.NewReader([]byte("abc"))
	if rs, err := ReadSeeker(br); err != nil || rs != io.ReadSeeker(br) {
		t.Errorf("ReadSeeker(seeker) = %v, %v, want the same reader", rs, err)
	}

	rs, err := ReadSeeker(struct{ io.Reader }{strings.NewReader("abc")})
	if err != nil {
		t.Fatalf("ReadSeeker() unexpected error: %v", err)
	}
	if _, err := rs.Seek(1, io.SeekStart); err != nil {
		t.Fatalf("Seek() unexpected error: %v", err)
	}
	rest, _ := io.ReadAll(rs)
	if string(rest) != "bc" {
		t.Errorf("after Seek(1) read %q, want %q", rest, "bc")
	}
}

func TestSupported(t *testing.T) {
	t.Parallel()

	for _, bd := range []int{8, 16, 24, 32} {
		if !Supported(bd) {
			t.Errorf("Supported(%d) = false", bd)
		}
	}
	for _, bd := range []int{0, 4, 12, 64} {
		if Supported(bd) {
			t.Errorf("Supported(%d) = true", bd)
		}
	}
}
