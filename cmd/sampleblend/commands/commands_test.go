// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ik5/sampleblend"
	"github.com/ik5/sampleblend/audio"
	"github.com/ik5/sampleblend/blend"
	"github.com/ik5/sampleblend/formats/wav"
	"github.com/ik5/sampleblend/internal/audiotest"
	"github.com/ik5/sampleblend/ops"
)

var stereo = audio.Format{Channels: 2, SampleRate: 8000}

// runCmd runs a fresh command tree. A missing config file is passed so a
// sampleblend.yaml in the working directory can't leak in. Commands install
// the default slog logger, so tests using runCmd don't run in parallel.
func runCmd(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yaml")}, args...))

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

// writeInput saves b as a 16-bit WAV file in a temp dir.
func writeInput(t *testing.T, name string, b audio.Buffer) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := sampleblend.SaveFile(path, b, 16); err != nil {
		t.Fatal(err)
	}
	return path
}

func load(t *testing.T, path string) audio.Buffer {
	t.Helper()

	b, err := sampleblend.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile(%s) unexpected error: %v", path, err)
	}
	return b
}

func TestBlenders(t *testing.T) {
	stdout, _, err := runCmd(t, "blenders")
	if err != nil {
		t.Fatalf("blenders: %v", err)
	}
	if got, want := strings.Fields(stdout), blend.Default().Names(); strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("blenders printed %v, want %v", got, want)
	}
}

func TestOps(t *testing.T) {
	in := writeInput(t, "in.wav", audiotest.Sine(stereo, 1, 440))

	tests := []struct {
		args     []string
		flags    []string
		duration float64
	}{
		{[]string{"cut", in, "0.25", "1/2"}, nil, 0.5},
		{[]string{"pick", in, "0.1"}, nil, 0.1},
		{[]string{"speed", in, "2"}, nil, 0.5},
		{[]string{"resize", in, "3"}, nil, 3},
		{[]string{"gain", in, "-6"}, nil, 1},
		{[]string{"fade", in, "0", "-30"}, nil, 1},
		{[]string{"maxgain", in}, nil, 1},
		{[]string{"repeat", in, "3"}, nil, 3},
		{[]string{"chop", in, "4"}, nil, 1},
		{[]string{"reverse", in}, nil, 1},
		{[]string{"remix", in, "1121"}, nil, 1},
		{[]string{"mosaic", in, "ab_a", "0.2"}, nil, 0.8},
		{[]string{"fx", in, "lowpass"}, nil, 1},
		{[]string{"convert", in}, []string{"--rate", "16000"}, 1},
		{[]string{"add", in, in}, nil, 2},
		{[]string{"mix", in, in}, []string{"--normalize"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.args[0], func(t *testing.T) {
			out := filepath.Join(t.TempDir(), "out.wav")
			// Flags go before "--" so negative numbers stay positional.
			args := append([]string{tt.args[0], "-o", out, "--seed", "1"}, tt.flags...)
			args = append(append(args, "--"), tt.args[1:]...)
			if _, _, err := runCmd(t, args...); err != nil {
				t.Fatalf("%v: %v", tt.args, err)
			}

			b := load(t, out)
			if math.Abs(b.Duration()-tt.duration) > 0.01 {
				t.Errorf("Duration() = %v, want %v", b.Duration(), tt.duration)
			}
		})
	}
}

func TestReverse_Samples(t *testing.T) {
	in := writeInput(t, "in.wav", audiotest.Ramp(stereo, 0.1))
	out := filepath.Join(t.TempDir(), "out.wav")

	if _, _, err := runCmd(t, "reverse", in, "-o", out); err != nil {
		t.Fatalf("reverse: %v", err)
	}

	want := ops.Reverse(load(t, in))
	got := load(t, out)
	for i := range want.Samples {
		if math.Abs(float64(got.Samples[i]-want.Samples[i])) > 2.0/32768 {
			t.Fatalf("sample %d = %v, want %v", i, got.Samples[i], want.Samples[i])
		}
	}
}

func TestStdout(t *testing.T) {
	in := writeInput(t, "in.wav", audiotest.Sine(stereo, 0.5, 440))

	stdout, _, err := runCmd(t, "maxgain", in)
	if err != nil {
		t.Fatalf("maxgain: %v", err)
	}

	src, err := wav.Decoder{}.Decode(strings.NewReader(stdout))
	if err != nil {
		t.Fatalf("standard output is not a WAV file: %v", err)
	}
	b, err := audio.ReadAll(src)
	if err != nil {
		t.Fatal(err)
	}
	if b.Format != stereo || math.Abs(b.Duration()-0.5) > 0.001 {
		t.Errorf("decoded %v %vs, want %v 0.5s", b.Format, b.Duration(), stereo)
	}
}

func TestSplit(t *testing.T) {
	in := writeInput(t, "in.wav", audiotest.Sine(stereo, 1, 440))
	out := filepath.Join(t.TempDir(), "part.wav")

	if _, _, err := runCmd(t, "split", in, "4", "-o", out); err != nil {
		t.Fatalf("split: %v", err)
	}
	for i := 1; i <= 4; i++ {
		b := load(t, numbered(out, i))
		if math.Abs(b.Duration()-0.25) > 0.001 {
			t.Errorf("part %d Duration() = %v, want 0.25", i, b.Duration())
		}
	}

	if _, _, err := runCmd(t, "split", in, "4"); !errors.Is(err, errOutputRequired) {
		t.Errorf("split without -o error = %v, want errOutputRequired", err)
	}
}

func blendInputs(t *testing.T) []string {
	t.Helper()

	return []string{
		writeInput(t, "a.wav", audiotest.Noise(stereo, 2, 1)),
		writeInput(t, "b.wav", audiotest.Sine(stereo, 2, 330)),
		writeInput(t, "c.wav", audiotest.Noise(stereo, 2, 2)),
	}
}

func TestBlend_Deterministic(t *testing.T) {
	inputs := blendInputs(t)
	render := func() []byte {
		out := filepath.Join(t.TempDir(), "out.wav")
		args := append([]string{"blend"}, inputs...)
		if _, _, err := runCmd(t, append(args, "--seed", "9", "-b", "rand", "-o", out)...); err != nil {
			t.Fatalf("blend: %v", err)
		}
		data, err := os.ReadFile(out)
		if err != nil {
			t.Fatal(err)
		}
		return data
	}

	if !bytes.Equal(render(), render()) {
		t.Error("two renders with the same seed differ")
	}
}

func TestBlend_Cache(t *testing.T) {
	inputs := blendInputs(t)
	cacheDir := t.TempDir()

	var renders [][]byte
	for range 2 {
		out := filepath.Join(t.TempDir(), "out.wav")
		args := append([]string{"blend"}, inputs...)
		args = append(args, "--seed", "3", "-b", "m4ze", "--cache-dir", cacheDir, "-o", out)
		if _, _, err := runCmd(t, args...); err != nil {
			t.Fatalf("blend: %v", err)
		}
		data, err := os.ReadFile(out)
		if err != nil {
			t.Fatal(err)
		}
		renders = append(renders, data)
	}

	if !bytes.Equal(renders[0], renders[1]) {
		t.Error("cached render differs from the first one")
	}
}

func TestBlend_Directory(t *testing.T) {
	dir := filepath.Dir(writeInput(t, "a.wav", audiotest.Noise(stereo, 2, 1)))
	out := filepath.Join(t.TempDir(), "out.wav")

	if _, _, err := runCmd(t, "blend", dir, "--seed", "1", "-b", "outbreaker", "-o", out); err != nil {
		t.Fatalf("blend: %v", err)
	}
	if d := load(t, out).Duration(); d < 11.99 || d > 16.01 {
		t.Errorf("Duration() = %v, want within [12, 16]", d)
	}
}

func TestBlend_ConfigFile(t *testing.T) {
	inputs := blendInputs(t)
	cfg := filepath.Join(t.TempDir(), "sampleblend.yaml")
	body := "seed: 4\nblender: xfade\nfx_chance: 0\ninputs:\n"
	for _, p := range inputs {
		body += "  - " + p + "\n"
	}
	if err := os.WriteFile(cfg, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(t.TempDir(), "out.wav")
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"blend", "--config", cfg, "-o", out})
	if err := root.Execute(); err != nil {
		t.Fatalf("blend: %v", err)
	}

	// xfade loops the 0.5 s quarters four times.
	if d := load(t, out).Duration(); math.Abs(d-2) > 0.01 {
		t.Errorf("Duration() = %v, want 2", d)
	}
}

func TestBlend_Errors(t *testing.T) {
	inputs := blendInputs(t)

	tests := []struct {
		name string
		args []string
		want error
	}{
		{"unknown blender", append([]string{"blend", "-b", "granular"}, inputs...), blend.ErrUnknownBlender},
		{"missing input", []string{"blend", "-b", "outbreaker", inputs[0]}, blend.ErrNotEnoughInputs},
		{"cut out of range", []string{"cut", inputs[0], "5", "1"}, audio.ErrOutOfRange},
		{"bad time", []string{"cut", inputs[0], "x", "1"}, audio.ErrInvalidTime},
		{"unsupported output", []string{"reverse", inputs[0], "-o", filepath.Join(t.TempDir(), "out.mp3")}, sampleblend.ErrUnknownFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := runCmd(t, tt.args...); !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestInfo(t *testing.T) {
	in := writeInput(t, "in.wav", audiotest.Sine(stereo, 0.5, 440))

	stdout, _, err := runCmd(t, "info", in, "--format", "json")
	if err != nil {
		t.Fatalf("info: %v", err)
	}

	var infos []fileInfo
	if err := json.Unmarshal([]byte(stdout), &infos); err != nil {
		t.Fatalf("info output is not JSON: %v\n%s", err, stdout)
	}
	if len(infos) != 1 {
		t.Fatalf("got %d entries, want 1", len(infos))
	}
	got := infos[0]
	if got.Format != "wav" || got.Channels != 2 || got.SampleRate != 8000 || got.Frames != 4000 {
		t.Errorf("info = %+v", got)
	}

	stdout, _, err = runCmd(t, "info", in)
	if err != nil {
		t.Fatalf("info: %v", err)
	}
	if !strings.Contains(stdout, "sample_rate: 8000") {
		t.Errorf("YAML output missing sample_rate:\n%s", stdout)
	}

	stdout, _, err = runCmd(t, "info", in, "--pretty")
	if err != nil {
		t.Fatalf("info --pretty: %v", err)
	}
	if !strings.Contains(stdout, "8000 Hz") {
		t.Errorf("pretty output missing the rate:\n%s", stdout)
	}
}

func TestNumbered(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		n    int
		want string
	}{
		{"out.wav", 1, "out-1.wav"},
		{"dir/part.aiff", 12, "dir/part-12.aiff"},
		{"noext", 2, "noext-2"},
	}

	for _, tt := range tests {
		if got := numbered(tt.path, tt.n); got != tt.want {
			t.Errorf("numbered(%q, %d) = %q, want %q", tt.path, tt.n, got, tt.want)
		}
	}
}
