// SPDX-License-Identifier: EPL-2.0

package blend

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/ik5/sampleblend/audio"
	"github.com/ik5/sampleblend/fx"
	"github.com/ik5/sampleblend/internal/audiotest"
	"github.com/ik5/sampleblend/ops"
)

var format = audio.Format{Channels: 2, SampleRate: 8000}

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func TestDelayer_SecondLayerStartsSilent(t *testing.T) {
	t.Parallel()

	// A silent first input leaves only the delayed layer audible.
	in := []audio.Buffer{
		audio.Silence(format, 2),
		audiotest.Noise(format, 2, 3),
	}
	const loopFrames = 4000 // quarters of 0.5 s

	for seed := range uint64(8) {
		divisor := delayDivisors[seeded(seed).IntN(len(delayDivisors))]
		offset := int(0.5 / divisor * float64(format.SampleRate))

		out, err := Delayer(in, seeded(seed))
		if err != nil {
			t.Fatalf("seed %d: Delayer() unexpected error: %v", seed, err)
		}
		if out.Frames() != loops*loopFrames {
			t.Fatalf("seed %d: Frames() = %d, want %d", seed, out.Frames(), loops*loopFrames)
		}

		ch := format.Channels
		for k := range loops {
			start := k * loopFrames
			for i := start * ch; i < (start+offset)*ch; i++ {
				if out.Samples[i] != 0 {
					t.Fatalf("seed %d (1/%v delay): loop %d sample %d = %v, want silence",
						seed, divisor, k, i-start*ch, out.Samples[i])
				}
			}
			if out.Samples[(start+offset)*ch] == 0 {
				t.Errorf("seed %d (1/%v delay): loop %d still silent after the delay", seed, divisor, k)
			}
		}
	}
}

func TestOutbreaker_LastTrackTailMuted(t *testing.T) {
	t.Parallel()

	in := []audio.Buffer{
		audiotest.Noise(format, 2, 1),
		audiotest.Noise(format, 2, 2),
		audiotest.Noise(format, 2, 3),
	}

	for seed := range uint64(8) {
		out, err := Outbreaker(in, seeded(seed))
		if err != nil {
			t.Fatalf("seed %d: Outbreaker() unexpected error: %v", seed, err)
		}
		if out.Peak() < 0.1 {
			t.Fatalf("seed %d: Peak() = %v, output unexpectedly quiet", seed, out.Peak())
		}

		// The last eighth of track 3 spans well over the final 0.2% of the
		// arrangement.
		tail := out.Frames() / 500
		from := (out.Frames() - tail) * format.Channels
		var peak float64
		for _, s := range out.Samples[from:] {
			peak = max(peak, math.Abs(float64(s)))
		}
		if peak > 1e-4 {
			t.Errorf("seed %d: tail peak = %v, want below -80 dB", seed, peak)
		}
	}
}

func newMaze(t *testing.T, normal int, rng *rand.Rand) *maze {
	t.Helper()

	src, err := ops.Split(audiotest.Noise(format, 0.2, 1), 4)
	if err != nil {
		t.Fatal(err)
	}
	dst, err := ops.Split(audiotest.Noise(format, 0.2, 2), 4)
	if err != nil {
		t.Fatal(err)
	}
	return &maze{rng: rng, normal: normal, src: src, dst: dst}
}

func TestMaze_MixOrKeep(t *testing.T) {
	t.Parallel()

	t.Run("always mix", func(t *testing.T) {
		t.Parallel()

		rng := seeded(9)
		m := newMaze(t, 1, rng)
		for i := range m.src {
			if err := m.mixOrKeep(i); err != nil {
				t.Fatal(err)
			}

			mixed, err := ops.Mix(m.src[i], m.dst[i], false)
			if err != nil {
				t.Fatal(err)
			}
			if !m.l1[i].Equal(mixed) {
				t.Errorf("segment %d: layer 1 is not the mix of both segments", i)
			}
			if !m.l2[i].Equal(ops.Gain(m.src[i], silenced)) {
				t.Errorf("segment %d: layer 2 is not the -100 dB copy of the first segment", i)
			}
		}

		// normal == 1 decides without drawing.
		if got, want := rng.Uint64(), seeded(9).Uint64(); got != want {
			t.Error("mixOrKeep drew from the generator with normal == 1")
		}
	})

	t.Run("never mix", func(t *testing.T) {
		t.Parallel()

		m := newMaze(t, 0, seeded(9))
		for i := range m.src {
			if err := m.mixOrKeep(i); err != nil {
				t.Fatal(err)
			}
			if !m.l1[i].Equal(m.src[i]) || !m.l2[i].Equal(m.dst[i]) {
				t.Errorf("segment %d: segments not kept on their own layers", i)
			}
		}
	})

	t.Run("coin flip", func(t *testing.T) {
		t.Parallel()

		rng := seeded(9)
		m := newMaze(t, 2, rng)
		if err := m.mixOrKeep(0); err != nil {
			t.Fatal(err)
		}

		// Exactly one draw was spent.
		ref := seeded(9)
		mixedWant := coin(ref)
		if got, want := rng.Uint64(), ref.Uint64(); got != want {
			t.Error("mixOrKeep with normal == 2 did not draw exactly once")
		}
		if mixedWant != !m.l1[0].Equal(m.src[0]) {
			t.Errorf("coin said mix=%v but layer 1 disagrees", mixedWant)
		}
	})
}

func TestMaze_KeepOne(t *testing.T) {
	t.Parallel()

	m := newMaze(t, 0, seeded(1))
	if err := m.keepFirst(0); err != nil {
		t.Fatal(err)
	}
	if err := m.keepSecond(1); err != nil {
		t.Fatal(err)
	}

	if !m.l1[0].Equal(m.src[0]) || !m.l2[0].Equal(ops.Gain(m.dst[0], silenced)) {
		t.Error("keepFirst: want the first segment on layer 1 and a silenced second on layer 2")
	}
	if !m.l1[1].Equal(ops.Gain(m.src[1], silenced)) || !m.l2[1].Equal(m.dst[1]) {
		t.Error("keepSecond: want a silenced first segment on layer 1 and the second on layer 2")
	}
}

func TestMosaic_ReversesBeforeReverb(t *testing.T) {
	t.Parallel()

	in := audiotest.Noise(format, 1, 4)

	for seed := range uint64(4) {
		m, err := ops.Mosaic(in, seeded(seed), mosaicPattern, mosaicSegment, nil)
		if err != nil {
			t.Fatal(err)
		}
		reverb := fx.Reverb(mosaicReverbMs, mosaicReverbMix)

		reversedFirst, err := reverb(ops.Reverse(m))
		if err != nil {
			t.Fatal(err)
		}
		want, err := ops.Repeat(reversedFirst, loops)
		if err != nil {
			t.Fatal(err)
		}

		reverbFirst, err := reverb(m)
		if err != nil {
			t.Fatal(err)
		}
		wrong, err := ops.Repeat(ops.Reverse(reverbFirst), loops)
		if err != nil {
			t.Fatal(err)
		}

		got, err := Mosaic([]audio.Buffer{in}, seeded(seed))
		if err != nil {
			t.Fatalf("seed %d: Mosaic() unexpected error: %v", seed, err)
		}
		if !got.Equal(want) {
			t.Errorf("seed %d: output is not reverse, then reverb, then repeat", seed)
		}
		if got.Equal(wrong) {
			t.Errorf("seed %d: reverb then reverse gives the same output, the order is untested", seed)
		}
	}
}
