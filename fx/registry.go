// SPDX-License-Identifier: EPL-2.0

package fx

import (
	"fmt"
	"log/slog"
	"maps"
	"math/rand/v2"
	"slices"

	"github.com/ik5/sampleblend/audio"
)

// Random is the name that makes Apply choose an effect from RandomPool.
const Random = "rand"

// Constructor builds an effect with parameters drawn from rng.
type Constructor func(rng *rand.Rand) Effect

// between draws uniformly from [lo, hi].
func between(rng *rand.Rand, lo, hi float64) float64 {
	return lo + float64(rng.Float64()*(hi-lo))
}

var constructors = map[string]Constructor{
	"highpass": func(rng *rand.Rand) Effect {
		return Highpass(between(rng, 4000, 5000))
	},
	"lowpass": func(rng *rand.Rand) Effect {
		return Lowpass(between(rng, 300, 999))
	},
	"bitcrush": func(rng *rand.Rand) Effect {
		return Bitcrush(between(rng, 1, 45))
	},
	"flanger": func(rng *rand.Rand) Effect {
		delay := between(rng, 0.1, 0.6)
		depth := between(rng, 0.1, 9.99)
		rate := between(rng, 6.666, 666)
		return Flanger(delay, depth, rate, 0)
	},
	"overdrive": func(rng *rand.Rand) Effect {
		gain := between(rng, 6, 18)
		out := between(rng, -6, 0)
		return Overdrive(gain, out)
	},
	"reverb": func(rng *rand.Rand) Effect {
		delay := 50 + rng.IntN(201)
		decay := between(rng, 0.2, 0.6)
		return Reverb(delay, decay)
	},
	"reverb-reverse": func(rng *rand.Rand) Effect {
		delay := 50 + rng.IntN(201)
		decay := between(rng, 0.2, 0.6)
		return ReverbReverse(delay, decay)
	},
}

// RandomPool lists the effects Random chooses from, in draw order.
var RandomPool = []string{"bitcrush", "flanger"}

// Names returns the registered effect names in sorted order.
func Names() []string {
	return slices.Sorted(maps.Keys(constructors))
}

// New resolves name (or Random) and builds the effect. The resolved name is
// returned alongside it.
func New(rng *rand.Rand, name string) (Effect, string, error) {
	if name == Random {
		name = RandomPool[rng.IntN(len(RandomPool))]
		slog.Debug("fx: resolved random effect", "name", name)
	}

	ctor, ok := constructors[name]
	if !ok {
		return nil, "", fmt.Errorf("%w: %q", ErrUnknownEffect, name)
	}
	return ctor(rng), name, nil
}

// Apply builds the named effect from rng and runs it on b.
func Apply(b audio.Buffer, rng *rand.Rand, name string) (audio.Buffer, error) {
	effect, resolved, err := New(rng, name)
	if err != nil {
		return audio.Buffer{}, err
	}

	out, err := effect(b)
	if err != nil {
		return audio.Buffer{}, fmt.Errorf("%s: %w", resolved, err)
	}
	return out, nil
}
