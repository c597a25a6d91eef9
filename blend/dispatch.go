// SPDX-License-Identifier: EPL-2.0

package blend

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/ik5/sampleblend/audio"
	"github.com/ik5/sampleblend/fx"
	"github.com/ik5/sampleblend/ops"
)

// Random is the blender name that picks a registered blender at random.
const Random = "rand"

// Options tune what happens after the blender ran.
type Options struct {
	// PostFX names an effect to apply to the composition, or fx.Random.
	PostFX string `yaml:"post_fx" json:"post_fx,omitempty" msgpack:"post_fx"`

	// FXChance is the probability of a random effect when PostFX is empty.
	FXChance float64 `yaml:"fx_chance" json:"fx_chance,omitempty" msgpack:"fx_chance"`
}

// Resolve turns name into a registered blender name, drawing one IntN
// from rng for Random.
func (r *Registry) Resolve(rng *rand.Rand, name string) (string, error) {
	if name != Random {
		if _, _, ok := r.Get(name); !ok {
			return "", fmt.Errorf("%w: %q", ErrUnknownBlender, name)
		}
		return name, nil
	}

	names := r.Names()
	if len(names) == 0 {
		return "", fmt.Errorf("%w: registry is empty", ErrUnknownBlender)
	}
	resolved := names[rng.IntN(len(names))]
	slog.Debug("blend: resolved random blender", "name", resolved)
	return resolved, nil
}

// Blend runs the blender called name (or a random one) over inputs, applies
// the post effect chosen by opts and peak normalizes the result.
func (r *Registry) Blend(inputs []audio.Buffer, rng *rand.Rand, name string, opts Options) (audio.Buffer, error) {
	if len(inputs) == 0 {
		return audio.Buffer{}, fmt.Errorf("blend: %w", audio.ErrEmptyInput)
	}

	resolved, err := r.Resolve(rng, name)
	if err != nil {
		return audio.Buffer{}, err
	}
	fn, arity, _ := r.Get(resolved)

	if err := checkInputs(resolved, inputs, arity); err != nil {
		return audio.Buffer{}, err
	}

	out, err := fn(inputs[:arity], rng)
	if err != nil {
		return audio.Buffer{}, fmt.Errorf("%s: %w", resolved, err)
	}

	switch {
	case opts.PostFX != "":
		out, err = fx.Apply(out, rng, opts.PostFX)
	case opts.FXChance > 0 && rng.Float64() < opts.FXChance:
		slog.Debug("blend: applying random effect", "chance", opts.FXChance)
		out, err = fx.Apply(out, rng, fx.Random)
	}
	if err != nil {
		return audio.Buffer{}, fmt.Errorf("%s post fx: %w", resolved, err)
	}

	return ops.MaxGain(out), nil
}

// Blend dispatches through the default registry.
func Blend(inputs []audio.Buffer, rng *rand.Rand, name string, opts Options) (audio.Buffer, error) {
	return defaultRegistry.Blend(inputs, rng, name, opts)
}
