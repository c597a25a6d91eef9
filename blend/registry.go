// SPDX-License-Identifier: EPL-2.0

package blend

import (
	"fmt"
	"maps"
	"math/rand/v2"
	"slices"
	"sync"

	"github.com/ik5/sampleblend/audio"
)

// Blender composes inputs into one buffer, drawing every decision from rng.
// Inputs share one Format and there are at least as many as the blender was
// registered for.
type Blender func(inputs []audio.Buffer, rng *rand.Rand) (audio.Buffer, error)

type entry struct {
	fn    Blender
	arity int
}

// Registry maps blender names to Blenders. It is meant to be filled once
// and then only read.
type Registry struct {
	blenders map[string]entry

	mtx *sync.RWMutex
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		blenders: make(map[string]entry),
		mtx:      &sync.RWMutex{},
	}
}

// Register adds fn under name. arity is the number of inputs fn reads.
func (r *Registry) Register(name string, arity int, fn Blender) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.blenders[name] = entry{fn: fn, arity: max(arity, 1)}
}

// Get returns the blender registered under name and its arity.
func (r *Registry) Get(name string) (Blender, int, bool) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	e, ok := r.blenders[name]
	return e.fn, e.arity, ok
}

// Names returns the registered names in lexicographic order. Random
// selection indexes into this list, which keeps it reproducible.
func (r *Registry) Names() []string {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	return slices.Sorted(maps.Keys(r.blenders))
}

// MaxArity is the largest input count any registered blender reads.
func (r *Registry) MaxArity() int {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	n := 0
	for _, e := range r.blenders {
		n = max(n, e.arity)
	}
	return n
}

// NewDefaultRegistry returns a registry holding every built-in blender.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("delayer", 2, Delayer)
	r.Register("m4ze", 2, M4ze)
	r.Register("mosaic", 1, Mosaic)
	r.Register("outbreaker", 3, Outbreaker)
	r.Register("samplicat", 1, Samplicat)
	r.Register("xfade", 2, Xfade)
	return r
}

var defaultRegistry = NewDefaultRegistry()

// Default returns the shared registry of built-in blenders.
func Default() *Registry {
	return defaultRegistry
}

// checkInputs enforces arity and a single shared Format.
func checkInputs(name string, inputs []audio.Buffer, arity int) error {
	if len(inputs) == 0 {
		return fmt.Errorf("%s: %w", name, audio.ErrEmptyInput)
	}
	if len(inputs) < arity {
		return fmt.Errorf("%w: %s needs %d, got %d", ErrNotEnoughInputs, name, arity, len(inputs))
	}
	for i, in := range inputs[1:arity] {
		if err := audio.CheckFormat(inputs[0], in); err != nil {
			return fmt.Errorf("%s input %d: %w", name, i+1, err)
		}
	}
	return nil
}
