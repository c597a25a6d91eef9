// SPDX-License-Identifier: EPL-2.0

package sampleblend

import (
	"context"

	"github.com/ik5/sampleblend/audio"
	"github.com/ik5/sampleblend/blend"
	"github.com/ik5/sampleblend/cache"
)

// Render blends inputs with a generator seeded by seed. With a non-nil store
// the result is looked up first and stored after rendering.
func Render(ctx context.Context, store cache.Store, inputs []audio.Buffer, seed uint64, blender string, opts blend.Options) (audio.Buffer, error) {
	render := func() (audio.Buffer, error) {
		return blend.Blend(inputs, NewRand(seed), blender, opts)
	}
	if store == nil {
		return render()
	}

	key := cache.NewKey(inputs, seed, blender, opts)
	return cache.Render(ctx, store, key, render)
}
