// SPDX-License-Identifier: EPL-2.0

package cache

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ik5/sampleblend/audio"
)

// Store holds rendered buffers by Key.
type Store interface {
	// Get returns the buffer stored under key, or ErrNotFound.
	Get(ctx context.Context, key Key) (audio.Buffer, error)

	// Put stores b under key, replacing any previous buffer.
	Put(ctx context.Context, key Key, b audio.Buffer) error

	Close() error
}

// Render returns the buffer stored under key, or runs render and stores its
// result. A failed render stores nothing.
func Render(ctx context.Context, s Store, key Key, render func() (audio.Buffer, error)) (audio.Buffer, error) {
	b, err := s.Get(ctx, key)
	if err == nil {
		slog.Debug("cache: hit", "key", key)
		return b, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return audio.Buffer{}, err
	}

	b, err = render()
	if err != nil {
		return audio.Buffer{}, err
	}
	if err := s.Put(ctx, key, b); err != nil {
		return audio.Buffer{}, err
	}
	slog.Debug("cache: stored", "key", key, "samples", b.Len())
	return b, nil
}
