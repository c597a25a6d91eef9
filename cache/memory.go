// SPDX-License-Identifier: EPL-2.0

package cache

import (
	"context"
	"sync"

	"github.com/ik5/sampleblend/audio"
)

// Memory is a Store kept in a map. Buffers are cloned on the way in and out
// so callers can't mutate stored samples.
type Memory struct {
	mu      sync.RWMutex
	buffers map[Key]audio.Buffer
	closed  bool
}

var _ Store = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{buffers: make(map[Key]audio.Buffer)}
}

func (m *Memory) Get(_ context.Context, key Key) (audio.Buffer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return audio.Buffer{}, ErrClosed
	}
	b, ok := m.buffers[key]
	if !ok {
		return audio.Buffer{}, ErrNotFound
	}
	return b.Clone(), nil
}

func (m *Memory) Put(_ context.Context, key Key, b audio.Buffer) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}
	m.buffers[key] = b.Clone()
	return nil
}

// Len reports how many buffers are stored.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.buffers)
}

func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	m.buffers = nil
	return nil
}
