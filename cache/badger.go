// SPDX-License-Identifier: EPL-2.0

package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/ik5/sampleblend/audio"
)

// keyPrefix namespaces render entries inside the database.
var keyPrefix = []byte("render:")

// Badger is a Store backed by BadgerDB.
type Badger struct {
	db *badger.DB
}

var _ Store = (*Badger)(nil)

// BadgerOptions configures the BadgerDB store.
type BadgerOptions struct {
	// Dir holds the data files. Required unless InMemory is set.
	Dir string

	// InMemory keeps everything in memory, for tests.
	InMemory bool
}

// OpenBadger opens (or creates) the database described by opts.
func OpenBadger(opts BadgerOptions) (*Badger, error) {
	if !opts.InMemory && opts.Dir == "" {
		return nil, errors.New("cache: BadgerOptions.Dir is required for on-disk mode")
	}

	dbOpts := badger.DefaultOptions(opts.Dir).WithLogger(slogLogger{})
	if opts.InMemory {
		dbOpts = dbOpts.WithDir("").WithValueDir("").WithInMemory(true)
	}

	db, err := badger.Open(dbOpts)
	if err != nil {
		return nil, fmt.Errorf("cache: open %q: %w", opts.Dir, err)
	}
	return &Badger{db: db}, nil
}

func dbKey(key Key) []byte {
	return append(append([]byte{}, keyPrefix...), key[:]...)
}

func (b *Badger) Get(_ context.Context, key Key) (audio.Buffer, error) {
	var data []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(dbKey(key))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	switch {
	case errors.Is(err, badger.ErrKeyNotFound):
		return audio.Buffer{}, ErrNotFound
	case errors.Is(err, badger.ErrDBClosed):
		return audio.Buffer{}, ErrClosed
	case err != nil:
		return audio.Buffer{}, fmt.Errorf("cache: get %s: %w", key, err)
	}
	return decode(data)
}

func (b *Badger) Put(_ context.Context, key Key, buf audio.Buffer) error {
	data, err := encode(buf)
	if err != nil {
		return err
	}
	err = b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(dbKey(key), data)
	})
	if errors.Is(err, badger.ErrDBClosed) {
		return ErrClosed
	}
	if err != nil {
		return fmt.Errorf("cache: put %s: %w", key, err)
	}
	return nil
}

func (b *Badger) Close() error {
	return b.db.Close()
}

// slogLogger routes badger's log output through slog. Info and debug chatter
// is dropped to debug level.
type slogLogger struct{}

func (slogLogger) Errorf(f string, v ...any) {
	slog.Error(fmt.Sprintf("cache: badger: "+f, v...))
}

func (slogLogger) Warningf(f string, v ...any) {
	slog.Warn(fmt.Sprintf("cache: badger: "+f, v...))
}

func (slogLogger) Infof(f string, v ...any) {
	slog.Debug(fmt.Sprintf("cache: badger: "+f, v...))
}

func (slogLogger) Debugf(string, ...any) {}
