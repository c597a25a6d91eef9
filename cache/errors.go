// SPDX-License-Identifier: EPL-2.0

package cache

import "errors"

var (
	// ErrNotFound is returned by Get when the key has no stored buffer.
	ErrNotFound = errors.New("cache: not found")

	ErrClosed = errors.New("cache: store is closed")
)
