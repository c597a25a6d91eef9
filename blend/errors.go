// SPDX-License-Identifier: EPL-2.0

package blend

import "errors"

var (
	ErrUnknownBlender = errors.New("unknown blender")

	// ErrNotEnoughInputs is returned when a blender is given fewer inputs
	// than it combines.
	ErrNotEnoughInputs = errors.New("not enough inputs for blender")
)
