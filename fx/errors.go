// SPDX-License-Identifier: EPL-2.0

package fx

import "errors"

// ErrUnknownEffect is returned for an effect name that is not registered.
var ErrUnknownEffect = errors.New("unknown effect")
