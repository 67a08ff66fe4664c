// SPDX-License-Identifier: MIT

package tuple

import "errors"

// ErrRankExceeded is returned by Sub when the requested prefix is longer
// than the source tuple.
var ErrRankExceeded = errors.New("tuple: prefix longer than tuple")

// Internal panic messages (programmer errors only).
const (
	panicArity      = "tuple: Of: value count does not match rank"
	panicFieldRange = "tuple: field index out of range"
)
