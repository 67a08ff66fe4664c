// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// Core reads and writes are total and never fail; sentinels below are
// returned only by the projection and dense-bridge helpers. Tests check
// them via errors.Is. Panics are reserved for programmer errors (wrong
// number of indices), see the panic* constants.

package sparse

import "errors"

var (
	// ErrBadShape is returned when a requested dense shape is invalid
	// (rows<=0 or cols<=0) or when dense input is empty or ragged.
	ErrBadShape = errors.New("sparse: invalid shape")

	// ErrOutOfRange indicates that a stored coordinate or an axis lies
	// outside the requested bounds.
	ErrOutOfRange = errors.New("sparse: index out of range")
)

// Internal panic messages (no magic strings).
const (
	panicArity          = "sparse: index count does not match matrix rank"
	panicTooManyIndices = "sparse: cursor already holds a full index path"
	panicIncomplete     = "sparse: cursor used before all indices are bound"
	panicNilMatrix      = "sparse: cursor is not bound to a matrix"
)
