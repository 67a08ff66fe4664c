// SPDX-License-Identifier: MIT

// Package sparse: domain types.
// This file contains ONLY the public type surface (Index, Defaulter, Zero,
// Cloner, Entry, Key, Matrix) and the constructor. Storage nodes live in
// node.go, errors and options in dedicated files.
package sparse

import (
	"github.com/katalvlaran/ndsparse/dim"
	"github.com/katalvlaran/ndsparse/tuple"
)

// Index is a coordinate along one axis. Unsigned, so negative coordinates
// are unrepresentable and every read/write is total.
type Index = uint32

// Defaulter supplies the value every unstored coordinate reads as.
// Implementations are zero-size types; Default is called on the zero value.
//
//	type One struct{}
//	func (One) Default() int { return 1 }
type Defaulter[T any] interface {
	Default() T
}

// Zero is the Defaulter whose Default is the zero value of T.
type Zero[T any] struct{}

// Default returns the zero T.
func (Zero[T]) Default() T {
	var zero T

	return zero
}

// Cloner lets a value type control how Clone deep-copies it.
// If T implements Cloner[T], Clone stores v.Clone() instead of v
// (unless disabled with WithValueCloning(false)).
type Cloner[T any] interface {
	Clone() T
}

// Key is the index path identifying one stored entry: N indices.
type Key[N dim.Rank] = tuple.Tuple[Index, N]

// Entry is the per-element iteration value: (i1, ..., iN, v).
// It is Key[N] with the value appended as a trailing slot.
type Entry[T any, N dim.Rank] = tuple.Appended[Index, T, N]

// Matrix is a sparse N-dimensional container of T whose unstored
// coordinates read as D.Default().
//
// The zero value is an empty, ready-to-use Matrix with default options.
// A Matrix must not be copied by value after first use; use Clone.
type Matrix[T comparable, D Defaulter[T], N dim.Rank] struct {
	root *node[T] // nil until the first insert; level dim.Of[N]()
	size int      // number of stored level-1 entries
	opts Options
}

// New returns an empty Matrix configured by opts.
// Complexity: O(1); no storage is allocated until the first insert.
func New[T comparable, D Defaulter[T], N dim.Rank](opts ...Option) *Matrix[T, D, N] {
	return &Matrix[T, D, N]{opts: gatherOptions(opts...)}
}

// Rank returns the dimensionality N.
func (m *Matrix[T, D, N]) Rank() int {
	return dim.Of[N]()
}

// Default returns the value every unstored coordinate reads as.
func (m *Matrix[T, D, N]) Default() T {
	var d D

	return d.Default()
}

// Options returns the effective configuration.
func (m *Matrix[T, D, N]) Options() Options {
	return m.options()
}

// options resolves defaults for a zero-value Matrix on first use.
func (m *Matrix[T, D, N]) options() Options {
	if !m.opts.resolved {
		m.opts = gatherOptions()
	}

	return m.opts
}
