// SPDX-License-Identifier: MIT

package sparse

import (
	"github.com/katalvlaran/ndsparse/dim"
	"github.com/katalvlaran/ndsparse/tuple"
)

// Cursor is the result of chained single-index access, m.I(a).I(b)...
//
// While fewer than N indices are bound a Cursor only accumulates the path;
// it never touches storage. Once all N are bound it is a slot handle:
// Get reads, Set writes with the elision rule applied on every call, and
// Set returns the Cursor so assignments chain left to right:
//
//	m.I(3).I(7).Set(231).Set(0).Set(-21) // three durable writes, ends at -21
//
// A Cursor is a small value; binding another index copies the path, so
// sibling cursors derived from one prefix never interfere.
type Cursor[T comparable, D Defaulter[T], N dim.Rank] struct {
	m    *Matrix[T, D, N]
	path []Index
}

// I starts a chained access at index i of the first axis.
func (m *Matrix[T, D, N]) I(i Index) Cursor[T, D, N] {
	return Cursor[T, D, N]{m: m, path: []Index{i}}
}

// Slot returns a fully bound Cursor for the coordinate idx.
// Panics if len(idx) != Rank().
func (m *Matrix[T, D, N]) Slot(idx ...Index) Cursor[T, D, N] {
	m.checkArity(len(idx))
	path := make([]Index, len(idx))
	copy(path, idx)

	return Cursor[T, D, N]{m: m, path: path}
}

// I binds the next index. Panics if all N indices are already bound.
func (c Cursor[T, D, N]) I(i Index) Cursor[T, D, N] {
	c.mustMatrix()
	if len(c.path) >= c.m.Rank() {
		panic(panicTooManyIndices)
	}
	path := make([]Index, len(c.path)+1)
	copy(path, c.path)
	path[len(c.path)] = i

	return Cursor[T, D, N]{m: c.m, path: path}
}

// Bound returns how many indices are bound so far.
func (c Cursor[T, D, N]) Bound() int {
	return len(c.path)
}

// Complete reports whether all N indices are bound.
func (c Cursor[T, D, N]) Complete() bool {
	return c.m != nil && len(c.path) == c.m.Rank()
}

// Get returns the value at the bound coordinate, Default() if unstored.
// Panics unless Complete.
func (c Cursor[T, D, N]) Get() T {
	c.mustComplete()
	if v, ok := c.m.lookup(c.path); ok {
		return v
	}

	return c.m.Default()
}

// Set writes v at the bound coordinate, applying the elision rule
// immediately, and returns c for further assignment.
// Panics unless Complete.
func (c Cursor[T, D, N]) Set(v T) Cursor[T, D, N] {
	c.mustComplete()
	c.m.write(v, c.path)

	return c
}

// Delete resets the bound coordinate to Default() and reports whether an
// entry was erased. Panics unless Complete.
func (c Cursor[T, D, N]) Delete() bool {
	c.mustComplete()

	return c.m.erase(c.path)
}

// Key returns the bound coordinate as a tuple. Panics unless Complete.
func (c Cursor[T, D, N]) Key() Key[N] {
	c.mustComplete()

	return tuple.Of[Index, N](c.path...)
}

func (c Cursor[T, D, N]) mustMatrix() {
	if c.m == nil {
		panic(panicNilMatrix)
	}
}

func (c Cursor[T, D, N]) mustComplete() {
	c.mustMatrix()
	if len(c.path) != c.m.Rank() {
		panic(panicIncomplete)
	}
}
