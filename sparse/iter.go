// SPDX-License-Identifier: MIT

package sparse

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/katalvlaran/ndsparse/dim"
	"github.com/katalvlaran/ndsparse/tuple"
)

// Iterator walks the stored entries of a Matrix in ascending index order
// at every level. It is positioned on the first entry when created, so a
// begin/end style loop reads:
//
//	for it := m.Iter(); !it.Done(); it.Next() {
//		e := it.Entry() // (i1, ..., iN, v)
//	}
//
// An Iterator is forward-only; obtain a fresh one to restart. Mutating the
// matrix during iteration is undefined.
type Iterator[T comparable, D Defaulter[T], N dim.Rank] struct {
	stack []frame[T] // stack[d] iterates the keys of the node at depth d
	path  []Index    // current index path, len N
	cur   Entry[T, N]
	done  bool
}

type frame[T comparable] struct {
	n  *node[T]
	it roaring.IntPeekable
}

// Iter returns an Iterator positioned on the first entry.
// Iter().Done() is true iff Len() == 0.
// Complexity: O(N) to reach the first entry.
func (m *Matrix[T, D, N]) Iter() *Iterator[T, D, N] {
	it := &Iterator[T, D, N]{
		stack: make([]frame[T], 0, m.Rank()),
		path:  make([]Index, m.Rank()),
	}
	if m.root != nil && !m.root.empty() {
		it.stack = append(it.stack, frame[T]{n: m.root, it: m.root.keys.Iterator()})
	}
	it.advance()

	return it
}

// Done reports whether the iterator is past the last entry.
func (it *Iterator[T, D, N]) Done() bool {
	return it.done
}

// Entry returns the current (i1, ..., iN, v) tuple.
// After Done it returns the zero Entry.
func (it *Iterator[T, D, N]) Entry() Entry[T, N] {
	return it.cur
}

// Next moves to the following entry and reports whether one exists.
func (it *Iterator[T, D, N]) Next() bool {
	if it.done {
		return false
	}
	it.advance()

	return !it.done
}

// advance descends depth-first to the next level-1 entry.
func (it *Iterator[T, D, N]) advance() {
	rank := len(it.path)
	for len(it.stack) > 0 {
		depth := len(it.stack) - 1
		top := it.stack[depth]
		if !top.it.HasNext() {
			it.stack = it.stack[:depth]
			continue
		}
		k := top.it.Next()
		it.path[depth] = k
		if depth == rank-1 {
			v, _ := top.n.value(k)
			it.cur = tuple.Append(tuple.Of[Index, N](it.path...), v)
			return
		}
		c, _ := top.n.child(k)
		it.stack = append(it.stack, frame[T]{n: c, it: c.keys.Iterator()})
	}
	it.cur = Entry[T, N]{}
	it.done = true
}

// All returns a range-over-func sequence of every stored entry.
//
//	for e := range m.All() {
//		fmt.Println(e.Head(), e.Last())
//	}
func (m *Matrix[T, D, N]) All() iter.Seq[Entry[T, N]] {
	return func(yield func(Entry[T, N]) bool) {
		for it := m.Iter(); !it.Done(); it.Next() {
			if !yield(it.Entry()) {
				return
			}
		}
	}
}

// Items returns a sequence of (coordinate, value) pairs.
func (m *Matrix[T, D, N]) Items() iter.Seq2[Key[N], T] {
	return func(yield func(Key[N], T) bool) {
		for it := m.Iter(); !it.Done(); it.Next() {
			e := it.Entry()
			if !yield(e.Head(), e.Last()) {
				return
			}
		}
	}
}

// Keys returns a sequence of the coordinates of every stored entry.
func (m *Matrix[T, D, N]) Keys() iter.Seq[Key[N]] {
	return func(yield func(Key[N]) bool) {
		for it := m.Iter(); !it.Done(); it.Next() {
			if !yield(it.Entry().Head()) {
				return
			}
		}
	}
}

// Entries collects all entries into a slice, in iteration order.
// Complexity: O(Len() * N).
func (m *Matrix[T, D, N]) Entries() []Entry[T, N] {
	out := make([]Entry[T, N], 0, m.size)
	for e := range m.All() {
		out = append(out, e)
	}

	return out
}
