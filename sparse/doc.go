// SPDX-License-Identifier: MIT

// Package sparse provides Matrix, an in-memory sparse N-dimensional container.
//
// What & Why:
//
//	A Matrix[T, D, N] is a total function from N-tuples of non-negative
//	indices to T that equals D.Default() everywhere except a finite set of
//	explicitly stored coordinates. Only non-default entries are materialized:
//
//	  - Elision: writing the Default erases the entry; writing anything else
//	    inserts or overwrites it.
//	  - Pruning: when an erase empties a storage node, the node is removed
//	    from its parent, walking up until a non-empty ancestor (or the root).
//	  - Reads never allocate: a missing branch simply reads as Default.
//
//	The Default and the dimensionality N are type parameters, so matrices
//	with different Defaults or ranks are different types and cannot be
//	compared, copied or swapped with each other.
//
// Storage layout:
//
//	Level-k nodes (k > 1) map an index to a level-(k-1) node; level-1 nodes
//	map an index to a stored value. Every node keeps a roaring bitmap of its
//	occupied keys next to a swiss-table map, which gives O(1) expected
//	lookups and ascending-order iteration without sorting.
//
// Access:
//
//	m := sparse.New[int, sparse.Zero[int], dim.D2]()
//	m.I(5).I(101).Set(100)         // chained single-index access
//	m.Set(100, 5, 101)             // same, in one call
//	v := m.At(5, 101)              // 100
//	m.I(5).I(101).Set(231).Set(0)  // each Set re-applies elision
//
// Iteration yields Entry values, i.e. (i1, ..., iN, v) tuples built with the
// tuple package, in ascending index order at every level.
//
// Concurrency:
//
//	A Matrix is not safe for concurrent use. Mutating a Matrix while an
//	iteration over it is in progress is undefined.
//
// Complexity:
//
//	At/Set/Delete: O(N) expected. Len: O(1). Swap/Move: O(1).
//	Clone/Equal/iteration: O(stored entries + nodes).
package sparse
