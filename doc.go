// Package ndsparse is an in-memory sparse N-dimensional matrix container
// for Go: a map from fixed-arity index tuples to values, where every
// unwritten coordinate reads as a statically known Default.
//
// What is inside:
//
//	dim/     — type-level ranks (D1, Next[R], D2..D8): N lives in the type
//	tuple/   — fixed-arity tuples: Gen, Append, Sub (prefix) over a rank
//	sparse/  — Matrix[T, D, N]: elision, pruning, O(1) Len, Clone/Move/Swap,
//	           ordered iteration of (i1, ..., iN, v) tuples
//	version/ — release accessors
//
// Quick example:
//
//	m := sparse.New[int, sparse.Zero[int], dim.D2]()
//	m.I(5).I(101).Set(100) // stored
//	m.I(5).I(101).Set(0)   // Default: erased, branch pruned
//
// Install:
//
//	go get github.com/katalvlaran/ndsparse
//
// Design choices:
//
//   - Default and rank are type parameters, so matrices that differ in
//     either are different types: comparing, copying or swapping them is a
//     compile error, not a run-time check.
//
//   - Reads never allocate. Writing the Default never leaves storage behind.
//
//   - Single-threaded by design: no locks, no goroutines.
package ndsparse
