// File: methods_clone.go
// Role: copy, move and swap of whole matrices.
// Ownership:
//   - A Matrix owns its node tree exclusively; no two matrices ever share
//     mutable storage.
//   - Clone deep-copies, Move/MoveFrom transfer and reset the source,
//     Swap exchanges trees in O(1).
// Type safety:
//   - Every method takes the same Matrix[T, D, N] instantiation, so mixing
//     Defaults or ranks is rejected by the compiler.

package sparse

// Clone returns a deep copy of m with the same options.
// Values implementing Cloner[T] are copied via Clone unless value cloning
// is disabled.
// Complexity: O(nodes + entries).
func (m *Matrix[T, D, N]) Clone() *Matrix[T, D, N] {
	opts := m.options()
	out := &Matrix[T, D, N]{size: m.size, opts: opts}
	if m.root != nil {
		out.root = m.root.clone(valueCloner[T](opts.valueCloning))
	}

	return out
}

// Move returns a new Matrix that takes over m's entries and options.
// m is left empty (Len()==0, every coordinate reads Default()).
// Complexity: O(1).
func (m *Matrix[T, D, N]) Move() *Matrix[T, D, N] {
	out := &Matrix[T, D, N]{root: m.root, size: m.size, opts: m.options()}
	m.root, m.size = nil, 0

	return out
}

// MoveFrom replaces m's entries with src's and leaves src empty.
// m keeps its own options. Moving a matrix into itself is a no-op.
// Complexity: O(1).
func (m *Matrix[T, D, N]) MoveFrom(src *Matrix[T, D, N]) {
	if m == src {
		return
	}
	m.root, m.size = src.root, src.size
	src.root, src.size = nil, 0
}

// Swap exchanges the entries of m and o. Options stay with their matrix.
// Complexity: O(1), independent of stored size.
func (m *Matrix[T, D, N]) Swap(o *Matrix[T, D, N]) {
	m.root, o.root = o.root, m.root
	m.size, o.size = o.size, m.size
}

// valueCloner returns the per-value copy function used by Clone.
func valueCloner[T any](enabled bool) func(T) T {
	return func(v T) T {
		if !enabled {
			return v
		}
		// you can't assert directly on a type parameter
		if c, ok := any(v).(Cloner[T]); ok {
			return c.Clone()
		}

		return v
	}
}
