// SPDX-License-Identifier: MIT
// File: methods.go
// Role: read/write access with elision and pruning.
// Invariants:
//   - A stored value never equals Default().
//   - No node other than the root is ever empty.
//   - size == number of stored level-1 entries.

package sparse

// Len returns the number of stored (non-default) entries.
// Complexity: O(1).
func (m *Matrix[T, D, N]) Len() int {
	return m.size
}

// IsEmpty reports whether no entry is stored.
func (m *Matrix[T, D, N]) IsEmpty() bool {
	return m.size == 0
}

// At returns the value at the coordinate idx, or Default() if none is stored.
// At never allocates nor creates storage.
// Panics if len(idx) != Rank().
// Complexity: O(N) expected.
func (m *Matrix[T, D, N]) At(idx ...Index) T {
	m.checkArity(len(idx))
	if v, ok := m.lookup(idx); ok {
		return v
	}

	return m.Default()
}

// Contains reports whether a non-default value is stored at idx.
// Panics if len(idx) != Rank().
func (m *Matrix[T, D, N]) Contains(idx ...Index) bool {
	m.checkArity(len(idx))
	_, ok := m.lookup(idx)

	return ok
}

// Set writes v at the coordinate idx and returns m for chaining.
//
// Behavior:
//   - v == Default(): the entry is erased if present; emptied ancestors are
//     pruned up to (not including) the root. Absent entries are a no-op.
//   - otherwise: the entry is inserted or overwritten, creating missing
//     intermediate nodes.
//
// Len changes by +1 on a fresh insert and -1 on an erase only.
// Panics if len(idx) != Rank().
// Complexity: O(N) expected.
func (m *Matrix[T, D, N]) Set(v T, idx ...Index) *Matrix[T, D, N] {
	m.checkArity(len(idx))
	m.write(v, idx)

	return m
}

// Delete resets the coordinate idx to Default() and reports whether an
// entry was erased.
// Panics if len(idx) != Rank().
func (m *Matrix[T, D, N]) Delete(idx ...Index) bool {
	m.checkArity(len(idx))

	return m.erase(idx)
}

// Clear drops every entry. Options are preserved.
// Complexity: O(1); the old tree is left to the garbage collector.
func (m *Matrix[T, D, N]) Clear() {
	m.root, m.size = nil, 0
}

// checkArity panics unless n indices were supplied for a rank-N matrix.
func (m *Matrix[T, D, N]) checkArity(n int) {
	if n != m.Rank() {
		panic(panicArity)
	}
}

// write applies the elision rule for one full path.
func (m *Matrix[T, D, N]) write(v T, path []Index) {
	if v == m.Default() {
		m.erase(path)
		return
	}
	m.insert(v, path)
}

// lookup descends path without creating anything.
func (m *Matrix[T, D, N]) lookup(path []Index) (T, bool) {
	var zero T
	n := m.root
	if n == nil {
		return zero, false
	}
	last := len(path) - 1
	for _, k := range path[:last] {
		c, ok := n.child(k)
		if !ok {
			return zero, false
		}
		n = c
	}

	return n.value(path[last])
}

// insert stores a non-default v, autovivifying intermediate nodes.
func (m *Matrix[T, D, N]) insert(v T, path []Index) {
	opts := m.options()
	rank := len(path)
	if m.root == nil {
		m.root = newNode[T](rank, opts.capHint)
		opts.logger.Debug("sparse: node created", "level", rank, "root", true)
	}
	n := m.root
	for depth, k := range path[:rank-1] {
		c, ok := n.child(k)
		if !ok {
			level := rank - depth - 1
			c = newNode[T](level, opts.capHint)
			n.putChild(k, c)
			opts.logger.Debug("sparse: node created", "level", level, "index", k)
		}
		n = c
	}
	if n.putValue(path[rank-1], v) {
		m.size++
	}
}

// erase removes the entry at path, if any, and prunes emptied ancestors.
// The root is never pruned.
func (m *Matrix[T, D, N]) erase(path []Index) bool {
	if m.root == nil {
		return false
	}
	rank := len(path)
	stack := make([]*node[T], rank) // stack[d] is the node keyed by path[d]
	n := m.root
	for depth, k := range path[:rank-1] {
		stack[depth] = n
		c, ok := n.child(k)
		if !ok {
			return false
		}
		n = c
	}
	stack[rank-1] = n
	if !n.removeValue(path[rank-1]) {
		return false
	}
	m.size--

	logger := m.options().logger
	for depth := rank - 1; depth > 0 && stack[depth].empty(); depth-- {
		stack[depth-1].removeChild(path[depth-1])
		logger.Debug("sparse: prune", "level", rank-depth, "index", path[depth-1])
	}

	return true
}

// nodeCount returns the number of allocated storage nodes, root included.
func (m *Matrix[T, D, N]) nodeCount() int {
	if m.root == nil {
		return 0
	}

	return m.root.count()
}
