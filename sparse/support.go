// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/katalvlaran/ndsparse/tuple"
)

// Support returns the set of indices used along axis by at least one
// stored entry. The returned bitmap is a fresh copy owned by the caller.
//
// Errors:
//   - ErrOutOfRange if axis is not in [0, Rank()).
//
// Complexity: O(nodes above axis) bitmap unions.
func (m *Matrix[T, D, N]) Support(axis int) (*roaring.Bitmap, error) {
	if axis < 0 || axis >= m.Rank() {
		return nil, fmt.Errorf("Matrix.Support(%d): %w", axis, ErrOutOfRange)
	}
	out := roaring.New()
	if m.root != nil {
		m.root.collect(axis, out)
	}

	return out, nil
}

// Bounds returns, per axis, one past the largest stored index: the
// smallest dense shape that holds every entry. All zeros when empty.
func (m *Matrix[T, D, N]) Bounds() tuple.Tuple[uint64, N] {
	rank := m.Rank()
	ext := make([]uint64, rank)
	for axis := 0; axis < rank; axis++ {
		s, _ := m.Support(axis) // axis is always in range here
		if !s.IsEmpty() {
			ext[axis] = uint64(s.Maximum()) + 1
		}
	}

	return tuple.Of[uint64, N](ext...)
}

// collect ORs into out the keys of every node at the given depth below n.
func (n *node[T]) collect(depth int, out *roaring.Bitmap) {
	if depth == 0 {
		out.Or(n.keys)
		return
	}
	n.children.Iter(func(_ Index, c *node[T]) bool {
		c.collect(depth-1, out)
		return false
	})
}
