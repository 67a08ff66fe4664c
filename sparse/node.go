// SPDX-License-Identifier: MIT

package sparse

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/dolthub/swiss"
)

// node is one level of the storage tree.
// Exactly one of children (level > 1) or values (level 1) is non-nil.
// keys mirrors the key set of whichever map is in use; it drives
// ascending-order iteration and emptiness checks.
//
// Invariant: apart from the root, a node is never empty. A level-1 node
// never holds the matrix Default.
type node[T comparable] struct {
	keys     *roaring.Bitmap
	children *swiss.Map[Index, *node[T]]
	values   *swiss.Map[Index, T]
}

// newNode allocates an empty node for the given level.
func newNode[T comparable](level, capHint int) *node[T] {
	n := &node[T]{keys: roaring.New()}
	if level > 1 {
		n.children = swiss.NewMap[Index, *node[T]](uint32(capHint))
	} else {
		n.values = swiss.NewMap[Index, T](uint32(capHint))
	}

	return n
}

func (n *node[T]) empty() bool { return n.keys.IsEmpty() }

func (n *node[T]) child(k Index) (*node[T], bool) {
	return n.children.Get(k)
}

func (n *node[T]) value(k Index) (T, bool) {
	return n.values.Get(k)
}

func (n *node[T]) putChild(k Index, c *node[T]) {
	n.children.Put(k, c)
	n.keys.Add(k)
}

// putValue stores v under k and reports whether k was previously absent.
func (n *node[T]) putValue(k Index, v T) (fresh bool) {
	_, exists := n.values.Get(k)
	n.values.Put(k, v)
	if !exists {
		n.keys.Add(k)
	}

	return !exists
}

func (n *node[T]) removeChild(k Index) {
	n.children.Delete(k)
	n.keys.Remove(k)
}

// removeValue erases k and reports whether it was present.
func (n *node[T]) removeValue(k Index) bool {
	if _, ok := n.values.Get(k); !ok {
		return false
	}
	n.values.Delete(k)
	n.keys.Remove(k)

	return true
}

// clone deep-copies the subtree rooted at n. cloneVal is applied to every
// stored value.
// Complexity: O(nodes + entries) in the subtree.
func (n *node[T]) clone(cloneVal func(T) T) *node[T] {
	out := &node[T]{keys: n.keys.Clone()}
	if n.children != nil {
		out.children = swiss.NewMap[Index, *node[T]](uint32(n.children.Count()))
		n.children.Iter(func(k Index, c *node[T]) bool {
			out.children.Put(k, c.clone(cloneVal))
			return false
		})

		return out
	}
	out.values = swiss.NewMap[Index, T](uint32(n.values.Count()))
	n.values.Iter(func(k Index, v T) bool {
		out.values.Put(k, cloneVal(v))
		return false
	})

	return out
}

// equal reports whether both subtrees hold the same key paths and values.
func (n *node[T]) equal(o *node[T]) bool {
	if n == o {
		return true
	}
	if !n.keys.Equals(o.keys) {
		return false
	}
	it := n.keys.Iterator()
	for it.HasNext() {
		k := it.Next()
		if n.children != nil {
			a, _ := n.children.Get(k)
			b, ok := o.children.Get(k)
			if !ok || !a.equal(b) {
				return false
			}
			continue
		}
		a, _ := n.values.Get(k)
		b, ok := o.values.Get(k)
		if !ok || a != b {
			return false
		}
	}

	return true
}

// count returns the number of nodes in the subtree, n included.
func (n *node[T]) count() int {
	total := 1
	if n.children != nil {
		n.children.Iter(func(_ Index, c *node[T]) bool {
			total += c.count()
			return false
		})
	}

	return total
}
