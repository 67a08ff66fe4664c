// SPDX-License-Identifier: MIT

package sparse

// Equal reports whether m and o store exactly the same coordinate/value
// associations. Values are compared with ==, the same comparison the
// write path uses against Default(), so any Equal methods on T are not
// consulted. Because both sides elide Default identically, this is
// equivalent to equality of the functions they represent.
// A nil *Matrix is treated as empty.
// Complexity: O(nodes + entries) in the worst case; O(1) if Len differs.
func (m *Matrix[T, D, N]) Equal(o *Matrix[T, D, N]) bool {
	if m == o {
		return true
	}
	if m == nil || o == nil {
		return (m == nil || m.size == 0) && (o == nil || o.size == 0)
	}
	if m.size != o.size {
		return false
	}
	if m.size == 0 {
		return true
	}

	return m.root.equal(o.root)
}
