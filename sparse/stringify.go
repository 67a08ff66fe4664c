// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"
	"strings"
)

// String implements fmt.Stringer for easy debugging.
// Output is deterministic: a header line, then one "(i1, ..., iN) = v"
// line per stored entry in iteration order.
// Complexity: O(Len() * N).
func (m *Matrix[T, D, N]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "sparse.Matrix[rank=%d len=%d default=%v]\n", m.Rank(), m.size, m.Default())
	for key, v := range m.Items() {
		fmt.Fprintf(&sb, "%v = %v\n", key, v)
	}

	return sb.String()
}
