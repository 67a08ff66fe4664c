// SPDX-License-Identifier: MIT

package sparse

import "github.com/katalvlaran/ndsparse/dim"

// Test bridge (white-box): exposes structural counters to sparse_test only.
// Lives in a _test.go file, so it never widens the production API.

// NodeCount returns the number of allocated storage nodes, root included.
func NodeCount[T comparable, D Defaulter[T], N dim.Rank](m *Matrix[T, D, N]) int {
	return m.nodeCount()
}
