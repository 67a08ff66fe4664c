// SPDX-License-Identifier: MIT

package dim

// Rank is implemented by the zero-size rank markers of this package.
// Rank must be callable on the zero value and must return a value >= 1.
type Rank interface {
	Rank() int
}

// D1 is the base rank: a single dimension.
type D1 struct{}

// Rank returns 1.
func (D1) Rank() int { return 1 }

// Next is the successor rank of R.
// Complexity: O(depth) per call; the chain is a handful of inlined calls.
type Next[R Rank] struct{}

// Rank returns R.Rank() + 1.
func (Next[R]) Rank() int {
	var r R

	return r.Rank() + 1
}

// Common ranks.
type (
	D2 = Next[D1]
	D3 = Next[D2]
	D4 = Next[D3]
	D5 = Next[D4]
	D6 = Next[D5]
	D7 = Next[D6]
	D8 = Next[D7]
)

// Of returns the dimensionality encoded by R.
func Of[R Rank]() int {
	var r R

	return r.Rank()
}
