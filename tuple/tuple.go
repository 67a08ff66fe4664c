// SPDX-License-Identifier: MIT

package tuple

import (
	"fmt"

	"github.com/katalvlaran/ndsparse/dim"
)

// Gen returns a tuple of N slots of T, every slot holding the zero T.
// Complexity: O(N).
func Gen[T any, N dim.Rank]() Tuple[T, N] {
	return Tuple[T, N]{elems: make([]T, dim.Of[N]())}
}

// Of returns a tuple holding vals in order.
// The values are copied. It panics if len(vals) != N.
// Complexity: O(N).
func Of[T any, N dim.Rank](vals ...T) Tuple[T, N] {
	if len(vals) != dim.Of[N]() {
		panic(panicArity)
	}
	elems := make([]T, len(vals))
	copy(elems, vals)

	return Tuple[T, N]{elems: elems}
}

// Append returns t with u attached as a final, differently typed slot.
// The result has N+1 slots; t itself is shared, not copied, since Tuple
// is immutable.
// Complexity: O(1).
func Append[T any, U any, N dim.Rank](t Tuple[T, N], u U) Appended[T, U, N] {
	return Appended[T, U, N]{head: t, last: u}
}

// Sub returns the first K slots of t, preserving their order.
// The result has exactly the type Gen[T, K] produces.
//
// Errors:
//   - ErrRankExceeded if K > N.
//
// Complexity: O(K).
func Sub[K dim.Rank, T any, N dim.Rank](t Tuple[T, N]) (Tuple[T, K], error) {
	k, n := dim.Of[K](), dim.Of[N]()
	if k > n {
		return Tuple[T, K]{}, fmt.Errorf("tuple.Sub(%d of %d): %w", k, n, ErrRankExceeded)
	}
	elems := make([]T, k)
	copy(elems, t.elems) // a zero-value t leaves elems zeroed

	return Tuple[T, K]{elems: elems}, nil
}

// MustSub is like Sub but panics if K > N.
func MustSub[K dim.Rank, T any, N dim.Rank](t Tuple[T, N]) Tuple[T, K] {
	out, err := Sub[K](t)
	if err != nil {
		panic(err)
	}

	return out
}

// Equal reports whether a and b hold the same values slot by slot.
// Complexity: O(N).
func Equal[T comparable, N dim.Rank](a, b Tuple[T, N]) bool {
	n := a.Len()
	for i := 0; i < n; i++ {
		if a.At(i) != b.At(i) {
			return false
		}
	}

	return true
}
