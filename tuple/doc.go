// SPDX-License-Identifier: MIT

// Package tuple builds fixed-arity tuple values whose arity is part of the type.
//
// What & Why:
//
//	Go has no variadic type parameters, so a "tuple of N ints" cannot be spelled
//	directly. Instead the arity is carried by a dim.Rank type parameter and the
//	slots live in a fixed-length backing slice:
//
//	  Gen[T, N]()         N slots of T            (every slot the zero T)
//	  Append[T, U, N](t)  N slots of T + one U    (len N+1, last slot typed U)
//	  Sub[K, T, N](t)     first K slots of t      (same type as Gen[T, K])
//
//	Composing the three gives a dimension-agnostic "indices + value" record:
//	Appended[uint32, V, dim.D3] is (i1, i2, i3, v) for any V.
//
// Errors:
//
//	ErrRankExceeded - Sub asked for more slots than the source tuple holds.
//
// Complexity:
//
//	Len is O(1). Gen, Of, Append, Sub and Values copy: O(N).
package tuple
