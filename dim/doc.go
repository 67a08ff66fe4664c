// SPDX-License-Identifier: MIT

// Package dim encodes the dimensionality of a container in its type.
//
// A rank is a zero-size type whose Rank method reports N. Ranks are built by
// type-level recursion: D1 is rank one and Next[R] is one more than R, so
// D3 is literally Next[Next[D1]]. Containers and tuples take the rank as a
// type parameter, which makes values of different ranks different Go types:
//
//	var a tuple.Tuple[uint32, dim.D2]
//	var b tuple.Tuple[uint32, dim.D3]
//	a = b // compile error
//
// Aliases D2..D8 cover the common cases; deeper ranks compose with Next.
package dim
