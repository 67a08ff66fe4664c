// SPDX-License-Identifier: MIT

package tuple

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/ndsparse/dim"
)

// Tuple is an immutable sequence of exactly dim.Of[N]() values of type T.
// The zero value is valid and holds N zero values.
type Tuple[T any, N dim.Rank] struct {
	elems []T // nil for the zero value, otherwise len == N
}

// Len returns the arity N.
// Complexity: O(1).
func (t Tuple[T, N]) Len() int {
	return dim.Of[N]()
}

// At returns the i-th slot. It panics if i is outside [0, N).
func (t Tuple[T, N]) At(i int) T {
	if i < 0 || i >= t.Len() {
		panic(panicFieldRange)
	}
	if t.elems == nil {
		var zero T
		return zero
	}

	return t.elems[i]
}

// Values returns a copy of all slots in order.
// Complexity: O(N).
func (t Tuple[T, N]) Values() []T {
	out := make([]T, t.Len())
	copy(out, t.elems)

	return out
}

// String renders the tuple as "(a, b, c)".
func (t Tuple[T, N]) String() string {
	return render(t.Values())
}

// Appended is a Tuple[T, N] followed by one trailing slot of type U.
// It is the value produced by Append.
type Appended[T any, U any, N dim.Rank] struct {
	head Tuple[T, N]
	last U
}

// Len returns N+1.
func (a Appended[T, U, N]) Len() int {
	return a.head.Len() + 1
}

// Head returns the leading N slots.
func (a Appended[T, U, N]) Head() Tuple[T, N] {
	return a.head
}

// Last returns the trailing slot.
func (a Appended[T, U, N]) Last() U {
	return a.last
}

// Field returns slot i as an untyped value: slots [0, N) come from Head,
// slot N is Last. It panics for any other i.
func (a Appended[T, U, N]) Field(i int) any {
	n := a.head.Len()
	switch {
	case i >= 0 && i < n:
		return a.head.At(i)
	case i == n:
		return a.last
	default:
		panic(panicFieldRange)
	}
}

// String renders the tuple as "(a, b, c, last)".
func (a Appended[T, U, N]) String() string {
	fields := make([]any, 0, a.Len())
	for _, v := range a.head.Values() {
		fields = append(fields, v)
	}
	fields = append(fields, a.last)

	return render(fields)
}

// render joins values as a parenthesised, comma-separated list.
func render[E any](vals []E) string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, v := range vals {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteByte(')')

	return sb.String()
}
