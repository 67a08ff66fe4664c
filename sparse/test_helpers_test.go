// SPDX-License-Identifier: MIT
// Package sparse_test contains shared fixtures for the sparse tests.
//
// Purpose:
//   - Name the matrix instantiations used across tests.
//   - Provide a flat, exported-field view of entries so results can be
//     diffed with go-cmp.

package sparse_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/ndsparse/dim"
	"github.com/katalvlaran/ndsparse/sparse"
)

// One is a Defaulter whose Default is 1.
type One struct{}

func (One) Default() int { return 1 }

// Instantiations used across tests.
type (
	mat2 = sparse.Matrix[int, sparse.Zero[int], dim.D2]
	mat3 = sparse.Matrix[int, sparse.Zero[int], dim.D3]
)

// Common coordinates (avoid magic numbers in test bodies).
const (
	I0   = 0
	I1   = 1
	I5   = 5
	I12  = 12
	I31  = 31
	I67  = 67
	I75  = 75
	I92  = 92
	I101 = 101
)

// Common values.
const (
	Val100 = 100
	Val231 = 231
	ValNeg = -21
)

func newMat2() *mat2 { return sparse.New[int, sparse.Zero[int], dim.D2]() }

func newMat3() *mat3 { return sparse.New[int, sparse.Zero[int], dim.D3]() }

// flatEntry is a cmp-friendly view of one iteration tuple.
type flatEntry struct {
	Idx []sparse.Index
	Val int
}

// flatten returns the entries of m in iteration order.
func flatten[D sparse.Defaulter[int], N dim.Rank](m *sparse.Matrix[int, D, N]) []flatEntry {
	out := []flatEntry{}
	for e := range m.All() {
		out = append(out, flatEntry{Idx: e.Head().Values(), Val: e.Last()})
	}

	return out
}

// requireEntries fails t unless m holds exactly want, in order.
func requireEntries[D sparse.Defaulter[int], N dim.Rank](t *testing.T, want []flatEntry, m *sparse.Matrix[int, D, N]) {
	t.Helper()
	if diff := cmp.Diff(want, flatten(m)); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}
}
