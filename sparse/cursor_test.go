package sparse_test

import (
	"testing"

	"github.com/katalvlaran/ndsparse/dim"
	"github.com/katalvlaran/ndsparse/sparse"
	"github.com/katalvlaran/ndsparse/tuple"
	"github.com/stretchr/testify/require"
)

func TestCursor_ChainedAssignmentIsDurable(t *testing.T) {
	m := newMat2()
	c := m.I(I1).I(I5).Set(Val231).Set(0).Set(ValNeg)

	require.Equal(t, 1, m.Len())
	require.Equal(t, ValNeg, m.At(I1, I5))
	require.Equal(t, ValNeg, c.Get())
}

func TestCursor_EachSetAppliesElision(t *testing.T) {
	m := newMat2()
	c := m.I(I1).I(I5)

	c.Set(Val231)
	require.Equal(t, 1, m.Len())
	c.Set(0)
	require.Equal(t, 0, m.Len())
	require.Equal(t, 1, sparse.NodeCount(m), "intermediate erase must prune")
	c.Set(ValNeg)
	require.Equal(t, 1, m.Len())
}

func TestCursor_ReadDoesNotCreate(t *testing.T) {
	m := newMat3()
	require.Equal(t, 0, m.I(I1).I(I5).I(I12).Get())
	require.Equal(t, 0, sparse.NodeCount(m))
}

func TestCursor_SiblingsAreIndependent(t *testing.T) {
	m := newMat3()
	prefix := m.I(I1).I(I1)
	a := prefix.I(I5)
	b := prefix.I(I12)
	a.Set(1)
	b.Set(2)

	require.Equal(t, 1, m.At(I1, I1, I5))
	require.Equal(t, 2, m.At(I1, I1, I12))
	require.Equal(t, 2, prefix.Bound())
	require.False(t, prefix.Complete())
	require.True(t, a.Complete())
}

func TestCursor_Misuse(t *testing.T) {
	m := newMat2()
	require.PanicsWithValue(t, "sparse: cursor used before all indices are bound", func() { m.I(I1).Get() })
	require.Panics(t, func() { m.I(I1).Set(1) })
	require.Panics(t, func() { m.I(I1).Delete() })
	require.PanicsWithValue(t, "sparse: cursor already holds a full index path", func() { m.I(I1).I(I1).I(I1) })

	var zero sparse.Cursor[int, sparse.Zero[int], dim.D2]
	require.False(t, zero.Complete())
	require.PanicsWithValue(t, "sparse: cursor is not bound to a matrix", func() { zero.I(I1) })
	require.Panics(t, func() { zero.Get() })
}

func TestCursor_DeleteAndKey(t *testing.T) {
	m := newMat2()
	s := m.Slot(I92, I1)
	require.False(t, s.Delete())
	s.Set(Val100)
	require.True(t, tuple.Equal(tuple.Of[sparse.Index, dim.D2](I92, I1), s.Key()))
	require.True(t, s.Delete())
	require.Equal(t, 0, m.Len())
}

func TestSlot_CopiesIndices(t *testing.T) {
	m := newMat2()
	idx := []sparse.Index{I1, I5}
	s := m.Slot(idx...)
	idx[0] = I92
	s.Set(Val100)
	require.Equal(t, Val100, m.At(I1, I5))
	require.Equal(t, 0, m.At(I92, I5))
}

func TestCursor_FiveDimensions(t *testing.T) {
	m := sparse.New[int, sparse.Zero[int], dim.D5]()
	m.I(1).I(2).I(3).I(4).I(5).Set(Val100)
	require.Equal(t, Val100, m.At(1, 2, 3, 4, 5))
	require.Equal(t, 1, m.Len())
}
