package sparse_test

import (
	"testing"

	"github.com/katalvlaran/ndsparse/dim"
	"github.com/katalvlaran/ndsparse/sparse"
	"github.com/katalvlaran/ndsparse/tuple"
	"github.com/stretchr/testify/require"
)

func TestIter_EmptyBeginIsEnd(t *testing.T) {
	m := newMat2()
	it := m.Iter()
	require.True(t, it.Done())
	require.False(t, it.Next())
	require.Empty(t, m.Entries())

	// Still true after a write/erase cycle leaves only the root.
	m.Set(1, I1, I1).Set(0, I1, I1)
	require.True(t, m.Iter().Done())
}

func TestIter_AscendingOrderAtEveryLevel(t *testing.T) {
	m := newMat2()
	m.Set(4, I92, I1)
	m.Set(1, I1, I101)
	m.Set(3, I5, I67)
	m.Set(2, I1, I12)
	m.Set(5, I92, I0)

	requireEntries(t, []flatEntry{
		{Idx: []sparse.Index{I1, I12}, Val: 2},
		{Idx: []sparse.Index{I1, I101}, Val: 1},
		{Idx: []sparse.Index{I5, I67}, Val: 3},
		{Idx: []sparse.Index{I92, I0}, Val: 5},
		{Idx: []sparse.Index{I92, I1}, Val: 4},
	}, m)
}

func TestIter_CompletenessAgainstReads(t *testing.T) {
	m := newMat3()
	for i := sparse.Index(0); i < 10; i++ {
		m.Set(int(i)+1, i%3, i%4, i)
	}
	m.Delete(0, 0, 0)
	m.Delete(2, 1, 5)

	seen := map[[3]sparse.Index]bool{}
	count := 0
	for e := range m.All() {
		k := e.Head()
		key := [3]sparse.Index{k.At(0), k.At(1), k.At(2)}
		require.False(t, seen[key], "entry %v yielded twice", key)
		seen[key] = true
		require.Equal(t, m.At(key[0], key[1], key[2]), e.Last())
		count++
	}
	require.Equal(t, m.Len(), count)
}

func TestIter_BeginEndLoop(t *testing.T) {
	m := newMat2()
	m.Set(1, I1, I1).Set(2, I5, I5)

	var got []int
	for it := m.Iter(); !it.Done(); it.Next() {
		got = append(got, it.Entry().Last())
	}
	require.Equal(t, []int{1, 2}, got)

	// A fresh iterator restarts from the beginning.
	require.Equal(t, 1, m.Iter().Entry().Last())
}

func TestIter_ExhaustedIteratorStaysDone(t *testing.T) {
	m := newMat2()
	m.Set(1, I1, I1)
	it := m.Iter()
	require.False(t, it.Next())
	require.True(t, it.Done())
	require.False(t, it.Next())
	require.Equal(t, 0, it.Entry().Last())
}

func TestAll_EarlyBreak(t *testing.T) {
	m := newMat2()
	m.Set(1, I1, I1).Set(2, I1, I5).Set(3, I5, I1)
	n := 0
	for range m.All() {
		n++
		if n == 2 {
			break
		}
	}
	require.Equal(t, 2, n)
}

func TestItemsAndKeys(t *testing.T) {
	m := newMat2()
	m.Set(7, I5, I1).Set(8, I1, I5)

	var keys []sparse.Key[dim.D2]
	for k := range m.Keys() {
		keys = append(keys, k)
	}
	require.Len(t, keys, 2)
	require.True(t, tuple.Equal(tuple.Of[sparse.Index, dim.D2](I1, I5), keys[0]))

	vals := map[string]int{}
	for k, v := range m.Items() {
		vals[k.String()] = v
	}
	require.Equal(t, map[string]int{"(1, 5)": 8, "(5, 1)": 7}, vals)
}

func TestIter_FiveDimensions(t *testing.T) {
	m := sparse.New[int, sparse.Zero[int], dim.D5]()
	m.Set(Val100, 3, 1, 4, 1, 5)
	require.Equal(t, 1, m.Len())

	entries := m.Entries()
	require.Len(t, entries, 1)
	e := entries[0]
	require.Equal(t, 6, e.Len())
	for i, want := range []sparse.Index{3, 1, 4, 1, 5} {
		require.Equal(t, want, e.Field(i))
	}
	require.Equal(t, Val100, e.Field(5))

	// Leading coordinates via the tuple kit.
	prefix := tuple.MustSub[dim.D2](e.Head())
	require.Equal(t, []sparse.Index{3, 1}, prefix.Values())
}

func TestIter_OneDimension(t *testing.T) {
	m := sparse.New[int, sparse.Zero[int], dim.D1]()
	m.Set(2, I12).Set(1, I5)
	requireEntries(t, []flatEntry{
		{Idx: []sparse.Index{I5}, Val: 1},
		{Idx: []sparse.Index{I12}, Val: 2},
	}, m)
	e := m.Iter().Entry()
	require.Equal(t, 2, e.Len())
}

func TestIter_MaxIndex(t *testing.T) {
	const top = sparse.Index(1<<32 - 1)
	m := newMat2()
	m.Set(1, top, top).Set(2, I0, top)
	requireEntries(t, []flatEntry{
		{Idx: []sparse.Index{I0, top}, Val: 2},
		{Idx: []sparse.Index{top, top}, Val: 1},
	}, m)
}
