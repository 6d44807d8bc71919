package tree

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertAndKeys(t *testing.T) {
	tr := New[int, string](Ordered[int]())
	assert.True(t, tr.IsEmpty())

	for _, k := range []int{5, 1, 9, 3, 7} {
		present := tr.Insert(k, "v")
		assert.False(t, present)
	}
	assert.False(t, tr.IsEmpty())
	assert.Equal(t, 5, tr.Len())
	assert.Equal(t, []int{1, 3, 5, 7, 9}, tr.Keys())

	// Duplicate insert is a no-op
	assert.True(t, tr.Insert(3, "other"))
	assert.Equal(t, 5, tr.Len())
}

func TestUpdate(t *testing.T) {
	tr := New[string, []int](Ordered[string]())

	appendTo := func(x int) func([]int, bool) []int {
		return func(old []int, present bool) []int {
			if !present {
				assert.Nil(t, old)
			}
			return append(old, x)
		}
	}

	assert.False(t, tr.Update("a", appendTo(1)))
	assert.True(t, tr.Update("a", appendTo(2)))
	assert.False(t, tr.Update("b", appendTo(3)))

	k, v, err := tr.PopMin()
	require.NoError(t, err)
	assert.Equal(t, "a", k)
	assert.Equal(t, []int{1, 2}, v)
}

func TestDelete(t *testing.T) {
	tr := New[int, int](Ordered[int]())
	for i := 0; i < 32; i++ {
		tr.Insert(i, i*i)
	}
	v, ok := tr.Delete(17)
	require.True(t, ok)
	assert.Equal(t, 289, v)
	assert.Equal(t, 31, tr.Len())

	_, ok = tr.Delete(17)
	assert.False(t, ok)

	keys := tr.Keys()
	assert.Len(t, keys, 31)
	assert.NotContains(t, keys, 17)
}

func TestPopMinDrainsInOrder(t *testing.T) {
	tr := New[int, struct{}](Ordered[int]())
	perm := rand.New(rand.NewSource(42)).Perm(100)
	for _, k := range perm {
		tr.Insert(k, struct{}{})
	}
	for want := 0; want < 100; want++ {
		k, _, err := tr.PopMin()
		require.NoError(t, err)
		assert.Equal(t, want, k)
	}
	assert.True(t, tr.IsEmpty())

	_, _, err := tr.PopMin()
	assert.ErrorIs(t, err, ErrEmptyTree)
}

func TestNeighbours(t *testing.T) {
	tr := New[int, struct{}](Ordered[int]())
	for _, k := range []int{10, 20, 30, 40} {
		tr.Insert(k, struct{}{})
	}

	cases := []struct {
		probe                  int
		smaller, greater       int
		hasSmaller, hasGreater bool
	}{
		{probe: 25, smaller: 20, greater: 30, hasSmaller: true, hasGreater: true},
		{probe: 20, smaller: 10, greater: 30, hasSmaller: true, hasGreater: true},
		{probe: 5, hasSmaller: false, greater: 10, hasGreater: true},
		{probe: 45, smaller: 40, hasSmaller: true, hasGreater: false},
	}
	for _, c := range cases {
		s, ok := tr.SmallerNeighbour(c.probe)
		assert.Equal(t, c.hasSmaller, ok)
		if ok {
			assert.Equal(t, c.smaller, s)
		}
		g, ok := tr.GreaterNeighbour(c.probe)
		assert.Equal(t, c.hasGreater, ok)
		if ok {
			assert.Equal(t, c.greater, g)
		}
	}
}

// A comparator over intervals where a bare int probe matches every interval
// containing it. This exercises cross-type probes and multi-key matches the
// way the sweep status structure uses them.
type span struct{ lo, hi int }

func spanComparator() Comparator[span] {
	return ComparatorFunc[span](func(key span, probe any) int {
		switch p := probe.(type) {
		case span:
			if key.lo != p.lo {
				return key.lo - p.lo
			}
			return key.hi - p.hi
		case int:
			if key.hi < p {
				return -1
			}
			if key.lo > p {
				return 1
			}
			return 0
		}
		panic("unsupported probe")
	})
}

func TestMatchingWithCrossTypeProbe(t *testing.T) {
	tr := New[span, struct{}](spanComparator())
	spans := []span{{0, 4}, {2, 8}, {3, 9}, {6, 12}, {10, 14}}
	for _, s := range spans {
		tr.Insert(s, struct{}{})
	}

	got := tr.Matching(3)
	assert.Equal(t, []span{{0, 4}, {2, 8}, {3, 9}}, got)

	assert.Empty(t, tr.Matching(15))

	s, ok := tr.SmallerNeighbour(10)
	require.True(t, ok)
	assert.Equal(t, span{3, 9}, s)
	g, ok := tr.GreaterNeighbour(4)
	require.True(t, ok)
	assert.Equal(t, span{6, 12}, g)
}

func TestRandomizedAgainstSortedSlice(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	tr := New[int, struct{}](Ordered[int]())
	present := map[int]bool{}

	for i := 0; i < 2000; i++ {
		k := r.Intn(300)
		if r.Intn(2) == 0 {
			tr.Insert(k, struct{}{})
			present[k] = true
		} else {
			_, ok := tr.Delete(k)
			assert.Equal(t, present[k], ok)
			delete(present, k)
		}
	}

	want := make([]int, 0, len(present))
	for k := range present {
		want = append(want, k)
	}
	sort.Ints(want)
	assert.Equal(t, want, tr.Keys())
	assert.Equal(t, len(want), tr.Len())
}
