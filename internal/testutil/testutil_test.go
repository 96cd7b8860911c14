package testutil

import (
	"cmp"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOracle(t *testing.T) {
	o := NewOracle(Right())

	assert.Equal(t, []int{0, 1, 2, 3, 4}, o.Keys())
	assert.Equal(t, []int{1, 2, 3}, o.Matches(1))
	assert.Equal(t, []int{4, 5}, o.Matches(2))
	assert.Nil(t, o.Matches(7))

	t.Run("inner", func(t *testing.T) {
		got := o.InnerJoin(Left())
		require.Len(t, got, 9)
		assert.Equal(t, Match{Left: Pair{Key: 0, Name: "zero"}, Pos: 0}, got[0])
		assert.Equal(t, Match{Left: Pair{Key: 0, Name: "nil"}, Pos: 0}, got[1])
		assert.Equal(t, Match{Left: Pair{Key: 4, Name: "four"}, Pos: 7}, got[8])
	})

	t.Run("outer", func(t *testing.T) {
		got := o.OuterJoin(Left())
		require.Len(t, got, 15)
		for _, m := range got[9:] {
			assert.Equal(t, -1, m.Pos)
		}
	})

	t.Run("unsorted positions", func(t *testing.T) {
		o := NewOracle([]Pair{{Key: 3, Name: "a"}, {Key: 1, Name: "b"}, {Key: 3, Name: "c"}})
		assert.Equal(t, []int{0, 2}, o.Matches(3))
		assert.Equal(t, []int{1, 3}, o.Keys())
	})
}

func TestNewWorkload(t *testing.T) {
	w := NewWorkload(WithSeed(7), WithSizes(20, 30), WithKeySpace(5))
	require.Len(t, w.Left, 20)
	require.Len(t, w.Right, 30)
	require.Len(t, w.Shuffled, 30)

	assert.True(t, slices.IsSortedFunc(w.Right, func(a, b Pair) int { return cmp.Compare(a.Key, b.Key) }))
	for _, p := range append(slices.Clone(w.Left), w.Right...) {
		assert.GreaterOrEqual(t, p.Key, 0)
		assert.Less(t, p.Key, 5)
	}

	sortedShuffle := slices.Clone(w.Shuffled)
	slices.SortFunc(sortedShuffle, func(a, b Pair) int { return cmp.Compare(a.Name, b.Name) })
	sortedRight := slices.Clone(w.Right)
	slices.SortFunc(sortedRight, func(a, b Pair) int { return cmp.Compare(a.Name, b.Name) })
	assert.Equal(t, sortedRight, sortedShuffle, "shuffled must be a permutation of right")

	assert.Equal(t, w, NewWorkload(WithSeed(7), WithSizes(20, 30), WithKeySpace(5)), "same options, same workload")
}

func TestDigest(t *testing.T) {
	a := NewDigest()
	a.Addf("%s", "ab")
	a.Addf("%s", "c")

	b := NewDigest()
	b.Addf("%s", "a")
	b.Addf("%s", "bc")

	c := NewDigest()
	c.Addf("%s", "ab")
	c.Addf("%s", "c")

	assert.NotEqual(t, a.Sum64(), b.Sum64())
	assert.Equal(t, a.Sum64(), c.Sum64())
	assert.Equal(t, 2, a.Rows())
}

func TestCounted(t *testing.T) {
	pulled := 0
	for v := range Counted(slices.Values([]int{1, 2, 3, 4}), &pulled) {
		if v == 2 {
			break
		}
	}
	assert.Equal(t, 2, pulled)
}
