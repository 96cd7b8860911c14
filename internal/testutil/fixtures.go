// Package testutil provides fixtures, random workloads and a reference oracle for testing joins.
package testutil

import (
	"cmp"
	"fmt"
	"iter"
)

// Pair is a keyed record used on both sides of test joins.
type Pair struct {
	Key  int
	Name string
}

func (p Pair) String() string {
	return fmt.Sprintf("(%d,%s)", p.Key, p.Name)
}

// CompareKeys is the join predicate for Pair records: it matches on Key and orders RHS records
// in ascending key order.
func CompareKeys(l, r Pair) int {
	return cmp.Compare(l.Key, r.Key)
}

// Left returns the LHS fixture: keys 0 through 10 with key 0 appearing twice.
func Left() []Pair {
	return []Pair{
		{0, "zero"},
		{0, "nil"},
		{1, "one"},
		{2, "two"},
		{3, "three"},
		{4, "four"},
		{5, "five"},
		{6, "six"},
		{7, "seven"},
		{8, "eight"},
		{9, "nine"},
		{10, "ten"},
	}
}

// Right returns the RHS fixture, sorted by key, with keys 1 and 2 repeated.
func Right() []Pair {
	return []Pair{
		{0, "zéro"},
		{1, "un"},
		{1, "uno"},
		{1, "ichi"},
		{2, "dos"},
		{2, "deux"},
		{3, "trois"},
		{4, "quatre"},
	}
}

// Counted wraps seq and increments *pulled every time a value is handed to the consumer.
func Counted[T any](seq iter.Seq[T], pulled *int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			*pulled++
			if !yield(v) {
				return
			}
		}
	}
}
