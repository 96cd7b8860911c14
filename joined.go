package joinable

import (
	"iter"

	"github.com/garethgeorge/joinable/internal/invariants"
	"github.com/garethgeorge/joinable/internal/sliceutil"
)

// InnerJoin joins lhs and rhs, keeping only LHS records that have one or more matches.
//
// One (l, r) pair is yielded for every match, so an LHS record with several matches is yielded
// several times, once per match and in RHS order, before the next LHS record is read. Likewise an
// RHS record matched by several LHS records is yielded once for each of them. r points into the
// RHS slice.
//
// A bare []R for rhs is searched linearly; wrap it with NewSorted to bisect instead.
func InnerJoin[L, R any, I Input[R]](lhs iter.Seq[L], rhs I, pred Predicate[L, R]) iter.Seq2[L, *R] {
	return perMatch(lhs, asRHS[R](rhs), pred, false)
}

// OuterJoin joins lhs and rhs, keeping all LHS records.
//
// Matches are yielded exactly as by InnerJoin. An LHS record without any match is yielded once
// with a nil r.
func OuterJoin[L, R any, I Input[R]](lhs iter.Seq[L], rhs I, pred Predicate[L, R]) iter.Seq2[L, *R] {
	return perMatch(lhs, asRHS[R](rhs), pred, true)
}

func perMatch[L, R any](lhs iter.Seq[L], rhs RHS[R], pred Predicate[L, R], outer bool) iter.Seq2[L, *R] {
	return func(yield func(L, *R) bool) {
		c := matchCursor[L, R]{rhs: rhs, pred: pred, rng: sliceutil.EmptyRange}
		for l := range lhs {
			c.advance(l)
			isFirst := true
			for r := c.next(); r != nil; r = c.next() {
				isFirst = false
				if !yield(l, r) {
					return
				}
			}
			if outer && isFirst {
				if !yield(l, nil) {
					return
				}
			}
		}
	}
}

// matchCursor holds the per-match join state for the LHS record currently being drained: the
// record itself and the window [lo, hi) of RHS indices that may still hold matches for it. The
// window only ever shrinks from the left.
type matchCursor[L, R any] struct {
	rhs  RHS[R]
	pred Predicate[L, R]

	// current is the LHS record being drained, valid while hasCurrent is set.
	current    L
	hasCurrent bool

	// rng is the remaining RHS window for current. For a sorted RHS it is exactly the unvisited
	// part of the matching run; for an unsorted RHS every index in it still has to be tested.
	rng sliceutil.Range
}

// advance makes l the current LHS record and looks up its RHS window.
func (c *matchCursor[L, R]) advance(l L) {
	c.current = l
	c.hasCurrent = true
	c.rng = matchRange(c.rhs, l, c.pred)
	invariants.CheckRange(c.rng.Lo, c.rng.Hi, c.rhs.Len())
}

// next returns the next match for the current LHS record and moves the window past it. Once the
// window holds no more matches it clears the current record and returns nil.
func (c *matchCursor[L, R]) next() *R {
	if !c.hasCurrent {
		return nil
	}
	rs := c.rhs.records
	if c.rhs.kind == Sorted {
		if !c.rng.IsEmpty() {
			c.rng.Lo++
			return &rs[c.rng.Lo-1]
		}
	} else {
		for i := c.rng.Lo; i < c.rng.Hi; i++ {
			if c.pred(c.current, rs[i]) == 0 {
				c.rng.Lo = i + 1
				return &rs[i]
			}
		}
	}
	c.clear()
	return nil
}

func (c *matchCursor[L, R]) clear() {
	var zero L
	c.current = zero
	c.hasCurrent = false
	c.rng = sliceutil.EmptyRange
}
