package joinable

import (
	"iter"

	"github.com/garethgeorge/joinable/internal/invariants"
	"github.com/garethgeorge/joinable/internal/sliceutil"
)

// joinKind is the mode of a join that handles one LHS record at a time.
type joinKind uint8

const (
	// joinInnerGrouped yields (l, matches) for LHS records with at least one match.
	joinInnerGrouped joinKind = iota
	// joinOuterGrouped yields (l, matches) for every LHS record, matches possibly empty.
	joinOuterGrouped
	// joinSemi yields LHS records with at least one match.
	joinSemi
	// joinAnti yields LHS records without any match.
	joinAnti
)

// InnerJoinGrouped joins lhs and rhs, keeping only LHS records that have one or more matches.
//
// Every LHS record is yielded at most once, together with all of its matches in RHS order. The
// matches slice is freshly allocated for each record and belongs to the caller; its elements
// point into the RHS slice. If several LHS records match the same RHS record, that record appears
// in each of their slices.
func InnerJoinGrouped[L, R any, I Input[R]](lhs iter.Seq[L], rhs I, pred Predicate[L, R]) iter.Seq2[L, []*R] {
	j := groupedJoin[L, R]{lhs: lhs, rhs: asRHS[R](rhs), pred: pred, kind: joinInnerGrouped}
	return j.groups()
}

// OuterJoinGrouped joins lhs and rhs, keeping all LHS records.
//
// Like InnerJoinGrouped, but LHS records without matches are yielded too, with an empty (nil)
// matches slice.
func OuterJoinGrouped[L, R any, I Input[R]](lhs iter.Seq[L], rhs I, pred Predicate[L, R]) iter.Seq2[L, []*R] {
	j := groupedJoin[L, R]{lhs: lhs, rhs: asRHS[R](rhs), pred: pred, kind: joinOuterGrouped}
	return j.groups()
}

// SemiJoin yields the LHS records that have one or more matches in rhs, in LHS order. No matches
// are collected; a single lookup per LHS record decides.
func SemiJoin[L, R any, I Input[R]](lhs iter.Seq[L], rhs I, pred Predicate[L, R]) iter.Seq[L] {
	j := groupedJoin[L, R]{lhs: lhs, rhs: asRHS[R](rhs), pred: pred, kind: joinSemi}
	return j.lefts()
}

// AntiJoin yields the LHS records that have no match in rhs, in LHS order.
func AntiJoin[L, R any, I Input[R]](lhs iter.Seq[L], rhs I, pred Predicate[L, R]) iter.Seq[L] {
	j := groupedJoin[L, R]{lhs: lhs, rhs: asRHS[R](rhs), pred: pred, kind: joinAnti}
	return j.lefts()
}

type groupedJoin[L, R any] struct {
	lhs  iter.Seq[L]
	rhs  RHS[R]
	pred Predicate[L, R]
	kind joinKind
}

// groups serves joinInnerGrouped and joinOuterGrouped.
func (j groupedJoin[L, R]) groups() iter.Seq2[L, []*R] {
	return func(yield func(L, []*R) bool) {
		for l := range j.lhs {
			matches := gather(j.rhs, l, j.pred)
			if j.kind == joinInnerGrouped && len(matches) == 0 {
				continue
			}
			if !yield(l, matches) {
				return
			}
		}
	}
}

// lefts serves joinSemi and joinAnti.
func (j groupedJoin[L, R]) lefts() iter.Seq[L] {
	want := j.kind == joinSemi
	return func(yield func(L) bool) {
		for l := range j.lhs {
			if hasMatch(j.rhs, l, j.pred) != want {
				continue
			}
			if !yield(l) {
				return
			}
		}
	}
}

// gather collects pointers to every record in rhs matching l, in RHS order. It returns nil when
// nothing matches.
func gather[L, R any](rhs RHS[R], l L, pred Predicate[L, R]) []*R {
	rs := rhs.records
	var matches []*R
	if rhs.kind != Sorted {
		for i := range rs {
			if pred(l, rs[i]) == 0 {
				matches = append(matches, &rs[i])
			}
		}
		return matches
	}

	invariants.CheckPartition(rs, l, pred)
	pos, ok := sliceutil.BisectFunc(rs, l, pred)
	if !ok {
		return nil
	}
	// Found *a* match; step back to the first one, then collect forward.
	for pos > 0 && pred(l, rs[pos-1]) == 0 {
		pos--
	}
	for ; pos < len(rs) && pred(l, rs[pos]) == 0; pos++ {
		matches = append(matches, &rs[pos])
	}
	return matches
}
