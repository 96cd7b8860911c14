package joinable

import (
	"github.com/garethgeorge/joinable/internal/invariants"
	"github.com/garethgeorge/joinable/internal/sliceutil"
)

// Predicate compares an LHS record with an RHS record. It returns zero for a match. Against a
// sorted RHS it must also return a positive number for records sorting before the matching run
// and a negative number for records after it.
type Predicate[L, R any] = func(l L, r R) int

// Kind selects how an RHS is searched.
type Kind uint8

const (
	// Unsorted records are searched linearly, O(n) per lookup.
	Unsorted Kind = iota
	// Sorted records are bisected, O(log n) per lookup. The caller asserts the ordering.
	Sorted
)

func (k Kind) String() string {
	switch k {
	case Unsorted:
		return "unsorted"
	case Sorted:
		return "sorted"
	}
	return "unknown"
}

// RHS is the right-hand side of a join: a borrowed slice of records tagged with the way it may be
// searched. The zero value is an empty unsorted RHS.
//
// An RHS is a read-only view. Any number of joins may share one concurrently as long as nobody
// writes to the underlying slice while they run.
type RHS[R any] struct {
	records []R
	kind    Kind
}

// NewUnsorted wraps records that are not (necessarily) sorted. Lookups scan every record.
func NewUnsorted[R any](records []R) RHS[R] {
	return RHS[R]{records: records, kind: Unsorted}
}

// NewSorted wraps records that are sorted consistently with the predicates they will be joined
// with. Lookups bisect. The records are not checked or reordered.
func NewSorted[R any](records []R) RHS[R] {
	return RHS[R]{records: records, kind: Sorted}
}

// Input is accepted wherever a join takes its right-hand side. A bare []R is treated as
// NewUnsorted(records).
type Input[R any] interface {
	[]R | RHS[R]
}

func asRHS[R any, I Input[R]](in I) RHS[R] {
	switch v := any(in).(type) {
	case RHS[R]:
		return v
	case []R:
		return NewUnsorted(v)
	}
	panic("unreachable")
}

func (rhs RHS[R]) Kind() Kind {
	return rhs.kind
}

func (rhs RHS[R]) Len() int {
	return len(rhs.records)
}

// Records returns the wrapped slice itself, not a copy.
func (rhs RHS[R]) Records() []R {
	return rhs.records
}

// At returns a pointer to the i'th record of the wrapped slice.
func (rhs RHS[R]) At(i int) *R {
	return &rhs.records[i]
}

// HasMatch reports whether any record in rhs matches l.
func HasMatch[L, R any](rhs RHS[R], l L, pred Predicate[L, R]) bool {
	return hasMatch(rhs, l, pred)
}

// MatchRange returns a half-open index range [lo, hi) into rhs that holds every record matching
// l. For a sorted RHS the range is exactly the run of matches and is empty (lo >= hi) when there
// are none; for an unsorted RHS it is the whole slice and callers still have to test each record.
func MatchRange[L, R any](rhs RHS[R], l L, pred Predicate[L, R]) (lo, hi int) {
	r := matchRange(rhs, l, pred)
	return r.Lo, r.Hi
}

func hasMatch[L, R any](rhs RHS[R], l L, pred Predicate[L, R]) bool {
	if rhs.kind == Sorted {
		invariants.CheckPartition(rhs.records, l, pred)
		_, ok := sliceutil.BisectFunc(rhs.records, l, pred)
		return ok
	}
	for i := range rhs.records {
		if pred(l, rhs.records[i]) == 0 {
			return true
		}
	}
	return false
}

func matchRange[L, R any](rhs RHS[R], l L, pred Predicate[L, R]) sliceutil.Range {
	if rhs.kind != Sorted {
		return sliceutil.Range{Lo: 0, Hi: len(rhs.records)}
	}
	invariants.CheckPartition(rhs.records, l, pred)
	r, found := sliceutil.EqualRangeFunc(rhs.records, l, pred)
	if !found {
		// only emptiness matters to callers
		return sliceutil.EmptyRange
	}
	return r
}
