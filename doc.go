// Package joinable joins a lazy left-hand side (LHS) sequence against a materialized right-hand
// side (RHS) slice, the way two tables are joined in SQL.
//
// The join condition is a three-way predicate, func(l L, r R) int, returning a negative number,
// zero or a positive number the way cmp.Compare does. A pair matches when the predicate returns
// zero. The three-way form is what lets a sorted RHS be bisected instead of scanned.
//
// InnerJoin and OuterJoin yield one (l, r) pair per match, with OuterJoin yielding (l, nil) for
// an LHS record that has none:
//
//	for c, o := range joinable.OuterJoin(slices.Values(customers), orders, byCustomer) {
//		...
//	}
//
// InnerJoinGrouped and OuterJoinGrouped yield every match for an LHS record at once, and
// SemiJoin and AntiJoin yield only the LHS records that do or do not have a match.
//
// RHS records are never copied: every *R handed to the caller points into the caller's slice.
// Wrapping the slice with NewSorted switches lookups from O(n) scans to O(log n) bisection. The
// slice must then be ordered so that, for every LHS value joined, the predicate is positive for a
// prefix, zero for a contiguous run and negative for the rest; for a predicate of the form
// cmp.Compare(l.Key, r.Key) that is simply ascending key order. Nothing checks this in normal
// builds; building with the "invariants" tag adds an O(n) check per lookup.
package joinable
