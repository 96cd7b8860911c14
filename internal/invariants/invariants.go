// Package invariants holds assertions that only run in builds with the "invariants" or "race"
// build tags. In other builds every check compiles down to nothing.
package invariants

import "github.com/cockroachdb/errors"

// CheckPartition panics if s is not partitioned for target, i.e. if cmp(target, e) is not
// positive for a prefix of s, zero for a contiguous run and negative for the rest. No-op unless
// Enabled.
//
// The check is O(len(s)). It catches records handed to a sorted search that are not actually
// ordered consistently with the comparator.
func CheckPartition[E, T any](s []E, target T, cmp func(T, E) int) {
	if !Enabled {
		return
	}
	prev := 1
	for i := range s {
		c := sign(cmp(target, s[i]))
		if c > prev {
			panic(errors.AssertionFailedf(
				"joinable: sorted records are not ordered for the predicate: record %d compares %d after %d", i, c, prev))
		}
		prev = c
	}
}

// CheckRange panics if [lo, hi) is not a valid, possibly empty, window into a slice of length n.
// The canonical empty range (lo > hi) is accepted. No-op unless Enabled.
func CheckRange(lo, hi, n int) {
	if !Enabled || lo >= hi {
		return
	}
	if lo < 0 || hi > n {
		panic(errors.AssertionFailedf("joinable: range [%d, %d) out of bounds for %d records", lo, hi, n))
	}
}

func sign(c int) int {
	switch {
	case c > 0:
		return 1
	case c < 0:
		return -1
	}
	return 0
}
