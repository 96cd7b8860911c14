package sliceutil

// EmptyRange is a range that is always empty
var EmptyRange = Range{Lo: 1, Hi: 0}

// Range is a half-open window [Lo, Hi) of slice indices.
type Range struct {
	// The first index in the range (inclusive)
	Lo int
	// The end of the range (exclusive)
	Hi int
}

func (r Range) IsEmpty() bool {
	return r.Hi <= r.Lo
}

// BisectFunc searches s for an element that compares equal to target.
// The cmp function is called as cmp(target, element) and should return:
//   - positive if the element sorts before target
//   - zero if the element matches target
//   - negative if the element sorts after target
//
// s must be partitioned accordingly: a (possibly empty) prefix of positive results, a contiguous
// run of zeros, then a suffix of negative results.
//
// It returns the index of some matching element and true, or the position where a match would
// be inserted and false. The returned index is not necessarily the first of its run.
func BisectFunc[E, T any](s []E, target T, cmp func(T, E) int) (int, bool) {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		c := cmp(target, s[mid])
		if c > 0 {
			lo = mid + 1
		} else if c < 0 {
			hi = mid
		} else {
			return mid, true
		}
	}
	return lo, false
}

// EqualRangeFunc returns the full run of elements in s that compare equal to target, with s
// partitioned as described for BisectFunc. The run is found by bisecting to any matching element
// and then widening left and right over neighbours that also match.
//
// If nothing matches, found is false and the returned range is empty at the insertion point.
func EqualRangeFunc[E, T any](s []E, target T, cmp func(T, E) int) (r Range, found bool) {
	pos, ok := BisectFunc(s, target, cmp)
	if !ok {
		return Range{Lo: pos, Hi: pos}, false
	}

	lo := pos
	for lo > 0 && cmp(target, s[lo-1]) == 0 {
		lo--
	}
	hi := pos + 1
	for hi < len(s) && cmp(target, s[hi]) == 0 {
		hi++
	}
	return Range{Lo: lo, Hi: hi}, true
}
