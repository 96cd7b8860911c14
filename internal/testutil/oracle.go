package testutil

import (
	"github.com/google/btree"
)

// posting lists the RHS positions holding one key, in ascending order.
type posting struct {
	key       int
	positions []int
}

// Oracle answers "which RHS records match this key" from a B-tree index over the RHS. It shares
// no code with the join operators and serves as their reference model.
type Oracle struct {
	index *btree.BTreeG[posting]
}

// NewOracle indexes right by key.
func NewOracle(right []Pair) *Oracle {
	index := btree.NewG(32, func(a, b posting) bool { return a.key < b.key })
	for i, r := range right {
		p, _ := index.Get(posting{key: r.Key})
		p.key = r.Key
		p.positions = append(p.positions, i)
		index.ReplaceOrInsert(p)
	}
	return &Oracle{index: index}
}

// Matches returns the positions of RHS records with the given key, in ascending order. It
// returns nil if there are none.
func (o *Oracle) Matches(key int) []int {
	p, ok := o.index.Get(posting{key: key})
	if !ok {
		return nil
	}
	return p.positions
}

// Keys returns the distinct RHS keys in ascending order.
func (o *Oracle) Keys() []int {
	keys := make([]int, 0, o.index.Len())
	o.index.Ascend(func(p posting) bool {
		keys = append(keys, p.key)
		return true
	})
	return keys
}

// Match is one expected per-match output row. Pos is -1 for an unmatched outer row.
type Match struct {
	Left Pair
	Pos  int
}

// InnerJoin returns the expected per-match inner join of left against the indexed RHS.
func (o *Oracle) InnerJoin(left []Pair) []Match {
	var out []Match
	for _, l := range left {
		for _, pos := range o.Matches(l.Key) {
			out = append(out, Match{Left: l, Pos: pos})
		}
	}
	return out
}

// OuterJoin returns the expected per-match left-outer join of left against the indexed RHS.
func (o *Oracle) OuterJoin(left []Pair) []Match {
	var out []Match
	for _, l := range left {
		positions := o.Matches(l.Key)
		if len(positions) == 0 {
			out = append(out, Match{Left: l, Pos: -1})
			continue
		}
		for _, pos := range positions {
			out = append(out, Match{Left: l, Pos: pos})
		}
	}
	return out
}
