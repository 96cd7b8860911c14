package joinable

import (
	"fmt"
	"iter"
	"strings"

	"github.com/garethgeorge/joinable/internal/testutil"
)

type Pair = testutil.Pair

// rhsVariant names one way of wrapping an RHS slice.
type rhsVariant struct {
	name string
	wrap func([]Pair) RHS[Pair]
}

var rhsVariants = []rhsVariant{
	{name: "unsorted", wrap: NewUnsorted[Pair]},
	{name: "sorted", wrap: NewSorted[Pair]},
}

// renderMatches renders per-match output, one row per element: "(l) (r)" or "(l) none".
func renderMatches(seq iter.Seq2[Pair, *Pair]) []string {
	var rows []string
	for l, r := range seq {
		if r == nil {
			rows = append(rows, fmt.Sprintf("%s none", l))
		} else {
			rows = append(rows, fmt.Sprintf("%s %s", l, *r))
		}
	}
	return rows
}

// renderGroups renders grouped output, one row per LHS record: "(l) [(r) (r) ...]".
func renderGroups(seq iter.Seq2[Pair, []*Pair]) []string {
	var rows []string
	for l, rs := range seq {
		names := make([]string, len(rs))
		for i, r := range rs {
			names[i] = r.String()
		}
		rows = append(rows, fmt.Sprintf("%s [%s]", l, strings.Join(names, " ")))
	}
	return rows
}

func renderLefts(seq iter.Seq[Pair]) []string {
	var rows []string
	for l := range seq {
		rows = append(rows, l.String())
	}
	return rows
}

// positions maps every record of rs to its index, to turn yielded pointers back into positions.
func positions(rs []Pair) map[*Pair]int {
	m := make(map[*Pair]int, len(rs))
	for i := range rs {
		m[&rs[i]] = i
	}
	return m
}
