package testutil

import (
	"cmp"
	"fmt"
	"math/rand/v2"
	"slices"
)

type options struct {
	seed     uint64
	lhsLen   int
	rhsLen   int
	keySpace int
}

type Option = func(*options)

// WithSeed sets the seed of the generator. Workloads with equal options are identical.
func WithSeed(seed uint64) func(*options) {
	return func(o *options) {
		o.seed = seed
	}
}

// WithSizes sets the number of LHS and RHS records generated.
func WithSizes(lhsLen, rhsLen int) func(*options) {
	return func(o *options) {
		o.lhsLen = lhsLen
		o.rhsLen = rhsLen
	}
}

// WithKeySpace sets the number of distinct keys drawn from. A key space that is small relative to
// the sizes produces many duplicate keys on both sides; a large one produces mostly misses.
func WithKeySpace(n int) func(*options) {
	return func(o *options) {
		o.keySpace = n
	}
}

// Workload is a pair of join inputs.
type Workload struct {
	// Left is in random key order.
	Left []Pair
	// Right is in ascending key order, suitable for a sorted RHS. Names record the position
	// ("r0", "r1", ...) so that output order is visible.
	Right []Pair
	// Shuffled holds the records of Right in random order, for unsorted-only checks.
	Shuffled []Pair
}

// NewWorkload generates a random workload.
func NewWorkload(opts ...func(*options)) Workload {
	o := options{
		seed:     1,
		lhsLen:   64,
		rhsLen:   64,
		keySpace: 32,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.keySpace < 1 {
		o.keySpace = 1
	}

	rng := rand.New(rand.NewPCG(o.seed, o.seed^0x9e3779b97f4a7c15))

	left := make([]Pair, o.lhsLen)
	for i := range left {
		left[i] = Pair{Key: rng.IntN(o.keySpace), Name: fmt.Sprintf("l%d", i)}
	}

	right := make([]Pair, o.rhsLen)
	for i := range right {
		right[i] = Pair{Key: rng.IntN(o.keySpace)}
	}
	slices.SortStableFunc(right, func(a, b Pair) int { return cmp.Compare(a.Key, b.Key) })
	for i := range right {
		right[i].Name = fmt.Sprintf("r%d", i)
	}

	shuffled := slices.Clone(right)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	return Workload{Left: left, Right: right, Shuffled: shuffled}
}
