package testutil

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Digest fingerprints a sequence of rendered rows so that whole join outputs can be compared
// cheaply across runs and configurations.
type Digest struct {
	h    *xxhash.Digest
	rows int
}

func NewDigest() *Digest {
	return &Digest{h: xxhash.New()}
}

// Addf renders one row into the digest. Rows are separated so that ("ab", "c") and ("a", "bc")
// hash differently.
func (d *Digest) Addf(format string, args ...any) {
	fmt.Fprintf(d.h, format, args...)
	d.h.Write([]byte{0})
	d.rows++
}

// Rows returns the number of rows added so far.
func (d *Digest) Rows() int {
	return d.rows
}

func (d *Digest) Sum64() uint64 {
	return d.h.Sum64()
}
