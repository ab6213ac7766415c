package generator

import (
	"bufio"
	"fmt"
	"io"
	"math/rand/v2"
)

// UniqueRandomGenerator draws uniform integers in [Min, Max] into a
// uniqueness set until it holds Total distinct values, then emits the set.
// Emission follows map iteration order: not sorted and not draw order.
// Callers that need a sorted dataset load and sort the file afterwards.
type UniqueRandomGenerator struct {
	Total int64
	Min   int64
	Max   int64
	Desc  string
	File  string

	rand *rand.Rand
}

func newSparse(n int64) Generator {
	return &UniqueRandomGenerator{
		Total: n,
		Min:   1,
		Max:   100_000_000,
		Desc:  "Sparse unique integers in [1, 100000000]",
		File:  "data_100k_sparse.txt",
	}
}

func newNegative(n int64) Generator {
	return &UniqueRandomGenerator{
		Total: n,
		Min:   -500_000,
		Max:   500_000,
		Desc:  "Unique integers in [-500000, 500000]",
		File:  "data_negative_numbers.txt",
	}
}

func (g *UniqueRandomGenerator) Init(r *rand.Rand) {
	g.rand = r
}

func (g *UniqueRandomGenerator) Emit(w io.Writer) error {
	span := g.Max - g.Min + 1

	// The range must hold enough distinct values, or the uniqueness
	// loop below can never fill the set.
	if g.Total > span {
		return fmt.Errorf("count %d exceeds range size %d", g.Total, span)
	}

	// Retry draws until the set reaches the target size. Duplicates are
	// simply discarded, so the emitted count always equals Total.
	seen := make(map[int64]struct{}, g.Total)
	for int64(len(seen)) < g.Total {
		seen[g.Min+g.rand.Int64N(span)] = struct{}{}
	}

	bw := bufio.NewWriter(w)
	for v := range seen {
		if err := writeLine(bw, v); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func (g *UniqueRandomGenerator) Description() string {
	return g.Desc
}

func (g *UniqueRandomGenerator) Count() int64 {
	return g.Total
}

func (g *UniqueRandomGenerator) Filename() string {
	return g.File
}

func (g *UniqueRandomGenerator) Range() (int64, int64) {
	return g.Min, g.Max
}

func (g *UniqueRandomGenerator) Unique() bool { return true }

func (g *UniqueRandomGenerator) Sorted() bool { return false }
