package generator

import (
	"bufio"
	"io"
	"math/rand/v2"
)

// DuplicateHeavyGenerator draws Total uniform integers from [Min, Max] and
// emits each draw immediately in draw order. The range is far smaller than
// the count, so heavy repetition is expected and intentional.
type DuplicateHeavyGenerator struct {
	Total int64
	Min   int64
	Max   int64

	rand *rand.Rand
}

func newDuplicates(n int64) Generator {
	return &DuplicateHeavyGenerator{Total: n, Min: 1, Max: 1000}
}

func (g *DuplicateHeavyGenerator) Init(r *rand.Rand) {
	g.rand = r
}

func (g *DuplicateHeavyGenerator) Emit(w io.Writer) error {
	span := g.Max - g.Min + 1

	bw := bufio.NewWriter(w)
	for i := int64(0); i < g.Total; i++ {
		if err := writeLine(bw, g.Min+g.rand.Int64N(span)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func (g *DuplicateHeavyGenerator) Description() string {
	return "Duplicate-heavy integers in [1, 1000], draw order"
}

func (g *DuplicateHeavyGenerator) Count() int64 {
	return g.Total
}

func (g *DuplicateHeavyGenerator) Filename() string {
	return "data_large_duplicates.txt"
}

func (g *DuplicateHeavyGenerator) Range() (int64, int64) {
	return g.Min, g.Max
}

func (g *DuplicateHeavyGenerator) Unique() bool { return false }

func (g *DuplicateHeavyGenerator) Sorted() bool { return false }
