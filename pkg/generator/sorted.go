package generator

import (
	"bufio"
	"io"
	"math/rand/v2"
	"strconv"
)

// SortedAscGenerator emits the integers 1..N in increasing order.
// No randomness: the dataset is fully determined by N.
type SortedAscGenerator struct {
	N int64
}

func newSortedAsc(n int64) Generator {
	return &SortedAscGenerator{N: n}
}

func (g *SortedAscGenerator) Init(_ *rand.Rand) {}

func (g *SortedAscGenerator) Emit(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for i := int64(1); i <= g.N; i++ {
		if err := writeLine(bw, i); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func (g *SortedAscGenerator) Description() string {
	return "Integers 1..N sorted ascending"
}

func (g *SortedAscGenerator) Count() int64 {
	return g.N
}

func (g *SortedAscGenerator) Filename() string {
	return "data_100k_sorted_asc.txt"
}

func (g *SortedAscGenerator) Range() (int64, int64) {
	return 1, g.N
}

func (g *SortedAscGenerator) Unique() bool { return true }

func (g *SortedAscGenerator) Sorted() bool { return true }

// SortedDescGenerator emits the integers N..1 in decreasing order.
type SortedDescGenerator struct {
	N int64
}

func newSortedDesc(n int64) Generator {
	return &SortedDescGenerator{N: n}
}

func (g *SortedDescGenerator) Init(_ *rand.Rand) {}

func (g *SortedDescGenerator) Emit(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for i := g.N; i >= 1; i-- {
		if err := writeLine(bw, i); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func (g *SortedDescGenerator) Description() string {
	return "Integers N..1 sorted descending"
}

func (g *SortedDescGenerator) Count() int64 {
	return g.N
}

func (g *SortedDescGenerator) Filename() string {
	return "data_100k_sorted_desc.txt"
}

func (g *SortedDescGenerator) Range() (int64, int64) {
	return 1, g.N
}

func (g *SortedDescGenerator) Unique() bool { return true }

// Sorted reports ascending order, which descending emission is not
func (g *SortedDescGenerator) Sorted() bool { return false }

// writeLine writes one integer followed by a newline
func writeLine(bw *bufio.Writer, v int64) error {
	if _, err := bw.WriteString(strconv.FormatInt(v, 10)); err != nil {
		return err
	}
	return bw.WriteByte('\n')
}
