package generator

import (
	"io"
	"math/rand/v2"
)

// Generator produces one benchmark dataset as integer lines
type Generator interface {
	// Init initializes the generator with a per-instance random source
	// This eliminates lock contention on the global rand source
	Init(r *rand.Rand)

	// Emit writes the complete dataset to the writer, one integer per line
	Emit(w io.Writer) error

	// Description returns a human-readable description of the distribution
	Description() string

	// Count returns the number of lines the generator emits
	Count() int64

	// Filename returns the conventional output filename for the dataset
	Filename() string

	// Range returns the inclusive bounds of emitted values
	Range() (min, max int64)

	// Unique reports whether emitted values are all distinct
	Unique() bool

	// Sorted reports whether emission order is ascending
	Sorted() bool
}
