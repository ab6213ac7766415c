package search

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

// sortedUnique builds a deterministic strictly-increasing dataset
func sortedUnique(n int, min, max int64) []int64 {
	r := rand.New(rand.NewPCG(11, 13))
	seen := make(map[int64]struct{}, n)
	for len(seen) < n {
		seen[min+r.Int64N(max-min+1)] = struct{}{}
	}
	values := make([]int64, 0, n)
	for v := range seen {
		values = append(values, v)
	}
	slices.Sort(values)
	return values
}

func TestSearchAgainstOracle(t *testing.T) {
	algos := map[string]Func{
		"jump":          Jump,
		"interpolation": Interpolation,
	}
	values := sortedUnique(2000, -10_000, 10_000)

	for name, fn := range algos {
		t.Run(name, func(t *testing.T) {
			// Every present value is found at its index
			for i, v := range values {
				assert.Equal(t, i, fn(values, v), "value %d", v)
			}

			// Absent values miss
			for target := values[0] - 5; target <= values[len(values)-1]+5; target += 7 {
				if _, ok := slices.BinarySearch(values, target); ok {
					continue
				}
				assert.Equal(t, -1, fn(values, target), "target %d", target)
			}
		})
	}
}

func TestSearchEdgeCases(t *testing.T) {
	algos := map[string]Func{
		"jump":          Jump,
		"interpolation": Interpolation,
	}

	for name, fn := range algos {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, -1, fn(nil, 5))
			assert.Equal(t, -1, fn([]int64{}, 5))

			single := []int64{7}
			assert.Equal(t, 0, fn(single, 7))
			assert.Equal(t, -1, fn(single, 8))
			assert.Equal(t, -1, fn(single, -8))

			values := []int64{-100, -3, 0, 42, 999}
			assert.Equal(t, -1, fn(values, -101), "below range")
			assert.Equal(t, -1, fn(values, 1000), "above range")
			assert.Equal(t, 0, fn(values, -100), "first")
			assert.Equal(t, 4, fn(values, 999), "last")
		})
	}
}

func TestSearchDuplicatedInput(t *testing.T) {
	algos := map[string]Func{
		"jump":          Jump,
		"interpolation": Interpolation,
	}

	for name, fn := range algos {
		t.Run(name, func(t *testing.T) {
			values := []int64{2, 2, 2, 5, 5, 9}

			idx := fn(values, 5)
			if assert.GreaterOrEqual(t, idx, 0) {
				assert.Equal(t, int64(5), values[idx])
			}

			idx = fn(values, 2)
			if assert.GreaterOrEqual(t, idx, 0) {
				assert.Equal(t, int64(2), values[idx])
			}

			assert.Equal(t, -1, fn(values, 3))

			// Every element equal: the probe bounds coincide
			allEqual := []int64{4, 4, 4}
			idx = fn(allEqual, 4)
			if assert.GreaterOrEqual(t, idx, 0) {
				assert.Equal(t, int64(4), allEqual[idx])
			}
			assert.Equal(t, -1, fn(allEqual, 5))
		})
	}
}

func TestClosest(t *testing.T) {
	values := []int64{1, 5, 9, 20, 21, 30}

	tests := []struct {
		name   string
		target int64
		k      int
		want   []int64
	}{
		{"between values", 10, 3, []int64{9, 5, 1}},
		{"exact tie broken by value", 7, 2, []int64{5, 9}},
		{"below all", -50, 2, []int64{1, 5}},
		{"above all", 100, 2, []int64{30, 21}},
		{"k exceeds dataset", 10, 10, []int64{9, 5, 1, 20, 21, 30}},
		{"zero k", 10, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Closest(values, tt.target, tt.k))
		})
	}
}

func TestClosestEmpty(t *testing.T) {
	assert.Nil(t, Closest(nil, 5, 3))
}

func TestMeasure(t *testing.T) {
	values := sortedUnique(500, 1, 100_000)

	idx, dur := Measure(Jump, values, values[42])
	assert.Equal(t, 42, idx)
	assert.GreaterOrEqual(t, dur.Nanoseconds(), int64(0))

	idx, _ = Measure(Interpolation, values, values[0]-1)
	assert.Equal(t, -1, idx)
}
