package search

import (
	"slices"
	"sort"
)

// Closest returns up to k values from arr nearest to target, ordered by
// absolute distance and then by value for ties. arr must be sorted
// ascending. Used to give context when a search misses.
func Closest(arr []int64, target int64, k int) []int64 {
	if len(arr) == 0 || k <= 0 {
		return nil
	}

	// Two-pointer expansion outwards from the insertion point.
	hi := sort.Search(len(arr), func(i int) bool { return arr[i] >= target })
	lo := hi - 1

	out := make([]int64, 0, k)
	for len(out) < k && (lo >= 0 || hi < len(arr)) {
		switch {
		case lo < 0:
			out = append(out, arr[hi])
			hi++
		case hi >= len(arr):
			out = append(out, arr[lo])
			lo--
		case target-arr[lo] <= arr[hi]-target:
			out = append(out, arr[lo])
			lo--
		default:
			out = append(out, arr[hi])
			hi++
		}
	}

	slices.SortFunc(out, func(a, b int64) int {
		da, db := absDist(a, target), absDist(b, target)
		switch {
		case da < db:
			return -1
		case da > db:
			return 1
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	})
	return out
}

func absDist(v, target int64) int64 {
	if v >= target {
		return v - target
	}
	return target - v
}
