// Package search implements block and interpolation search over
// ascending-sorted integer datasets, plus timing helpers.
package search

import "math"

// Jump runs a jump search over arr, which must be sorted ascending.
// It jumps ahead in sqrt(n) blocks until the block that could hold
// target is found, then scans that block linearly. Returns the index
// of target, or -1 if absent.
func Jump(arr []int64, target int64) int {
	n := len(arr)
	if n == 0 {
		return -1
	}

	step := int(math.Sqrt(float64(n)))
	if step < 1 {
		step = 1
	}

	// Find the block whose last element is >= target.
	prev := 0
	for next := step; prev < n && arr[min(next, n)-1] < target; next += step {
		prev = next
		if prev >= n {
			return -1
		}
	}

	// Linear scan within the block.
	for prev < n && arr[prev] < target {
		prev++
	}

	if prev < n && arr[prev] == target {
		return prev
	}
	return -1
}
