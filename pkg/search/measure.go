package search

import "time"

// Func is a search algorithm over a sorted dataset
type Func func(arr []int64, target int64) int

// Measure runs fn once and reports the found index and wall-clock
// duration of the call.
func Measure(fn Func, arr []int64, target int64) (int, time.Duration) {
	start := time.Now()
	idx := fn(arr, target)
	return idx, time.Since(start)
}
