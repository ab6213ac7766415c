package search

// Interpolation runs an interpolation search over arr, which must be
// sorted ascending. The probe position is estimated from the target's
// value relative to the bounds of the remaining range, which beats
// binary search on uniformly distributed data. Duplicate values are
// tolerated. Returns an index holding target, or -1 if absent.
func Interpolation(arr []int64, target int64) int {
	low, high := 0, len(arr)-1

	for low <= high && target >= arr[low] && target <= arr[high] {
		if low == high {
			if arr[low] == target {
				return low
			}
			return -1
		}

		// Equal bounds with low != high means a run of duplicates; the
		// loop condition already pinned target to that value.
		if arr[high] == arr[low] {
			return low
		}

		pos := low + int(int64(high-low)*(target-arr[low])/(arr[high]-arr[low]))
		if pos < low || pos > high {
			return -1
		}

		switch {
		case arr[pos] == target:
			return pos
		case arr[pos] < target:
			low = pos + 1
		default:
			high = pos - 1
		}
	}
	return -1
}
