package dataset

// Summary describes the shape of a loaded dataset
type Summary struct {
	Count     int
	Distinct  int
	Min       int64
	Max       int64
	SortedAsc bool
}

// Stats computes a Summary for values. An empty dataset yields a zero
// Summary with SortedAsc true.
func Stats(values []int64) Summary {
	s := Summary{Count: len(values), SortedAsc: true}
	if len(values) == 0 {
		return s
	}

	s.Min = values[0]
	s.Max = values[0]
	seen := make(map[int64]struct{}, len(values))
	for i, v := range values {
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
		if i > 0 && values[i-1] > v {
			s.SortedAsc = false
		}
		seen[v] = struct{}{}
	}
	s.Distinct = len(seen)
	return s
}

// IsSortedUnique reports whether values is strictly increasing, the
// precondition for the search algorithms.
func IsSortedUnique(values []int64) bool {
	for i := 1; i < len(values); i++ {
		if values[i-1] >= values[i] {
			return false
		}
	}
	return true
}
