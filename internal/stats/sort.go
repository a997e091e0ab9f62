package stats

import "golang.org/x/exp/constraints"

// Sort orders values ascending in place using repeated adjacent-swap passes.
func Sort[T constraints.Integer](values []T) SortStats {
	return SortTraced(values, nil)
}

// SortTraced is Sort with a callback invoked after every comparison.
// trace may be nil.
func SortTraced[T constraints.Integer](values []T, trace func(Step[T])) SortStats {
	var st SortStats
	if len(values) < 2 {
		return st
	}

	cursor := 0
	swapped := false
	st.Passes = 1

	for {
		if cursor == len(values)-1 {
			if !swapped {
				return st
			}
			cursor = 0
			swapped = false
			st.Passes++
			continue
		}

		left, right := values[cursor], values[cursor+1]
		st.Comparisons++

		didSwap := left > right
		if didSwap {
			values[cursor], values[cursor+1] = right, left
			swapped = true
			st.Swaps++
		}

		if trace != nil {
			trace(Step[T]{
				Pass:    st.Passes,
				Cursor:  cursor,
				Left:    left,
				Right:   right,
				Swapped: didSwap,
			})
		}

		cursor++
	}
}

// IsSorted reports whether every adjacent pair is in ascending order.
func IsSorted[T constraints.Integer](values []T) bool {
	for i := 1; i < len(values); i++ {
		if values[i-1] > values[i] {
			return false
		}
	}
	return true
}
