package stats

import (
	"errors"
	"maps"
	"slices"

	"golang.org/x/exp/constraints"
)

// ErrEmptyInput is returned when a statistic needs at least one value.
var ErrEmptyInput = errors.New("input sequence is empty")

// FrequencyTable maps each value to the number of times it occurs.
type FrequencyTable[T constraints.Integer] map[T]int

// Keys returns the table's values in ascending order.
func (f FrequencyTable[T]) Keys() []T {
	return slices.Sorted(maps.Keys(f))
}

// ModeResult is the most frequent value and its occurrence count.
type ModeResult[T constraints.Integer] struct {
	Value T   `json:"value"`
	Count int `json:"count"`
}

// SortStats counts the work done by one Sort call.
// Passes includes the final pass that confirms no swaps remain.
type SortStats struct {
	Passes      int `json:"passes"`
	Comparisons int `json:"comparisons"`
	Swaps       int `json:"swaps"`
}

// Step describes a single comparison made while sorting.
type Step[T constraints.Integer] struct {
	Pass    int
	Cursor  int
	Left    T
	Right   T
	Swapped bool
}

// Result holds everything Analyze computes for one sequence.
type Result[T constraints.Integer] struct {
	Sorted      []T               `json:"sorted"`
	Length      int               `json:"length"`
	Median      *T                `json:"median"`
	Frequencies FrequencyTable[T] `json:"frequencies"`
	Mode        *ModeResult[T]    `json:"mode"`
	Sort        SortStats         `json:"sort"`
}
