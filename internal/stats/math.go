package stats

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Median returns the middle element of an already sorted sequence.
// It reports false for even lengths, including empty input; no average is taken.
func Median[T constraints.Integer](sorted []T) (T, bool) {
	n := len(sorted)
	if n%2 == 0 {
		var zero T
		return zero, false
	}
	return sorted[n/2], true
}

// Frequencies counts the occurrences of every value.
func Frequencies[T constraints.Integer](values []T) FrequencyTable[T] {
	freq := make(FrequencyTable[T], len(values))
	for _, v := range values {
		freq[v]++
	}
	return freq
}

// Mode returns the most frequent value. Ties go to the smallest value.
func Mode[T constraints.Integer](values []T) (ModeResult[T], error) {
	if len(values) == 0 {
		return ModeResult[T]{}, ErrEmptyInput
	}
	return modeOf(Frequencies(values)), nil
}

func modeOf[T constraints.Integer](freq FrequencyTable[T]) ModeResult[T] {
	var best ModeResult[T]
	for _, k := range freq.Keys() {
		if c := freq[k]; c > best.Count {
			best = ModeResult[T]{Value: k, Count: c}
		}
	}
	return best
}

// Analyze sorts values in place and computes median, frequencies and mode.
// For empty input the result is still filled in and the error wraps ErrEmptyInput.
func Analyze[T constraints.Integer](values []T) (Result[T], error) {
	return AnalyzeTraced(values, nil)
}

// AnalyzeTraced is Analyze with a sort trace callback.
func AnalyzeTraced[T constraints.Integer](values []T, trace func(Step[T])) (Result[T], error) {
	if values == nil {
		values = []T{}
	}

	res := Result[T]{
		Sorted: values,
		Length: len(values),
		Sort:   SortTraced(values, trace),
	}

	if m, ok := Median(values); ok {
		res.Median = &m
	}

	res.Frequencies = Frequencies(values)
	if len(values) == 0 {
		return res, fmt.Errorf("mode not computed: %w", ErrEmptyInput)
	}

	mode := modeOf(res.Frequencies)
	res.Mode = &mode
	return res, nil
}
