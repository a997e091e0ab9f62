// Package report renders an analysis as the plain-text console report.
package report

import (
	"bufio"
	"fmt"
	"io"

	"vecstats/internal/stats"
)

// Write prints the sorted sequence, its length, median, frequency table and mode.
func Write(w io.Writer, r stats.Result[int]) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "Sorted: %v\n", r.Sorted)
	fmt.Fprintf(bw, "Length: %d\n", r.Length)

	if r.Median != nil {
		fmt.Fprintf(bw, "Median: %d\n", *r.Median)
	} else {
		fmt.Fprintln(bw, "Median: not computed (even length)")
	}

	fmt.Fprintln(bw, "Frequencies:")
	for _, k := range r.Frequencies.Keys() {
		fmt.Fprintf(bw, "  %d: %d\n", k, r.Frequencies[k])
	}

	if r.Mode != nil {
		fmt.Fprintf(bw, "Mode: %d (occurs %d %s)\n", r.Mode.Value, r.Mode.Count, plural(r.Mode.Count, "time", "times"))
	} else {
		fmt.Fprintln(bw, "Mode: not computed (empty input)")
	}

	return bw.Flush()
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
