package visuals

import (
	"fmt"
	"math"
	"strings"

	"vecstats/internal/stats"
)

// GenerateFrequencyChart creates a Mermaid bar chart of how often each value occurs.
func GenerateFrequencyChart(freq stats.FrequencyTable[int]) string {
	if len(freq) == 0 {
		return ""
	}

	var labels []string
	var values []string

	maxVal := 0
	for _, k := range freq.Keys() {
		count := freq[k]
		labels = append(labels, fmt.Sprintf("\"%d\"", k))
		values = append(values, fmt.Sprintf("%d", count))
		if count > maxVal {
			maxVal = count
		}
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("xychart-beta\n")
	sb.WriteString("    title \"Value Frequencies\"\n")
	sb.WriteString(fmt.Sprintf("    x-axis [%s]\n", strings.Join(labels, ", ")))
	sb.WriteString(fmt.Sprintf("    y-axis \"Occurrences\" 0 --> %d\n", maxVal+int(math.Max(1, float64(maxVal)*0.2))))
	sb.WriteString(fmt.Sprintf("    bar [%s]\n", strings.Join(values, ", ")))
	sb.WriteString("```")
	return sb.String()
}
