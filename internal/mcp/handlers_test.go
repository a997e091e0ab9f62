package mcp

import (
	"context"
	"slices"
	"strings"
	"testing"

	"vecstats/internal/config"
	"vecstats/internal/stats"
)

func testServer(charts bool) *Server {
	return NewServer(&config.AppConfig{
		MaxValues:           10,
		EnableMermaidCharts: charts,
	}, "test")
}

func TestHandleSortSequence(t *testing.T) {
	s := testServer(false)
	input := []int{4, 2, 7, 1}

	_, out, err := s.handleSortSequence(context.Background(), nil, ValuesInput{Values: input})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !slices.Equal(out.Sorted, []int{1, 2, 4, 7}) {
		t.Errorf("Sorted = %v", out.Sorted)
	}
	if !slices.Equal(input, []int{4, 2, 7, 1}) {
		t.Errorf("tool input was mutated: %v", input)
	}
	if out.Passes != 4 || out.Swaps != 4 || out.Comparisons != 12 {
		t.Errorf("unexpected counters: %+v", out)
	}
}

func TestHandleSortSequence_TooMany(t *testing.T) {
	s := testServer(false)
	_, _, err := s.handleSortSequence(context.Background(), nil, ValuesInput{Values: make([]int, 11)})
	if err == nil || !strings.Contains(err.Error(), "too many values") {
		t.Errorf("expected too many values error, got %v", err)
	}
}

func TestHandleAnalyzeSequence(t *testing.T) {
	s := testServer(true)

	_, out, err := s.handleAnalyzeSequence(context.Background(), nil, ValuesInput{Values: []int{50, 38, 32, 37, 19, 19, 102}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Length != 7 || out.Median == nil || *out.Median != 37 {
		t.Errorf("unexpected median/length: %+v", out)
	}
	if out.Mode == nil || *out.Mode != (stats.ModeResult[int]{Value: 19, Count: 2}) {
		t.Errorf("Mode = %+v, want 19 x2", out.Mode)
	}
	if len(out.Frequencies) != 6 || out.Frequencies[0] != (FrequencyEntry{Value: 19, Count: 2}) {
		t.Errorf("Frequencies = %+v", out.Frequencies)
	}
	if !strings.HasPrefix(out.Chart, "```mermaid") {
		t.Errorf("expected mermaid chart, got %q", out.Chart)
	}
	if out.Warning != "" {
		t.Errorf("unexpected warning %q", out.Warning)
	}
}

func TestHandleAnalyzeSequence_Empty(t *testing.T) {
	s := testServer(false)

	_, out, err := s.handleAnalyzeSequence(context.Background(), nil, ValuesInput{})
	if err != nil {
		t.Fatalf("empty input should not fail the tool: %v", err)
	}
	if out.Mode != nil || out.Median != nil {
		t.Errorf("expected absent mode and median: %+v", out)
	}
	if out.Sorted == nil || len(out.Sorted) != 0 {
		t.Errorf("Sorted = %#v, want empty slice", out.Sorted)
	}
	if !strings.Contains(out.Warning, "empty") {
		t.Errorf("Warning = %q", out.Warning)
	}
	if out.Chart != "" {
		t.Errorf("charts disabled but got %q", out.Chart)
	}
}

func TestHandleAnalyzeSequence_Even(t *testing.T) {
	s := testServer(false)

	_, out, err := s.handleAnalyzeSequence(context.Background(), nil, ValuesInput{Values: []int{4, 2, 7, 1}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Median != nil {
		t.Errorf("Median = %d, want absent for even length", *out.Median)
	}
}

func TestHandlePigLatin(t *testing.T) {
	s := testServer(false)
	_, out, err := s.handlePigLatin(context.Background(), nil, PigLatinInput{Text: "the end"})
	if err != nil {
		t.Fatal(err)
	}
	if out.Text != "ethay endyay" {
		t.Errorf("Text = %q", out.Text)
	}
}

func TestValuesSchema_MaxItems(t *testing.T) {
	s := testServer(false)
	schema, err := s.valuesSchema()
	if err != nil {
		t.Fatal(err)
	}
	prop, ok := schema.Properties["values"]
	if !ok {
		t.Fatal("schema has no values property")
	}
	if prop.MaxItems == nil || *prop.MaxItems != 10 {
		t.Errorf("MaxItems = %v, want 10", prop.MaxItems)
	}
}
