package mcp

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"vecstats/internal/piglatin"
	"vecstats/internal/stats"
	"vecstats/internal/visuals"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog/log"
)

// ValuesInput is the argument of the sequence tools.
type ValuesInput struct {
	Values []int `json:"values" jsonschema:"the integers to process"`
}

// PigLatinInput is the argument of the pig_latin tool.
type PigLatinInput struct {
	Text string `json:"text" jsonschema:"English text to translate"`
}

// SortOutput is the result of sort_sequence.
type SortOutput struct {
	Sorted      []int `json:"sorted"`
	Passes      int   `json:"passes"`
	Comparisons int   `json:"comparisons"`
	Swaps       int   `json:"swaps"`
}

// FrequencyEntry is one row of the frequency table.
type FrequencyEntry struct {
	Value int `json:"value"`
	Count int `json:"count"`
}

// AnalyzeOutput is the result of analyze_sequence.
type AnalyzeOutput struct {
	Sorted      []int                  `json:"sorted"`
	Length      int                    `json:"length"`
	Median      *int                   `json:"median"`
	Frequencies []FrequencyEntry       `json:"frequencies"`
	Mode        *stats.ModeResult[int] `json:"mode"`
	Warning     string                 `json:"warning,omitempty"`
	Chart       string                 `json:"chart,omitempty"`
}

// PigLatinOutput is the result of pig_latin.
type PigLatinOutput struct {
	Text string `json:"text"`
}

func (s *Server) checkLength(values []int) error {
	if len(values) > s.cfg.MaxValues {
		return fmt.Errorf("too many values: got %d, limit is %d", len(values), s.cfg.MaxValues)
	}
	return nil
}

func (s *Server) handleSortSequence(ctx context.Context, req *mcpsdk.CallToolRequest, in ValuesInput) (*mcpsdk.CallToolResult, SortOutput, error) {
	if err := s.checkLength(in.Values); err != nil {
		return nil, SortOutput{}, err
	}

	values := slices.Clone(in.Values)
	if values == nil {
		values = []int{}
	}
	st := stats.Sort(values)

	log.Debug().Int("length", len(values)).Int("passes", st.Passes).Int("swaps", st.Swaps).Msg("sort_sequence")

	return nil, SortOutput{
		Sorted:      values,
		Passes:      st.Passes,
		Comparisons: st.Comparisons,
		Swaps:       st.Swaps,
	}, nil
}

func (s *Server) handleAnalyzeSequence(ctx context.Context, req *mcpsdk.CallToolRequest, in ValuesInput) (*mcpsdk.CallToolResult, AnalyzeOutput, error) {
	if err := s.checkLength(in.Values); err != nil {
		return nil, AnalyzeOutput{}, err
	}

	res, err := stats.Analyze(slices.Clone(in.Values))

	out := AnalyzeOutput{
		Sorted: res.Sorted,
		Length: res.Length,
		Median: res.Median,
		Mode:   res.Mode,
	}
	out.Frequencies = make([]FrequencyEntry, 0, len(res.Frequencies))
	for _, k := range res.Frequencies.Keys() {
		out.Frequencies = append(out.Frequencies, FrequencyEntry{Value: k, Count: res.Frequencies[k]})
	}

	if err != nil {
		if !errors.Is(err, stats.ErrEmptyInput) {
			return nil, AnalyzeOutput{}, err
		}
		out.Warning = err.Error()
		log.Warn().Err(err).Msg("analyze_sequence called with empty input")
	}

	if s.cfg.EnableMermaidCharts {
		out.Chart = visuals.GenerateFrequencyChart(res.Frequencies)
	}

	log.Debug().Int("length", out.Length).Bool("hasMedian", out.Median != nil).Msg("analyze_sequence")
	return nil, out, nil
}

func (s *Server) handlePigLatin(ctx context.Context, req *mcpsdk.CallToolRequest, in PigLatinInput) (*mcpsdk.CallToolResult, PigLatinOutput, error) {
	return nil, PigLatinOutput{Text: piglatin.Translate(in.Text)}, nil
}
