package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"vecstats/internal/config"
	"vecstats/internal/report"
	"vecstats/internal/stats"
	"vecstats/internal/visuals"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [values...]",
	Short: "Sort the given integers and report median and mode",
	Example: `  vecstats analyze 50 38 32 37 19 19 102
  vecstats analyze 4,2,7,1`,
	RunE: func(cmd *cobra.Command, args []string) error {
		values, err := config.ParseValues(strings.Join(args, " "))
		if err != nil {
			return err
		}
		return runAnalysis(cmd.OutOrStdout(), values)
	},
}

func runAnalysis(out io.Writer, values []int) error {
	res, err := stats.AnalyzeTraced(values, logStep)
	if err != nil {
		if !errors.Is(err, stats.ErrEmptyInput) {
			return err
		}
		log.Warn().Err(err).Msg("Nothing to analyze")
	}

	log.Debug().
		Int("length", res.Length).
		Int("passes", res.Sort.Passes).
		Int("comparisons", res.Sort.Comparisons).
		Int("swaps", res.Sort.Swaps).
		Msg("Sort finished")

	if err := report.Write(out, res); err != nil {
		return err
	}

	if cfg != nil && cfg.EnableMermaidCharts {
		if chart := visuals.GenerateFrequencyChart(res.Frequencies); chart != "" {
			if _, err := fmt.Fprintf(out, "\n%s\n", chart); err != nil {
				return err
			}
		}
	}
	return nil
}

func logStep(s stats.Step[int]) {
	log.Debug().
		Int("pass", s.Pass).
		Int("cursor", s.Cursor).
		Int("left", s.Left).
		Int("right", s.Right).
		Bool("swapped", s.Swapped).
		Msg("compare")
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
