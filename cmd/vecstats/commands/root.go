package commands

import (
	"vecstats/internal/config"
	"vecstats/internal/logging"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	// Version, Commit, and BuildDate are set at build time via ldflags.
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"

	verbose bool
	cfg     *config.AppConfig
)

var rootCmd = &cobra.Command{
	Use:   "vecstats",
	Short: "vecstats sorts an integer sample and reports its median and mode",
	Long: `vecstats sorts a sequence of integers with an adjacent-swap (bubble) sort, then reports
the sorted sequence, its length, the median (odd lengths only), the frequency table and the mode.

Without a subcommand the sample configured in SAMPLE_VALUES is analyzed.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logging.Init(verbose); err != nil {
			return err
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}

		log.Debug().
			Str("version", Version).
			Str("commit", Commit).
			Str("buildDate", BuildDate).
			Msg("vecstats starting")
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnalysis(cmd.OutOrStdout(), cfg.SampleValues)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging (includes every sort comparison)")
}
