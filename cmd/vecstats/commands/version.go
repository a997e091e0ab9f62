package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "vecstats %s (commit %s, built %s)\n", Version, Commit, BuildDate)
		return err
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
