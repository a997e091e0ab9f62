package commands

import (
	"fmt"
	"strings"

	"vecstats/internal/piglatin"

	"github.com/spf13/cobra"
)

var pigLatinCmd = &cobra.Command{
	Use:   "piglatin [words...]",
	Short: "Translate text into pig latin",
	Long:  "Translate the given words into pig latin. Without arguments the sentence in PIGLATIN_TEXT is used.",
	RunE: func(cmd *cobra.Command, args []string) error {
		text := cfg.PigLatinText
		if len(args) > 0 {
			text = strings.Join(args, " ")
		}
		_, err := fmt.Fprintln(cmd.OutOrStdout(), piglatin.Translate(text))
		return err
	},
}

func init() {
	rootCmd.AddCommand(pigLatinCmd)
}
