package commands

import (
	"os"
	"os/signal"
	"syscall"

	"vecstats/internal/mcp"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server on stdio",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		log.Info().Str("version", Version).Msg("MCP server starting Stdio loop")
		return mcp.NewServer(cfg, Version).Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
