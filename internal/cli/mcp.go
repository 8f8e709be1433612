package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	fokusmcp "github.com/fokus-app/fokus/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  "Commands for running the fokus MCP (Model Context Protocol) server.",
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the fokus MCP server on stdio",
	Long: `Start the fokus MCP server on stdio transport.

The server exposes the focus manager as MCP tools an AI assistant can
call: add_task, list_tasks, move_to_today, start_focus, complete_task,
stop_early, get_progress, get_report, get_analytics, get_accountability.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Store == nil || Sessions == nil {
			return fmt.Errorf("services not initialized")
		}

		srv := fokusmcp.NewServer(Store, Repo, Sessions, Reporter, appVersion)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		if err := srv.Run(ctx); err != nil {
			return fmt.Errorf("running MCP server: %w", err)
		}

		return nil
	},
}

func init() {
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}
