// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for AI assistant integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"coachcal/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP lets AI assistants manage your roster and schedules through a
standardized protocol. The server communicates via stdin/stdout.

CLIENT CONFIGURATION:

  Add this to your MCP client config:

  {
    "mcpServers": {
      "coachcal": {
        "command": "coachcal",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  list_athletes        List the athlete roster
  list_plans           List stored workout plans
  upcoming_sessions    List an athlete's upcoming sessions
  assign_plan          Schedule recurring sessions (additive)
  reprogram_plan       Replace a plan's future sessions

AVAILABLE RESOURCES:

  coachcal://schedule  Upcoming sessions for every athlete
  coachcal://plans     All stored plans`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server := mcp.NewServer(athleteRepo, planRepo, scheduler, coachID)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
