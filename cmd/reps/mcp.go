// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for Claude integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/harperreed/reps/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants like Claude to browse and edit your workout data
through a standardized protocol. The server communicates via stdin/stdout
and needs a logged-in session ('reps login' first).

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "reps": {
        "command": "reps",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  whoami                 Show the authenticated account
  list_sessions          List sessions with exercises and sets
  add_session            Create a workout session
  add_exercise           Add a catalog exercise to a session
  add_set                Add a set to an exercise
  delete_session         Delete a session and its subtree
  delete_exercise        Delete an exercise and its sets
  delete_set             Delete a single set
  list_exercise_catalog  Browse the exercise catalog

AVAILABLE RESOURCES:

  reps://sessions    Full cached session tree
  reps://catalog     Exercise catalog by muscle group`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}

		server, err := mcp.NewServer(manager, apiClient, sessions)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(cmd.Context())
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
