// ABOUTME: Root Cobra command for reps CLI.
// ABOUTME: Wires config, credential store, gateway, cache, and auth manager.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/harperreed/reps/internal/api"
	"github.com/harperreed/reps/internal/auth"
	"github.com/harperreed/reps/internal/cache"
	"github.com/harperreed/reps/internal/config"
	"github.com/harperreed/reps/internal/credential"
)

var (
	cfg       *config.Config
	credStore *credential.Store
	apiClient *api.Client
	sessions  *cache.Store
	manager   *auth.Manager
)

var rootCmd = &cobra.Command{
	Use:   "reps",
	Short: "Workout session logger with remote sync",
	Long: `Reps logs workout sessions - exercises and sets - against a remote
workout store, keeping a local view of your data in sync.

QUICK START:

  $ reps register Jo Lifter jo@example.com s3cret
  $ reps login jo@example.com s3cret
  $ reps session add "Push Day"         # Start a session
  $ reps exercise add <session> BENCH_PRESS
  $ reps set add <session> <exercise> REGULAR 80 5
  $ reps session list                   # Newest sessions first

SESSIONS, EXERCISES, SETS:

  A session is one workout. It holds exercises drawn from a fixed catalog
  (see 'reps exercise catalog'), and each exercise holds sets: a type
  (WARMUP, REGULAR, SUPERSET), a weight, and a rep count.

  Every change is written through: the server confirms first, then the
  local view updates. Nothing is recorded locally that the server refused.

ACCOUNT:

  $ reps whoami           # Show the logged-in account
  $ reps logout           # Clear the stored credential and local data

MCP INTEGRATION:

  Run 'reps mcp' to start the Model Context Protocol server for use with
  Claude Desktop or other MCP-compatible AI assistants:

  {
    "mcpServers": {
      "reps": { "command": "reps", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  The bearer credential is kept in a local store under ~/.local/share/reps.
  Workout data lives on the server; the local copy is a cache, refreshed on
  login and on every start while the credential is valid.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		credStore, err = credential.Open(cfg.GetDataDir())
		if err != nil {
			return fmt.Errorf("failed to open credential store: %w", err)
		}

		sessions = cache.NewStore()
		apiClient = api.NewClient(cfg.GetServer(), credStore)
		manager = auth.NewManager(credStore, apiClient, sessions)

		// Restore the session from the stored credential. Failures land in
		// the logged-out state; commands that need auth report that.
		manager.Bootstrap(cmd.Context())
		return nil
	},
}

// closeCredentialStore releases the badger store. Called from main after
// Execute returns; cobra skips PostRun hooks when a command fails, so the
// close cannot live there. Safe when no store was opened.
func closeCredentialStore() error {
	if credStore == nil {
		return nil
	}
	return credStore.Close()
}

// requireAuth fails commands that need a live session.
func requireAuth() error {
	if manager.State() != auth.StateAuthenticated {
		return fmt.Errorf("not logged in - run 'reps login'")
	}
	return nil
}

// parseTime accepts the date formats users actually type.
func parseTime(s string) (time.Time, error) {
	formats := []string{
		time.RFC3339,
		"2006-01-02T15:04",
		"2006-01-02 15:04",
		"2006-01-02",
	}
	for _, f := range formats {
		if t, err := time.ParseInLocation(f, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time format: %q", s)
}

// padRight pads s with spaces to width.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
