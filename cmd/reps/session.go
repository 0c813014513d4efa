// ABOUTME: CLI commands for managing workout sessions.
// ABOUTME: Supports add, list, show, and delete subcommands.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/reps/internal/models"
)

var sessionDate string

var sessionCmd = &cobra.Command{
	Use:     "session",
	Aliases: []string{"s"},
	Short:   "Manage workout sessions",
	Long: `Manage workout sessions.

A session is one workout: a name, a time, and the exercises performed.
Sessions list newest first, as the server returns them.

WORKFLOW:

  1. Create a session:   reps session add "Push Day"
  2. Add exercises:      reps exercise add <session-id> BENCH_PRESS
  3. Add sets:           reps set add <session-id> <exercise-id> REGULAR 80 5
  4. Review:             reps session show <session-id>`,
}

var sessionAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a new session",
	Long: `Create a new workout session.

Examples:
  reps session add "Push Day"
  reps session add "Morning Run" --date 2026-03-01
  reps session add "Leg Day" --date "2026-03-01 07:30"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}

		name := args[0]
		if name == "" {
			return fmt.Errorf("session name must not be empty")
		}

		var date *time.Time
		if sessionDate != "" {
			t, err := parseTime(sessionDate)
			if err != nil {
				return err
			}
			date = &t
		}

		sess, err := apiClient.CreateSession(cmd.Context(), name, date)
		if err != nil {
			return fmt.Errorf("failed to create session: %w", err)
		}

		// Server confirmed; prepend to keep newest-first ordering.
		snap := sessions.Snapshot()
		sessions.SetSessions(append([]models.Session{sess}, snap.Sessions...))

		color.Green("✓ Created session %q", sess.Name)
		fmt.Printf("  ID: %s\n", sess.ID)
		fmt.Printf("  Time: %s\n", sess.Time.Local().Format("2006-01-02 15:04"))
		return nil
	},
}

var sessionListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List sessions, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}

		snap := sessions.Snapshot()
		if len(snap.Sessions) == 0 {
			fmt.Println("No sessions yet.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, sess := range snap.Sessions {
			setCount := 0
			for _, ex := range sess.Exercises {
				setCount += len(ex.Sets)
			}
			fmt.Printf("%s %s %s %d exercise(s), %d set(s)\n",
				faint.Sprint(sess.ID),
				faint.Sprint(sess.Time.Local().Format("2006-01-02 15:04")),
				padRight(sess.Name, 20),
				len(sess.Exercises), setCount)
		}
		return nil
	},
}

var sessionShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a session's exercises and sets",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}

		sess, ok := sessions.Session(args[0])
		if !ok {
			return fmt.Errorf("session not found: %s", args[0])
		}

		faint := color.New(color.Faint)
		fmt.Printf("Session: %s\n", sess.Name)
		fmt.Printf("Time: %s\n", sess.Time.Local().Format("2006-01-02 15:04"))
		for _, ex := range sess.Exercises {
			fmt.Printf("\n%s %s\n", models.FormatExerciseName(ex.Name), faint.Sprint(ex.ID))
			for _, set := range ex.Sets {
				fmt.Printf("  %s %s %.1f x %d\n",
					faint.Sprint(set.ID), padRight(string(set.Type), 9), set.Weight, set.Reps)
			}
		}
		return nil
	},
}

var sessionDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a session and everything in it",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}

		sessionID := args[0]
		sess, ok := sessions.Session(sessionID)
		if !ok {
			return fmt.Errorf("session not found: %s", sessionID)
		}

		if err := apiClient.DeleteSession(cmd.Context(), sessionID); err != nil {
			return fmt.Errorf("failed to delete session: %w", err)
		}
		sessions.DeleteSession(sessionID)

		color.Yellow("✗ Deleted session %q", sess.Name)
		return nil
	},
}

func init() {
	sessionAddCmd.Flags().StringVarP(&sessionDate, "date", "d", "", "session time (defaults to now)")

	sessionCmd.AddCommand(sessionAddCmd)
	sessionCmd.AddCommand(sessionListCmd)
	sessionCmd.AddCommand(sessionShowCmd)
	sessionCmd.AddCommand(sessionDeleteCmd)
	rootCmd.AddCommand(sessionCmd)
}
