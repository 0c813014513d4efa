// ABOUTME: CLI commands for managing sets within an exercise.
// ABOUTME: Supports add and delete subcommands with client-side validation.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/reps/internal/models"
)

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Manage sets in an exercise",
	Long: `Add and remove sets within an exercise.

A set records one performed unit: its type (WARMUP, REGULAR, SUPERSET),
the weight used, and the repetitions completed.`,
}

var setAddCmd = &cobra.Command{
	Use:   "add <session-id> <exercise-id> <type> <weight> <reps>",
	Short: "Add a set to an exercise",
	Long: `Add a set to an existing exercise.

Examples:
  reps set add 3f2a 9c1b WARMUP 40 12
  reps set add 3f2a 9c1b REGULAR 82.5 5`,
	Args: cobra.ExactArgs(5),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}

		sessionID, exerciseID := args[0], args[1]
		setType := strings.ToUpper(args[2])
		if !models.IsValidSetType(setType) {
			return fmt.Errorf("invalid set type %q: must be WARMUP, REGULAR, or SUPERSET", args[2])
		}

		weight, err := strconv.ParseFloat(args[3], 64)
		if err != nil || weight <= 0 {
			return fmt.Errorf("weight must be a positive number, got %q", args[3])
		}
		reps, err := strconv.Atoi(args[4])
		if err != nil || reps <= 0 {
			return fmt.Errorf("reps must be a positive integer, got %q", args[4])
		}

		set, err := apiClient.CreateSet(cmd.Context(), exerciseID, models.SetType(setType), weight, reps)
		if err != nil {
			return fmt.Errorf("failed to add set: %w", err)
		}
		sessions.AddSetToExercise(sessionID, exerciseID, set)

		color.Green("✓ Added %s set", set.Type)
		fmt.Printf("  %.1f x %d (ID: %s)\n", set.Weight, set.Reps, set.ID)
		return nil
	},
}

var setDeleteCmd = &cobra.Command{
	Use:     "delete <session-id> <exercise-id> <set-id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a set",
	Args:    cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}

		sessionID, exerciseID, setID := args[0], args[1], args[2]
		if err := apiClient.DeleteSet(cmd.Context(), setID); err != nil {
			return fmt.Errorf("failed to delete set: %w", err)
		}
		sessions.DeleteSetFromExercise(sessionID, exerciseID, setID)

		color.Yellow("✗ Deleted set %s", setID)
		return nil
	},
}

func init() {
	setCmd.AddCommand(setAddCmd)
	setCmd.AddCommand(setDeleteCmd)
	rootCmd.AddCommand(setCmd)
}
