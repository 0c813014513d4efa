// ABOUTME: CLI commands for managing exercises within a session.
// ABOUTME: Supports add, delete, and catalog subcommands.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/reps/internal/models"
)

var catalogGroup string

var exerciseCmd = &cobra.Command{
	Use:     "exercise",
	Aliases: []string{"e", "ex"},
	Short:   "Manage exercises in a session",
	Long: `Add and remove exercises within a workout session.

Exercise names come from a fixed catalog grouped by muscle group; run
'reps exercise catalog' to browse it. Names are identifiers like
BENCH_PRESS or ROMANIAN_DEADLIFT.`,
}

var exerciseAddCmd = &cobra.Command{
	Use:   "add <session-id> <name>",
	Short: "Add a catalog exercise to a session",
	Long: `Add an exercise to an existing session.

Examples:
  reps exercise add 3f2a BENCH_PRESS
  reps exercise add 3f2a ROMANIAN_DEADLIFT`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}

		sessionID, name := args[0], args[1]
		if !models.IsValidExercise(name) {
			return fmt.Errorf("unknown exercise %q - see 'reps exercise catalog'", name)
		}

		ex, err := apiClient.CreateExercise(cmd.Context(), sessionID, name)
		if err != nil {
			return fmt.Errorf("failed to add exercise: %w", err)
		}
		sessions.AddExerciseToSession(sessionID, ex)

		color.Green("✓ Added %s", models.FormatExerciseName(ex.Name))
		fmt.Printf("  ID: %s\n", ex.ID)
		return nil
	},
}

var exerciseDeleteCmd = &cobra.Command{
	Use:     "delete <session-id> <exercise-id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete an exercise and its sets",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}

		sessionID, exerciseID := args[0], args[1]
		if err := apiClient.DeleteExercise(cmd.Context(), exerciseID); err != nil {
			return fmt.Errorf("failed to delete exercise: %w", err)
		}
		sessions.DeleteExerciseFromSession(sessionID, exerciseID)

		color.Yellow("✗ Deleted exercise %s", exerciseID)
		return nil
	},
}

var exerciseCatalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the exercise catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		faint := color.New(color.Faint)
		for _, group := range models.MuscleGroups() {
			if catalogGroup != "" && group != catalogGroup {
				continue
			}
			fmt.Println(group)
			for _, name := range models.ExercisesByGroup[group] {
				fmt.Printf("  %s %s\n", padRight(models.FormatExerciseName(name), 24), faint.Sprint(name))
			}
		}
		return nil
	},
}

func init() {
	exerciseCatalogCmd.Flags().StringVarP(&catalogGroup, "group", "g", "", "filter by muscle group")

	exerciseCmd.AddCommand(exerciseAddCmd)
	exerciseCmd.AddCommand(exerciseDeleteCmd)
	exerciseCmd.AddCommand(exerciseCatalogCmd)
	rootCmd.AddCommand(exerciseCmd)
}
