// ABOUTME: CLI commands for the account lifecycle.
// ABOUTME: Covers login, register, logout, and whoami.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login <email> <password>",
	Short: "Log in and sync sessions",
	Long: `Log in to the remote workout store.

On success the returned credential is stored locally and your full session
history is fetched. The credential is a bearer token with an embedded
expiry; once it lapses, reps returns to the logged-out state on its own.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := manager.Login(cmd.Context(), args[0], args[1]); err != nil {
			return err
		}

		user := manager.User()
		color.Green("✓ Logged in as %s %s", user.FirstName, user.LastName)
		fmt.Printf("  %d session(s) synced\n", len(sessions.Snapshot().Sessions))
		return nil
	},
}

var registerCmd = &cobra.Command{
	Use:   "register <first-name> <last-name> <email> <password>",
	Short: "Create an account and log in",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		first, last, email, password := args[0], args[1], args[2], args[3]

		if err := manager.Register(cmd.Context(), first, last, email, password); err != nil {
			return err
		}

		color.Green("✓ Account created, logged in as %s %s", first, last)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and clear local data",
	Long: `Clear the stored credential and the local session cache.

Safe to run when already logged out.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := manager.Logout(); err != nil {
			return fmt.Errorf("failed to clear credential: %w", err)
		}
		color.Yellow("✗ Logged out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in account",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}

		user := manager.User()
		fmt.Printf("%s %s <%s>\n", user.FirstName, user.LastName, user.Email)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}
