package main

import (
	"fmt"
	"os"

	"github.com/benvon/google-auth/cmd/admin/commands"
	"github.com/spf13/cobra"
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "google-auth-admin",
		Short: "Admin tool for the Google auth backend",
		Long:  "CLI tool for inspecting users, session tokens, and backend connectivity",
	}

	rootCmd.AddCommand(commands.NewUsersCmd())
	rootCmd.AddCommand(commands.NewTokenCmd())
	rootCmd.AddCommand(commands.NewTestCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
