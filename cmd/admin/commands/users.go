package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/benvon/google-auth/internal/config"
	"github.com/benvon/google-auth/internal/database"
	"github.com/spf13/cobra"
)

// NewUsersCmd creates the users command
func NewUsersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage users",
	}

	cmd.AddCommand(newUsersListCmd())

	return cmd
}

func newUsersListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered users",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			db, err := database.New(cfg.DatabaseURL)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer func() {
				if err := db.Close(); err != nil {
					fmt.Fprintf(os.Stderr, "Warning: failed to close database: %v\n", err)
				}
			}()

			users, err := database.NewUserRepository(db).List(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list users: %w", err)
			}

			if len(users) == 0 {
				fmt.Println("No users registered")
				return nil
			}

			fmt.Printf("%d registered user(s):\n", len(users))
			for _, user := range users {
				fmt.Printf("  - ID: %s\n", user.ID)
				fmt.Printf("    Google ID: %s\n", user.GoogleID)
				fmt.Printf("    Name: %s\n", user.Name)
				fmt.Printf("    Email: %s\n", user.Email)
				fmt.Printf("    Created: %s\n", user.CreatedAt.Format("2006-01-02 15:04:05"))
				fmt.Println()
			}

			return nil
		},
	}
}
