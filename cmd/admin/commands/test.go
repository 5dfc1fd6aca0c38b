package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/benvon/google-auth/internal/config"
	"github.com/benvon/google-auth/internal/database"
	"github.com/benvon/google-auth/internal/middleware"
	"github.com/spf13/cobra"
)

// NewTestCmd creates the test command
func NewTestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "test",
		Short: "Test backend connectivity",
		Long:  "Check that the database and redis are reachable with the configured URLs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			fmt.Print("Database... ")
			db, err := database.New(cfg.DatabaseURL)
			if err != nil {
				fmt.Println("FAILED")
				return fmt.Errorf("database check failed: %w", err)
			}
			defer func() {
				if err := db.Close(); err != nil {
					fmt.Fprintf(os.Stderr, "Warning: failed to close database: %v\n", err)
				}
			}()
			if err := db.Ping(ctx); err != nil {
				fmt.Println("FAILED")
				return fmt.Errorf("database ping failed: %w", err)
			}
			fmt.Println("OK")

			fmt.Print("Redis... ")
			redisClient, err := middleware.NewRedisClient(cfg.RedisURL)
			if err != nil {
				fmt.Println("FAILED")
				return fmt.Errorf("redis check failed: %w", err)
			}
			defer func() {
				if err := redisClient.Close(); err != nil {
					fmt.Fprintf(os.Stderr, "Warning: failed to close redis: %v\n", err)
				}
			}()
			fmt.Println("OK")

			return nil
		},
	}
}
