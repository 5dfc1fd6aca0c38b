package commands

import (
	"fmt"

	"github.com/benvon/google-auth/internal/config"
	"github.com/benvon/google-auth/internal/session"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// NewTokenCmd creates the token command
func NewTokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue and verify session tokens",
		Long:  "Issue a session token for a user id, or verify an existing token against the configured secret",
	}

	cmd.AddCommand(newTokenIssueCmd())
	cmd.AddCommand(newTokenVerifyCmd())

	return cmd
}

func newTokenIssueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "issue <user-id>",
		Short: "Issue a session token for a user id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid user id: %w", err)
			}

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			codec := session.NewCodec(cfg.JWTSecret, session.DefaultTTL)
			token, err := codec.Issue(userID)
			if err != nil {
				return fmt.Errorf("failed to issue token: %w", err)
			}

			fmt.Println(token)
			return nil
		},
	}
}

func newTokenVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <token>",
		Short: "Verify a session token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			codec := session.NewCodec(cfg.JWTSecret, session.DefaultTTL)
			userID, err := codec.Verify(args[0])
			if err != nil {
				return fmt.Errorf("token is invalid: %w", err)
			}

			fmt.Printf("Token is valid\nUser ID: %s\n", userID)
			return nil
		},
	}
}
