package main

import (
	"fmt"
	"time"

	"tourpay/internal/domain/user"
	"tourpay/internal/pkg/config"
	"tourpay/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	tokenRole    string
	tokenStaffID string
)

// tokenCmd mints staff access tokens. There is no login endpoint; operators get tokens here.
func tokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a staff access token",
		Long: `Mint a staff access token signed with JWT_SECRET.

Examples:
  reconcilectl token --role admin
  reconcilectl token --role operator --staff-id 5d0c2f8e-1a4b-4c1e-9d7a-2f3b4c5d6e7f`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			role, err := user.NewRole(tokenRole)
			if err != nil {
				return err
			}

			staffID := uuid.New()
			if tokenStaffID != "" {
				if staffID, err = uuid.Parse(tokenStaffID); err != nil {
					return fmt.Errorf("invalid staff id: %w", err)
				}
			}

			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			duration, err := time.ParseDuration(cfg.JWT.Duration)
			if err != nil {
				return fmt.Errorf("invalid JWT_DURATION: %w", err)
			}

			token, err := jwt.NewService(cfg.JWT.Secret, duration).GenerateToken(staffID, role)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&tokenRole, "role", string(user.RoleOperator), "staff role (viewer, operator, admin)")
	cmd.Flags().StringVar(&tokenStaffID, "staff-id", "", "staff id to embed (random when empty)")

	return cmd
}
