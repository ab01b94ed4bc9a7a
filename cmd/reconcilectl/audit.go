package main

import (
	"context"
	"fmt"

	"tourpay/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var auditFailOnReorg bool

func auditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit [payment-id]",
		Short: "Re-check a completed chain payment against its rail",
		Long: `Re-check a completed chain payment against its rail.

Read-only. A payment the rail no longer confirms is reported as a suspected reorg.

Examples:
  reconcilectl audit 0b5e4c52-8d0f-4a8f-9a53-0f2b1f5b9f1e
  reconcilectl audit 0b5e4c52-8d0f-4a8f-9a53-0f2b1f5b9f1e --fail-on-reorg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid payment id: %w", err)
			}

			var reconciler commands.ReconcileCommands
			return withApp(cmd.Context(), func(ctx context.Context) error {
				report, err := reconciler.Audit(ctx, id)
				if err != nil {
					return err
				}
				if err := printJSON(report); err != nil {
					return err
				}
				if auditFailOnReorg && !report.StillConfirmed {
					return fmt.Errorf("payment %s: suspected reorg (%s)", id, report.State)
				}
				return nil
			}, &reconciler)
		},
	}

	cmd.Flags().BoolVar(&auditFailOnReorg, "fail-on-reorg", false, "exit non-zero when the rail no longer confirms the payment")

	return cmd
}
