package main

import (
	"context"
	"encoding/json"
	"os"

	"tourpay/internal/usecase/commands"

	"github.com/spf13/cobra"
)

func sweepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Run one sweep over stale processing payments",
		Long: `Run one sweep over processing payments whose lease has expired.

Payments older than VERIFICATION_TTL are failed with "verification expired";
the rest are re-verified against their rail.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var sweeper commands.SweepCommands
			return withApp(cmd.Context(), func(ctx context.Context) error {
				report, err := sweeper.Sweep(ctx)
				if err != nil {
					return err
				}
				return printJSON(report)
			}, &sweeper)
		},
	}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
