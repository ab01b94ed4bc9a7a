package main

import (
	"fmt"
	"os"

	"tourpay/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/spf13/cobra"
)

var (
	migrateDir    string
	migrateDryRun bool
	migrateAtlas  string
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		Long: `Apply pending schema migrations from the migrations directory with Atlas.

Requires the atlas binary on PATH (or --atlas). The target database comes from
the DB_* environment variables.`,
		Args: cobra.NoArgs,
		RunE: runMigrate,
	}

	cmd.Flags().StringVar(&migrateDir, "dir", "migrations", "migrations directory")
	cmd.Flags().BoolVar(&migrateDryRun, "dry-run", false, "print pending migrations without applying them")
	cmd.Flags().StringVar(&migrateAtlas, "atlas", "atlas", "path to the atlas binary")

	return cmd
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	workdir, err := atlasexec.NewWorkingDir(
		atlasexec.WithMigrations(os.DirFS(migrateDir)),
	)
	if err != nil {
		return fmt.Errorf("prepare atlas working dir: %w", err)
	}
	defer workdir.Close()

	client, err := atlasexec.NewClient(workdir.Path(), migrateAtlas)
	if err != nil {
		return fmt.Errorf("init atlas client: %w", err)
	}

	res, err := client.MigrateApply(cmd.Context(), &atlasexec.MigrateApplyParams{
		URL:    cfg.DB.BuildDSN(),
		DirURL: "file://migrations",
		DryRun: migrateDryRun,
	})
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	for _, f := range res.Applied {
		fmt.Fprintf(cmd.OutOrStdout(), "applied %s\n", f.Name)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "schema at version %q (target %q)\n", res.Current, res.Target)
	return nil
}
