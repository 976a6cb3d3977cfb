package main

import (
	"fmt"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/wanderwise/backend/migrations"
)

func newSchemaCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Apply or inspect database migrations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			db, err := a.openSQLDB(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
			if err != nil {
				return fmt.Errorf("create goose provider: %w", err)
			}
			results, err := provider.Up(ctx)
			if err != nil {
				return fmt.Errorf("apply migrations: %w", err)
			}
			out := cmd.OutOrStdout()
			if len(results) == 0 {
				fmt.Fprintln(out, "schema is up to date")
			}
			for _, r := range results {
				fmt.Fprintf(out, "applied %s (%s)\n", r.Source.Path, r.Duration.Round(time.Millisecond))
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "List migrations and whether each is applied",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			db, err := a.openSQLDB(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
			if err != nil {
				return fmt.Errorf("create goose provider: %w", err)
			}
			statuses, err := provider.Status(ctx)
			if err != nil {
				return fmt.Errorf("read migration status: %w", err)
			}
			out := cmd.OutOrStdout()
			for _, s := range statuses {
				applied := "pending"
				if s.State == goose.StateApplied {
					applied = s.AppliedAt.Format(time.RFC3339)
				}
				fmt.Fprintf(out, "%-40s %s\n", s.Source.Path, applied)
			}
			return nil
		},
	})
	return cmd
}
