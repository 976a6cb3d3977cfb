package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wanderwise/backend/internal/repo"
	"github.com/wanderwise/backend/internal/service"
)

func newImportCmd(a *app) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import users, destinations, and itineraries from a legacy JSON export",
		RunE: func(cmd *cobra.Command, _ []string) error {
			export, err := readExport(file)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			pool, err := a.openPool(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			svc := service.NewImportService(
				repo.NewUserRepo(pool),
				repo.NewDestinationRepo(pool),
				repo.NewItineraryRepo(pool),
				a.log,
			)
			report, err := svc.Import(ctx, export)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "path to the JSON export")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func readExport(path string) (service.LegacyExport, error) {
	f, err := os.Open(path)
	if err != nil {
		return service.LegacyExport{}, fmt.Errorf("open export: %w", err)
	}
	defer f.Close()

	var export service.LegacyExport
	if err := json.NewDecoder(f).Decode(&export); err != nil {
		return service.LegacyExport{}, fmt.Errorf("decode export %s: %w", path, err)
	}
	return export, nil
}
