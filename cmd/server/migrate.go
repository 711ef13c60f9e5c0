package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"botanica/internal/platform/postgres"
)

func migrateCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply pending migrations",
			RunE: func(cmd *cobra.Command, _ []string) error {
				cfg, log, err := opts.load()
				if err != nil {
					return err
				}
				db, err := postgres.Open(cmd.Context(), cfg.Database.URL, 1)
				if err != nil {
					return err
				}
				defer db.Close()

				if err := postgres.Migrate(db); err != nil {
					return err
				}
				status, err := postgres.Status(db)
				if err != nil {
					return err
				}
				log.Info("migrations applied", "version", status.Version)
				return nil
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Print the applied schema version as JSON",
			RunE: func(cmd *cobra.Command, _ []string) error {
				cfg, _, err := opts.load()
				if err != nil {
					return err
				}
				db, err := postgres.Open(cmd.Context(), cfg.Database.URL, 1)
				if err != nil {
					return err
				}
				defer db.Close()

				status, err := postgres.Status(db)
				if err != nil {
					return err
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(struct {
					postgres.MigrationStatus
					UpToDate bool `json:"up_to_date"`
				}{status, status.UpToDate()})
			},
		},
	)
	return cmd
}
