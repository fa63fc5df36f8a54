package main

import (
	"github.com/spf13/cobra"

	pgorm "github.com/psmphuket/portal/pkg/db/gorm"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "apply the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			uri, err := databaseURI(cmd)
			if err != nil {
				return err
			}

			// New migrates on connect
			db, err := pgorm.New(cmd.Context(), uri)
			if err != nil {
				return err
			}
			defer db.Close()

			cmd.Println("schema is up to date")
			return nil
		},
	}
}
