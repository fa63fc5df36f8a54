package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	pgorm "github.com/psmphuket/portal/pkg/db/gorm"
	"github.com/psmphuket/portal/pkg/scrape"
)

func newImportPropertyCommand() *cobra.Command {
	var preview bool

	cmd := &cobra.Command{
		Use:   "import-property <url>",
		Short: "scrape an external listing page into a property",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := scrape.Fetch(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			draft := scrape.DraftProperty(page)

			encoded, err := json.MarshalIndent(draft, "", "  ")
			if err != nil {
				return err
			}
			cmd.Println(string(encoded))

			if draft.Title == "" {
				return fmt.Errorf("no title could be extracted from %s", args[0])
			}
			if preview {
				cmd.Println("preview only, nothing imported")
				return nil
			}

			uri, err := databaseURI(cmd)
			if err != nil {
				return err
			}
			db, err := pgorm.New(cmd.Context(), uri)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := db.Properties().Register(cmd.Context(), draft); err != nil {
				return err
			}
			cmd.Printf("imported as %s (%s)\n", draft.ListingNumber, draft.ID)
			return nil
		},
	}
	cmd.Flags().BoolVar(&preview, "preview", false, "print the draft without importing")
	return cmd
}
