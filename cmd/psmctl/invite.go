package main

import (
	"time"

	"github.com/spf13/cobra"

	kdb "github.com/psmphuket/portal/pkg/db"
	pgorm "github.com/psmphuket/portal/pkg/db/gorm"
)

func newInviteCommand() *cobra.Command {
	var (
		properties []string
		maxUses    int
		validFor   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "invite",
		Short: "mint an owner invite code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			uri, err := databaseURI(cmd)
			if err != nil {
				return err
			}
			db, err := pgorm.New(cmd.Context(), uri)
			if err != nil {
				return err
			}
			defer db.Close()

			invite := &kdb.OwnerInvite{
				PropertyIDs: properties,
				MaxUses:     maxUses,
				ExpiresAt:   time.Now().Add(validFor),
			}
			if err := db.Invites().Register(cmd.Context(), invite); err != nil {
				return err
			}

			cmd.Printf("invite code: %s\n", invite.Code)
			cmd.Printf("expires at:  %s\n", invite.ExpiresAt.Format(time.RFC3339))
			cmd.Printf("max uses:    %d\n", invite.MaxUses)
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&properties, "property", nil, "property id the invite unlocks (repeatable)")
	cmd.Flags().IntVar(&maxUses, "max-uses", 1, "how often the code may be redeemed")
	cmd.Flags().DurationVar(&validFor, "valid-for", 14*24*time.Hour, "invite lifetime")
	return cmd
}
