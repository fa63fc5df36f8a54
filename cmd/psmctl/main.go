// psmctl is the operator CLI for the portal: schema migration, listing
// import, legacy-site redirect mapping and owner invite minting.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	// optional; credentials may come from a .env during development
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:           "psmctl",
		Short:         "operator tooling for the PSM Phuket portal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().String(
		"database-uri", os.Getenv("PORTAL_DATABASE_URI"),
		"postgres connection string (default: PORTAL_DATABASE_URI)",
	)

	rootCmd.AddCommand(
		newMigrateCommand(),
		newImportPropertyCommand(),
		newCrawlRedirectsCommand(),
		newInviteCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func databaseURI(cmd *cobra.Command) (string, error) {
	uri, err := cmd.Flags().GetString("database-uri")
	if err != nil {
		return "", err
	}
	if uri == "" {
		return "", fmt.Errorf("--database-uri (or PORTAL_DATABASE_URI) is required")
	}
	return uri, nil
}
