package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/psmphuket/portal/pkg/crawl"
)

func newCrawlRedirectsCommand() *cobra.Command {
	var (
		output   string
		maxPages int
		delay    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "crawl-redirects <url>",
		Short: "crawl a legacy WordPress site and emit a redirect mapping",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			crawler, err := crawl.New(args[0], delay, maxPages)
			if err != nil {
				return err
			}

			pages, err := crawler.Crawl(cmd.Context())
			if err != nil {
				return err
			}
			cmd.Printf("crawled %d pages\n", len(pages))

			out := cmd.OutOrStdout()
			if output != "" {
				file, err := os.Create(output)
				if err != nil {
					return err
				}
				defer file.Close()
				out = file
			}
			if err := crawl.WriteCSV(out, pages); err != nil {
				return err
			}
			if output != "" {
				cmd.Printf("redirect mapping written to %s\n", output)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "CSV output path (default: stdout)")
	cmd.Flags().IntVar(&maxPages, "max-pages", 500, "stop after this many pages")
	cmd.Flags().DurationVar(&delay, "delay", 500*time.Millisecond, "pause between requests")
	return cmd
}
