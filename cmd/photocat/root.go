package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/mzhokh/photocat/internal/core/domain"
)

var rootCmd = &cobra.Command{
	Use:   "photocat",
	Short: "Organize assets in a remote photo catalog",
	Long: `photocat pairs cover and raw files into catalog stacks and collects
date/location search results into albums. The catalog endpoint and API key
come from CATALOG_URL and CATALOG_API_KEY.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(stackCmd)
	rootCmd.AddCommand(albumCmd)
}

// parseDateRange turns --from/--to day strings into a half-open capture
// time range. The --to day is included in full.
func parseDateRange(from, to string) (domain.DateRange, error) {
	var r domain.DateRange
	if from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			return r, domain.WrapError(domain.ErrInvalidInput, "parse --from", err)
		}
		r.From = t.UTC()
	}
	if to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			return r, domain.WrapError(domain.ErrInvalidInput, "parse --to", err)
		}
		r.To = t.AddDate(0, 0, 1).UTC()
	}
	return r, nil
}
