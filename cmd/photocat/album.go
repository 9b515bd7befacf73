package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mzhokh/photocat/internal/bootstrap"
	"github.com/mzhokh/photocat/internal/config"
	"github.com/mzhokh/photocat/internal/core/domain"
)

var (
	albumName      string
	albumLocations []string
	albumFrom      string
	albumTo        string
	albumDryRun    bool
)

var albumCmd = &cobra.Command{
	Use:   "album",
	Short: "Collect date/location matches into a new album",
	Long: `album searches the catalog's city, country and state fields for every
given location term, bounded by the date range, and creates one album from
the deduplicated union. Creation is refused when an album with the same
name already exists.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := bootstrap.New(config.Load())
		if err != nil {
			return err
		}
		defer app.Close()

		dates, err := parseDateRange(albumFrom, albumTo)
		if err != nil {
			return err
		}

		report, err := app.AlbumUC.Build(cmd.Context(), domain.AlbumRequest{
			Name:      albumName,
			Locations: albumLocations,
			Dates:     dates,
			DryRun:    albumDryRun,
		})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, loc := range report.Aggregation.Locations {
			fmt.Fprintf(out, "%s: city=%d country=%d state=%d new=%d\n",
				loc.Location,
				loc.CountsByField[domain.FieldCity],
				loc.CountsByField[domain.FieldCountry],
				loc.CountsByField[domain.FieldState],
				loc.NewAssets,
			)
		}
		if report.DryRun {
			fmt.Fprintf(out, "dry run: album %q would hold %d assets\n", albumName, len(report.Aggregation.Assets))
			return nil
		}
		fmt.Fprintf(out, "created album %q (%s) with %d assets\n", report.Album.Name, report.Album.ID, len(report.Aggregation.Assets))
		return nil
	},
}

func init() {
	albumCmd.Flags().StringVar(&albumName, "name", "", "name of the album to create")
	albumCmd.Flags().StringArrayVar(&albumLocations, "location", nil, "location term, repeatable; searched against city, country and state")
	albumCmd.Flags().StringVar(&albumFrom, "from", "", "only assets taken on or after this day (YYYY-MM-DD)")
	albumCmd.Flags().StringVar(&albumTo, "to", "", "only assets taken up to and including this day (YYYY-MM-DD)")
	albumCmd.Flags().BoolVar(&albumDryRun, "dry-run", false, "aggregate and report but create nothing")
	_ = albumCmd.MarkFlagRequired("name")
}
