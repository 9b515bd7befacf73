package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mzhokh/photocat/internal/bootstrap"
	"github.com/mzhokh/photocat/internal/config"
	"github.com/mzhokh/photocat/internal/core/domain"
)

var (
	stackPreset  string
	stackCover   string
	stackRaw     string
	stackStem    string
	stackAlbumID string
	stackFrom    string
	stackTo      string
	stackDryRun  bool
)

var stackCmd = &cobra.Command{
	Use:   "stack",
	Short: "Pair cover and raw assets into catalog stacks",
	Long: `stack groups assets whose filenames share a stem into cover/raw pairs
and creates one stack per pair. Patterns come from a preset (see --preset)
unless overridden with the pattern flags.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := bootstrap.New(config.Load())
		if err != nil {
			return err
		}
		defer app.Close()

		preset, err := app.Rules.Preset(stackPreset)
		if err != nil {
			return domain.WrapError(domain.ErrInvalidInput, "select preset", err)
		}
		cover, raw, stem := preset.Cover, preset.Raw, preset.Stem
		if stackCover != "" {
			cover = stackCover
		}
		if stackRaw != "" {
			raw = stackRaw
		}
		if stackStem != "" {
			stem = stackStem
		}

		dates, err := parseDateRange(stackFrom, stackTo)
		if err != nil {
			return err
		}

		report, err := app.StackUC.Organize(cmd.Context(), domain.StackRequest{
			CoverPattern: cover,
			RawPattern:   raw,
			StemPattern:  stem,
			Dates:        dates,
			AlbumID:      stackAlbumID,
			DryRun:       stackDryRun,
		})
		if err != nil {
			return err
		}

		printStackReport(cmd, report, stackDryRun)
		if n := len(report.Failures); n > 0 {
			return fmt.Errorf("%d of %d stacks failed", n, len(report.Resolution.Pairs))
		}
		return nil
	},
}

func printStackReport(cmd *cobra.Command, report *domain.StackReport, dryRun bool) {
	out := cmd.OutOrStdout()
	res := report.Resolution
	if dryRun {
		fmt.Fprintf(out, "dry run: %d pairs would be stacked\n", len(res.Pairs))
		for _, pair := range res.Pairs {
			fmt.Fprintf(out, "  %s: %s + %s\n", pair.Stem, pair.CoverFilename, pair.RawFilename)
		}
	} else {
		fmt.Fprintf(out, "created %d of %d stacks\n", report.Created, len(res.Pairs))
	}
	if res.SkippedNoMatch > 0 {
		fmt.Fprintf(out, "skipped %d assets without a counterpart\n", res.SkippedNoMatch)
	}
	if n := len(res.StemMismatches); n > 0 {
		fmt.Fprintf(out, "%d filenames did not match the stem pattern\n", n)
	}
	if n := len(res.ReplacedCovers); n > 0 {
		fmt.Fprintf(out, "%d covers were replaced by a later match\n", n)
	}
}

func init() {
	stackCmd.Flags().StringVar(&stackPreset, "preset", "default", "named pattern preset from the rules file")
	stackCmd.Flags().StringVar(&stackCover, "cover-pattern", "", "cover filename pattern (overrides preset)")
	stackCmd.Flags().StringVar(&stackRaw, "raw-pattern", "", "raw filename pattern (overrides preset)")
	stackCmd.Flags().StringVar(&stackStem, "stem-pattern", "", "stem extraction pattern with one capture group")
	stackCmd.Flags().StringVar(&stackAlbumID, "album", "", "restrict pairing to the assets of one album id")
	stackCmd.Flags().StringVar(&stackFrom, "from", "", "only assets taken on or after this day (YYYY-MM-DD)")
	stackCmd.Flags().StringVar(&stackTo, "to", "", "only assets taken up to and including this day (YYYY-MM-DD)")
	stackCmd.Flags().BoolVar(&stackDryRun, "dry-run", false, "resolve pairs but create nothing")
}
