package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mzhokh/photocat/internal/core/domain"
	"github.com/mzhokh/photocat/internal/core/ports"
)

// StackUseCase pairs cover and raw assets sharing a filename stem and
// creates one catalog stack per pair.
type StackUseCase struct {
	searcher ports.AssetSearcher
	albums   ports.AlbumStore
	stacks   ports.StackWriter
	pageSize int
	log      *slog.Logger
}

func NewStackUseCase(
	searcher ports.AssetSearcher,
	albums ports.AlbumStore,
	stacks ports.StackWriter,
	pageSize int,
	log *slog.Logger,
) *StackUseCase {
	return &StackUseCase{
		searcher: searcher,
		albums:   albums,
		stacks:   stacks,
		pageSize: pageSize,
		log:      log,
	}
}

// Organize fetches the candidate assets, resolves pairs, and issues one
// CreateStack call per pair. Stack calls run sequentially; a failed pair
// is logged and recorded but does not stop the batch. The returned report
// is complete even when some pairs failed.
func (uc *StackUseCase) Organize(ctx context.Context, req domain.StackRequest) (*domain.StackReport, error) {
	classifier, err := NewClassifierFromRequest(req)
	if err != nil {
		return nil, err
	}

	assets, err := uc.loadAssets(ctx, req)
	if err != nil {
		return nil, err
	}

	resolution := ResolvePairs(assets, classifier)
	for _, filename := range resolution.StemMismatches {
		uc.log.Warn("stem_pattern_mismatch", "filename", filename)
	}
	for _, replaced := range resolution.ReplacedCovers {
		uc.log.Warn("cover_replaced",
			"stem", replaced.Stem,
			"old", replaced.OldFilename,
			"new", replaced.NewFilename,
		)
	}

	report := &domain.StackReport{Resolution: resolution}
	if req.DryRun {
		return report, nil
	}

	for _, pair := range resolution.Pairs {
		if err := uc.stacks.CreateStack(ctx, []string{pair.CoverID, pair.RawID}); err != nil {
			uc.log.Error("create_stack_failed",
				"stem", pair.Stem,
				"cover", pair.CoverFilename,
				"raw", pair.RawFilename,
				"error", err,
			)
			report.Failures = append(report.Failures, domain.PairFailure{Pair: pair, Err: err})
			continue
		}
		report.Created++
	}
	return report, nil
}

func (uc *StackUseCase) loadAssets(ctx context.Context, req domain.StackRequest) ([]domain.Asset, error) {
	if req.AlbumID != "" {
		assets, err := uc.albums.AlbumAssets(ctx, req.AlbumID)
		if err != nil {
			return nil, fmt.Errorf("fetch album assets: %w", err)
		}
		return assets, nil
	}
	return FetchAllAssets(ctx, uc.searcher, domain.SearchQuery{Dates: req.Dates}, uc.pageSize)
}
