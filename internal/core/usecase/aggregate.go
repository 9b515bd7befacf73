package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/mzhokh/photocat/internal/core/domain"
	"github.com/mzhokh/photocat/internal/core/ports"
)

// searchFields is the fixed concatenation order for one location's fan-out.
var searchFields = [...]domain.SearchField{domain.FieldCity, domain.FieldCountry, domain.FieldState}

// Aggregator unions field-scoped searches into deduplicated asset sets.
type Aggregator struct {
	searcher ports.AssetSearcher
	pageSize int
	log      *slog.Logger
}

func NewAggregator(searcher ports.AssetSearcher, pageSize int, log *slog.Logger) *Aggregator {
	return &Aggregator{searcher: searcher, pageSize: pageSize, log: log}
}

// AggregateByLocations processes locations sequentially so that the
// per-location new-asset counts are order-deterministic: an asset matching
// two locations is attributed to the first one processed. Any location
// failing fails the whole aggregation.
func (a *Aggregator) AggregateByLocations(ctx context.Context, locations []string, dates domain.DateRange) (*domain.AggregationResult, error) {
	result := &domain.AggregationResult{}
	seen := make(map[string]struct{})

	for _, location := range locations {
		lr, err := a.AggregateLocation(ctx, location, dates)
		if err != nil {
			return nil, fmt.Errorf("aggregate location %q: %w", location, err)
		}

		newAssets := 0
		for _, ref := range lr.Assets {
			if _, ok := seen[ref.ID]; ok {
				continue
			}
			seen[ref.ID] = struct{}{}
			result.Assets = append(result.Assets, ref)
			newAssets++
		}

		a.log.Info("location_aggregated",
			"location", location,
			"city", lr.CountsByField[domain.FieldCity],
			"country", lr.CountsByField[domain.FieldCountry],
			"state", lr.CountsByField[domain.FieldState],
			"new_assets", newAssets,
		)
		result.Locations = append(result.Locations, domain.LocationReport{
			Location:      location,
			CountsByField: lr.CountsByField,
			NewAssets:     newAssets,
		})
	}
	return result, nil
}

// AggregateLocation runs the three field-scoped fetches for one location
// concurrently, joins them all-or-nothing, then merges in fixed field
// order, deduplicating by asset id and keeping first-occurrence order.
// CountsByField holds each field's pre-deduplication size.
func (a *Aggregator) AggregateLocation(ctx context.Context, location string, dates domain.DateRange) (*domain.LocationResult, error) {
	var byField [len(searchFields)][]domain.Asset

	g, gctx := errgroup.WithContext(ctx)
	for i, field := range searchFields {
		i, field := i, field
		g.Go(func() error {
			assets, err := FetchAllAssets(gctx, a.searcher, domain.SearchQuery{
				Dates: dates,
				Field: field,
				Term:  location,
			}, a.pageSize)
			if err != nil {
				return fmt.Errorf("%s search: %w", field, err)
			}
			byField[i] = assets
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &domain.LocationResult{
		Location:      location,
		CountsByField: make(map[domain.SearchField]int, len(searchFields)),
	}
	dedup := make(map[string]struct{})
	for i, field := range searchFields {
		result.CountsByField[field] = len(byField[i])
		for _, asset := range byField[i] {
			if _, ok := dedup[asset.ID]; ok {
				continue
			}
			dedup[asset.ID] = struct{}{}
			result.Assets = append(result.Assets, domain.AssetRef{
				ID:       asset.ID,
				Filename: asset.OriginalFileName,
			})
		}
	}
	return result, nil
}
