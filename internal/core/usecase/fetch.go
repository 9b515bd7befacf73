package usecase

import (
	"context"
	"fmt"

	"github.com/mzhokh/photocat/internal/core/domain"
	"github.com/mzhokh/photocat/internal/core/ports"
)

// DefaultPageSize is the page size used when the caller does not override it.
const DefaultPageSize = 1000

// FetchAllAssets drains a paginated metadata search. Pages are requested
// sequentially starting at 1; a page shorter than pageSize ends the fetch,
// even when it is empty. Ordering is preserved, which callers rely on for
// last-cover-wins semantics. A failure on any page fails the whole fetch;
// no partial result is returned.
func FetchAllAssets(ctx context.Context, searcher ports.AssetSearcher, query domain.SearchQuery, pageSize int) ([]domain.Asset, error) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	var all []domain.Asset
	for page := 1; ; page++ {
		items, err := searcher.SearchAssets(ctx, page, pageSize, query)
		if err != nil {
			return nil, fmt.Errorf("search assets page %d: %w", page, err)
		}
		all = append(all, items...)
		if len(items) < pageSize {
			return all, nil
		}
	}
}
