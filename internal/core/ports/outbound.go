package ports

import (
	"context"

	"github.com/mzhokh/photocat/internal/core/domain"
)

// AssetSearcher performs one page of a field-scoped metadata search.
// Pages start at 1; a page shorter than pageSize is the last one.
type AssetSearcher interface {
	SearchAssets(ctx context.Context, page, pageSize int, query domain.SearchQuery) ([]domain.Asset, error)
}

// AlbumStore reads and creates catalog albums.
type AlbumStore interface {
	ListAlbums(ctx context.Context) ([]domain.Album, error)
	AlbumAssets(ctx context.Context, albumID string) ([]domain.Asset, error)
	CreateAlbum(ctx context.Context, name string, assetIDs []string) (domain.Album, error)
}

// StackWriter groups assets into a catalog stack.
type StackWriter interface {
	CreateStack(ctx context.Context, assetIDs []string) error
}
