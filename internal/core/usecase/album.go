package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mzhokh/photocat/internal/core/domain"
	"github.com/mzhokh/photocat/internal/core/ports"
)

// AlbumUseCase aggregates location/date matches into a new named album.
type AlbumUseCase struct {
	aggregator *Aggregator
	albums     ports.AlbumStore
	log        *slog.Logger
}

func NewAlbumUseCase(aggregator *Aggregator, albums ports.AlbumStore, log *slog.Logger) *AlbumUseCase {
	return &AlbumUseCase{aggregator: aggregator, albums: albums, log: log}
}

// Build refuses to touch the catalog when an album with the requested name
// already exists: the full album listing must complete before the name is
// considered free. An empty aggregation still creates an (empty) album
// unless DryRun is set.
func (uc *AlbumUseCase) Build(ctx context.Context, req domain.AlbumRequest) (*domain.AlbumReport, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, domain.WrapError(domain.ErrInvalidInput, "build album", errors.New("album name is empty"))
	}

	if err := uc.ensureNameFree(ctx, req.Name); err != nil {
		return nil, err
	}

	aggregation, err := uc.aggregator.AggregateByLocations(ctx, req.Locations, req.Dates)
	if err != nil {
		return nil, err
	}

	report := &domain.AlbumReport{Aggregation: aggregation, DryRun: req.DryRun}
	if req.DryRun {
		return report, nil
	}

	ids := make([]string, 0, len(aggregation.Assets))
	for _, ref := range aggregation.Assets {
		ids = append(ids, ref.ID)
	}

	album, err := uc.albums.CreateAlbum(ctx, req.Name, ids)
	if err != nil {
		return nil, fmt.Errorf("create album: %w", err)
	}
	uc.log.Info("album_created", "album_id", album.ID, "name", album.Name, "assets", len(ids))
	report.Album = album
	return report, nil
}

// ensureNameFree is a strict pre-condition: exact, case-sensitive match.
func (uc *AlbumUseCase) ensureNameFree(ctx context.Context, name string) error {
	albums, err := uc.albums.ListAlbums(ctx)
	if err != nil {
		return fmt.Errorf("list albums: %w", err)
	}
	for _, album := range albums {
		if album.Name == name {
			return domain.WrapError(domain.ErrAlbumExists, "build album", fmt.Errorf("album %q", name))
		}
	}
	return nil
}
