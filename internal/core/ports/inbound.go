package ports

import (
	"context"

	"github.com/mzhokh/photocat/internal/core/domain"
)

// StackOrganizer is the inbound contract for cover/raw pairing and stack creation.
type StackOrganizer interface {
	Organize(ctx context.Context, req domain.StackRequest) (*domain.StackReport, error)
}

// AlbumBuilder is the inbound contract for location aggregation and album creation.
type AlbumBuilder interface {
	Build(ctx context.Context, req domain.AlbumRequest) (*domain.AlbumReport, error)
}
