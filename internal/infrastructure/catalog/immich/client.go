// Package immich implements the catalog ports against an Immich-compatible
// HTTP API.
package immich

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/mzhokh/photocat/internal/core/domain"
	"github.com/mzhokh/photocat/internal/infrastructure/resilience"
	"github.com/mzhokh/photocat/internal/observability/metrics"
)

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	exec       *resilience.Executor
	metrics    *metrics.CatalogMetrics
}

func New(baseURL, apiKey string, exec *resilience.Executor, m *metrics.CatalogMetrics) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		exec:       exec,
		metrics:    m,
	}
}

type assetPayload struct {
	ID               string `json:"id"`
	OriginalFileName string `json:"originalFileName"`
	StackID          string `json:"stackId"`
}

type albumPayload struct {
	ID        string `json:"id"`
	AlbumName string `json:"albumName"`
}

func (c *Client) SearchAssets(ctx context.Context, page, pageSize int, query domain.SearchQuery) ([]domain.Asset, error) {
	body := map[string]any{
		"page": page,
		"size": pageSize,
	}
	if !query.Dates.From.IsZero() {
		body["takenAfter"] = query.Dates.From.UTC().Format(time.RFC3339)
	}
	if !query.Dates.To.IsZero() {
		body["takenBefore"] = query.Dates.To.UTC().Format(time.RFC3339)
	}
	if query.Field != domain.FieldNone && query.Term != "" {
		body[string(query.Field)] = query.Term
	}

	var response struct {
		Assets struct {
			Items []assetPayload `json:"items"`
		} `json:"assets"`
	}
	if err := c.postJSON(ctx, "/api/search/metadata", body, &response, "search assets"); err != nil {
		return nil, err
	}
	c.metrics.AddAssetsFetched(len(response.Assets.Items))
	return toAssets(response.Assets.Items), nil
}

func (c *Client) AlbumAssets(ctx context.Context, albumID string) ([]domain.Asset, error) {
	var response struct {
		Assets []assetPayload `json:"assets"`
	}
	if err := c.getJSON(ctx, "/api/albums/"+albumID, &response, "get album assets"); err != nil {
		return nil, err
	}
	return toAssets(response.Assets), nil
}

func (c *Client) ListAlbums(ctx context.Context) ([]domain.Album, error) {
	var response []albumPayload
	if err := c.getJSON(ctx, "/api/albums", &response, "list albums"); err != nil {
		return nil, err
	}
	albums := make([]domain.Album, 0, len(response))
	for _, a := range response {
		albums = append(albums, domain.Album{ID: a.ID, Name: a.AlbumName})
	}
	return albums, nil
}

func (c *Client) CreateStack(ctx context.Context, assetIDs []string) error {
	body := map[string]any{"assetIds": assetIDs}
	if err := c.postJSON(ctx, "/api/stacks", body, nil, "create stack"); err != nil {
		return err
	}
	c.metrics.IncStacksCreated()
	return nil
}

func (c *Client) CreateAlbum(ctx context.Context, name string, assetIDs []string) (domain.Album, error) {
	if assetIDs == nil {
		assetIDs = []string{}
	}
	body := map[string]any{
		"albumName": name,
		"assetIds":  assetIDs,
	}
	var response albumPayload
	if err := c.postJSON(ctx, "/api/albums", body, &response, "create album"); err != nil {
		return domain.Album{}, err
	}
	return domain.Album{ID: response.ID, Name: response.AlbumName}, nil
}

func toAssets(payloads []assetPayload) []domain.Asset {
	assets := make([]domain.Asset, 0, len(payloads))
	for _, p := range payloads {
		assets = append(assets, domain.Asset{
			ID:               p.ID,
			OriginalFileName: p.OriginalFileName,
			StackID:          p.StackID,
		})
	}
	return assets
}
