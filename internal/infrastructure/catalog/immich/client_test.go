package immich

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mzhokh/photocat/internal/core/domain"
	"github.com/mzhokh/photocat/internal/infrastructure/resilience"
)

func newTestClient(url string) *Client {
	// Single attempt, no breaker: transport tests assert on raw behavior.
	exec := resilience.NewExecutor(resilience.Config{
		RetryMaxAttempts:    1,
		RetryInitialBackoff: time.Millisecond,
		BreakerEnabled:      false,
	})
	return New(url, "test-key", exec, nil)
}

func TestSearchAssetsBuildsMetadataQuery(t *testing.T) {
	var captured map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/search/metadata" {
			http.NotFound(w, r)
			return
		}
		if got := r.Header.Get("X-Api-Key"); got != "test-key" {
			t.Fatalf("expected api key header, got %q", got)
		}
		if r.Header.Get("X-Request-Id") == "" {
			t.Fatalf("expected a request id header")
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		_, _ = w.Write([]byte(`{"assets":{"items":[{"id":"a1","originalFileName":"IMG_001.jpg","stackId":null}]}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	assets, err := client.SearchAssets(context.Background(), 2, 500, domain.SearchQuery{
		Dates: domain.DateRange{From: from},
		Field: domain.FieldCity,
		Term:  "Lisbon",
	})
	if err != nil {
		t.Fatalf("SearchAssets() error = %v", err)
	}
	if len(assets) != 1 || assets[0].ID != "a1" || assets[0].OriginalFileName != "IMG_001.jpg" {
		t.Fatalf("unexpected assets: %+v", assets)
	}

	if captured["page"] != float64(2) || captured["size"] != float64(500) {
		t.Fatalf("unexpected pagination in request: %v", captured)
	}
	if captured["city"] != "Lisbon" {
		t.Fatalf("expected city filter, got %v", captured)
	}
	if captured["takenAfter"] != "2024-06-01T00:00:00Z" {
		t.Fatalf("unexpected takenAfter: %v", captured["takenAfter"])
	}
	if _, ok := captured["takenBefore"]; ok {
		t.Fatalf("unbounded range must not send takenBefore")
	}
}

func TestSearchAssetsOmitsFieldWithoutTerm(t *testing.T) {
	var captured map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		_, _ = w.Write([]byte(`{"assets":{"items":[]}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	if _, err := client.SearchAssets(context.Background(), 1, 100, domain.SearchQuery{}); err != nil {
		t.Fatalf("SearchAssets() error = %v", err)
	}
	for _, field := range []string{"city", "country", "state"} {
		if _, ok := captured[field]; ok {
			t.Fatalf("unexpected %s filter in request: %v", field, captured)
		}
	}
}

func TestListAlbumsMapsAlbumNames(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/albums" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`[{"id":"al1","albumName":"Trip"},{"id":"al2","albumName":"Family"}]`))
	}))
	defer server.Close()

	albums, err := newTestClient(server.URL).ListAlbums(context.Background())
	if err != nil {
		t.Fatalf("ListAlbums() error = %v", err)
	}
	if len(albums) != 2 || albums[0].Name != "Trip" || albums[1].ID != "al2" {
		t.Fatalf("unexpected albums: %+v", albums)
	}
}

func TestCreateStackPostsAssetIDs(t *testing.T) {
	var captured struct {
		AssetIDs []string `json:"assetIds"`
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/stacks" {
			http.NotFound(w, r)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	err := newTestClient(server.URL).CreateStack(context.Background(), []string{"cover-1", "raw-1"})
	if err != nil {
		t.Fatalf("CreateStack() error = %v", err)
	}
	if len(captured.AssetIDs) != 2 || captured.AssetIDs[0] != "cover-1" || captured.AssetIDs[1] != "raw-1" {
		t.Fatalf("unexpected asset ids: %v", captured.AssetIDs)
	}
}

func TestCreateAlbumSendsEmptyAssetList(t *testing.T) {
	var captured map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		_, _ = w.Write([]byte(`{"id":"al9","albumName":"Empty"}`))
	}))
	defer server.Close()

	album, err := newTestClient(server.URL).CreateAlbum(context.Background(), "Empty", nil)
	if err != nil {
		t.Fatalf("CreateAlbum() error = %v", err)
	}
	if album.ID != "al9" || album.Name != "Empty" {
		t.Fatalf("unexpected album: %+v", album)
	}
	ids, ok := captured["assetIds"].([]any)
	if !ok || len(ids) != 0 {
		t.Fatalf("expected an explicit empty assetIds array, got %v", captured["assetIds"])
	}
}

func TestStatusErrorIncludesResponseBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "asset already stacked", http.StatusBadRequest)
	}))
	defer server.Close()

	err := newTestClient(server.URL).CreateStack(context.Background(), []string{"a", "b"})
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "asset already stacked") {
		t.Fatalf("expected response body in error, got %v", err)
	}
}

func TestGetAlbumAssetsDecodesAssets(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/albums/album-7" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`{"id":"album-7","albumName":"Trip","assets":[{"id":"a1","originalFileName":"IMG_001.jpg"}]}`))
	}))
	defer server.Close()

	assets, err := newTestClient(server.URL).AlbumAssets(context.Background(), "album-7")
	if err != nil {
		t.Fatalf("AlbumAssets() error = %v", err)
	}
	if len(assets) != 1 || assets[0].OriginalFileName != "IMG_001.jpg" {
		t.Fatalf("unexpected assets: %+v", assets)
	}
}
