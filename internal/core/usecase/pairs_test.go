package usecase

import (
	"reflect"
	"testing"

	"github.com/mzhokh/photocat/internal/core/domain"
)

func jpegDNGClassifier(t *testing.T) *Classifier {
	t.Helper()
	c, err := NewClassifier(`(?i)\.(jpg|jpeg)$`, `(?i)\.dng$`, "")
	if err != nil {
		t.Fatalf("NewClassifier() error = %v", err)
	}
	return c
}

func TestResolvePairsBasicScenario(t *testing.T) {
	assets := []domain.Asset{
		{ID: "1", OriginalFileName: "IMG_001.jpg"},
		{ID: "2", OriginalFileName: "IMG_001.dng"},
		{ID: "3", OriginalFileName: "IMG_002.jpg"},
	}

	res := ResolvePairs(assets, jpegDNGClassifier(t))
	if len(res.Pairs) != 1 {
		t.Fatalf("expected 1 pair, got %d", len(res.Pairs))
	}
	pair := res.Pairs[0]
	if pair.CoverID != "1" || pair.RawID != "2" || pair.Stem != "IMG_001" {
		t.Fatalf("unexpected pair: %+v", pair)
	}
	if res.SkippedNoMatch != 1 {
		t.Fatalf("expected skipped = 1 for the lone cover, got %d", res.SkippedNoMatch)
	}
}

func TestResolvePairsLastCoverWins(t *testing.T) {
	assets := []domain.Asset{
		{ID: "1", OriginalFileName: "IMG_001.jpg"},
		{ID: "2", OriginalFileName: "IMG_001.jpeg"},
		{ID: "3", OriginalFileName: "IMG_001.dng"},
	}

	res := ResolvePairs(assets, jpegDNGClassifier(t))
	if len(res.Pairs) != 1 {
		t.Fatalf("expected 1 pair, got %d", len(res.Pairs))
	}
	if res.Pairs[0].CoverID != "2" {
		t.Fatalf("expected the later cover to win, got cover id %s", res.Pairs[0].CoverID)
	}
	if len(res.ReplacedCovers) != 1 {
		t.Fatalf("expected 1 replaced-cover event, got %d", len(res.ReplacedCovers))
	}
	replaced := res.ReplacedCovers[0]
	if replaced.OldFilename != "IMG_001.jpg" || replaced.NewFilename != "IMG_001.jpeg" {
		t.Fatalf("unexpected replaced-cover event: %+v", replaced)
	}
}

func TestResolvePairsOneCoverManyRaws(t *testing.T) {
	assets := []domain.Asset{
		{ID: "1", OriginalFileName: "IMG_001.jpg"},
		{ID: "2", OriginalFileName: "IMG_001.dng"},
		{ID: "3", OriginalFileName: "IMG_001.DNG"},
	}

	res := ResolvePairs(assets, jpegDNGClassifier(t))
	if len(res.Pairs) != 2 {
		t.Fatalf("expected one pair per raw, got %d", len(res.Pairs))
	}
	for _, pair := range res.Pairs {
		if pair.CoverID != "1" {
			t.Fatalf("expected shared cover, got %+v", pair)
		}
	}
	if res.Pairs[0].RawID != "2" || res.Pairs[1].RawID != "3" {
		t.Fatalf("expected raws in input order, got %s then %s", res.Pairs[0].RawID, res.Pairs[1].RawID)
	}
}

func TestResolvePairsRawOnlyGroupCountsAllRaws(t *testing.T) {
	assets := []domain.Asset{
		{ID: "1", OriginalFileName: "IMG_003.dng"},
		{ID: "2", OriginalFileName: "IMG_003.DNG"},
	}

	res := ResolvePairs(assets, jpegDNGClassifier(t))
	if len(res.Pairs) != 0 {
		t.Fatalf("expected no pairs, got %d", len(res.Pairs))
	}
	if res.SkippedNoMatch != 2 {
		t.Fatalf("expected skipped = 2 for raw-only group, got %d", res.SkippedNoMatch)
	}
}

func TestResolvePairsIgnoresUnclassifiedAssets(t *testing.T) {
	assets := []domain.Asset{
		{ID: "1", OriginalFileName: "IMG_001.mov"},
		{ID: "2", OriginalFileName: "notes.txt"},
	}

	res := ResolvePairs(assets, jpegDNGClassifier(t))
	if len(res.Pairs) != 0 || res.SkippedNoMatch != 0 {
		t.Fatalf("unclassified assets must not pair or count as skipped: %+v", res)
	}
}

func TestResolvePairsGroupOrderFollowsFirstSeenStem(t *testing.T) {
	assets := []domain.Asset{
		{ID: "1", OriginalFileName: "B_001.dng"},
		{ID: "2", OriginalFileName: "A_001.jpg"},
		{ID: "3", OriginalFileName: "B_001.jpg"},
		{ID: "4", OriginalFileName: "A_001.dng"},
	}

	res := ResolvePairs(assets, jpegDNGClassifier(t))
	if len(res.Pairs) != 2 {
		t.Fatalf("expected 2 pairs, got %d", len(res.Pairs))
	}
	if res.Pairs[0].Stem != "B_001" || res.Pairs[1].Stem != "A_001" {
		t.Fatalf("expected first-seen stem order, got %s then %s", res.Pairs[0].Stem, res.Pairs[1].Stem)
	}
}

func TestResolvePairsIsIdempotent(t *testing.T) {
	assets := []domain.Asset{
		{ID: "1", OriginalFileName: "IMG_001.jpg"},
		{ID: "2", OriginalFileName: "IMG_001.dng"},
		{ID: "3", OriginalFileName: "IMG_002.dng"},
		{ID: "4", OriginalFileName: "IMG_003.jpg"},
	}

	c := jpegDNGClassifier(t)
	first := ResolvePairs(assets, c)
	second := ResolvePairs(assets, c)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("resolving twice diverged:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}
