package usecase

import (
	"testing"

	"github.com/mzhokh/photocat/internal/core/domain"
)

func TestDefaultStemStripsLastSuffix(t *testing.T) {
	cases := map[string]string{
		"IMG_001.jpg":     "IMG_001",
		"README":          "README",
		".hidden.dng":     ".hidden",
		"trip.2024.final": "trip.2024",
	}
	for name, want := range cases {
		if got := defaultStem(name); got != want {
			t.Fatalf("defaultStem(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestClassifyCoverWinsWhenBothPatternsMatch(t *testing.T) {
	c, err := NewClassifier(`\.jpg$`, `jpg`, "")
	if err != nil {
		t.Fatalf("NewClassifier() error = %v", err)
	}
	classified, _ := c.Classify(domain.Asset{ID: "a1", OriginalFileName: "IMG_001.jpg"})
	if classified.Role != domain.RoleCover {
		t.Fatalf("expected cover role, got %s", classified.Role)
	}
}

func TestClassifyIsTotal(t *testing.T) {
	c, err := NewClassifier(`(?i)\.(jpg|jpeg)$`, `(?i)\.dng$`, "")
	if err != nil {
		t.Fatalf("NewClassifier() error = %v", err)
	}

	for filename, want := range map[string]domain.Role{
		"IMG_001.jpg": domain.RoleCover,
		"IMG_001.DNG": domain.RoleRaw,
		"IMG_001.mov": domain.RoleUnclassified,
	} {
		classified, mismatch := c.Classify(domain.Asset{ID: "x", OriginalFileName: filename})
		if classified.Role != want {
			t.Fatalf("Classify(%q) role = %s, want %s", filename, classified.Role, want)
		}
		if mismatch {
			t.Fatalf("Classify(%q) reported a stem mismatch without a stem pattern", filename)
		}
	}
}

func TestClassifyUsesStemPatternCapture(t *testing.T) {
	c, err := NewClassifier(`\.jpg$`, `\.dng$`, `^(\w+?)_\d+`)
	if err != nil {
		t.Fatalf("NewClassifier() error = %v", err)
	}
	classified, mismatch := c.Classify(domain.Asset{ID: "a1", OriginalFileName: "IMG_0042.jpg"})
	if classified.Stem != "IMG" {
		t.Fatalf("expected stem from capture group, got %q", classified.Stem)
	}
	if mismatch {
		t.Fatalf("unexpected stem mismatch for matching pattern")
	}
}

func TestClassifyFallsBackOnStemPatternMiss(t *testing.T) {
	c, err := NewClassifier(`\.jpg$`, `\.dng$`, `^(\d{8})_`)
	if err != nil {
		t.Fatalf("NewClassifier() error = %v", err)
	}
	classified, mismatch := c.Classify(domain.Asset{ID: "a1", OriginalFileName: "holiday.jpg"})
	if classified.Stem != "holiday" {
		t.Fatalf("expected default stem, got %q", classified.Stem)
	}
	if !mismatch {
		t.Fatalf("expected a stem mismatch to be reported")
	}
}

func TestClassifyTreatsEmptyCaptureAsMiss(t *testing.T) {
	c, err := NewClassifier(`\.jpg$`, `\.dng$`, `^(\d*)`)
	if err != nil {
		t.Fatalf("NewClassifier() error = %v", err)
	}
	classified, mismatch := c.Classify(domain.Asset{ID: "a1", OriginalFileName: "holiday.jpg"})
	if classified.Stem != "holiday" {
		t.Fatalf("expected default stem for empty capture, got %q", classified.Stem)
	}
	if !mismatch {
		t.Fatalf("expected empty capture to count as a mismatch")
	}
}

func TestNewClassifierRejectsInvalidPatterns(t *testing.T) {
	if _, err := NewClassifier(`[`, `\.dng$`, ""); !domain.IsKind(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input error for bad cover pattern, got %v", err)
	}
	if _, err := NewClassifier(`\.jpg$`, `[`, ""); !domain.IsKind(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input error for bad raw pattern, got %v", err)
	}
	if _, err := NewClassifier(`\.jpg$`, `\.dng$`, `no-capture-group`); !domain.IsKind(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input error for stem pattern without capture group, got %v", err)
	}
}
