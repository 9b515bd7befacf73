package usecase

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/mzhokh/photocat/internal/core/domain"
)

// Classifier derives a grouping stem and a pairing role from a filename.
// The cover test takes priority when both patterns match; keeping the
// patterns mutually exclusive is the caller's responsibility.
type Classifier struct {
	cover *regexp.Regexp
	raw   *regexp.Regexp
	stem  *regexp.Regexp
}

// NewClassifier compiles the caller-supplied patterns. stemPattern is
// optional; when present it must contain at least one capture group.
func NewClassifier(coverPattern, rawPattern, stemPattern string) (*Classifier, error) {
	cover, err := regexp.Compile(coverPattern)
	if err != nil {
		return nil, domain.WrapError(domain.ErrInvalidInput, "compile cover pattern", err)
	}
	raw, err := regexp.Compile(rawPattern)
	if err != nil {
		return nil, domain.WrapError(domain.ErrInvalidInput, "compile raw pattern", err)
	}

	c := &Classifier{cover: cover, raw: raw}
	if stemPattern != "" {
		stem, err := regexp.Compile(stemPattern)
		if err != nil {
			return nil, domain.WrapError(domain.ErrInvalidInput, "compile stem pattern", err)
		}
		if stem.NumSubexp() < 1 {
			return nil, domain.WrapError(
				domain.ErrInvalidInput,
				"compile stem pattern",
				fmt.Errorf("pattern %q has no capture group", stemPattern),
			)
		}
		c.stem = stem
	}
	return c, nil
}

// Classify is total: every asset yields exactly one role. mismatch reports
// that a configured stem pattern failed to produce a stem for this filename
// and the default rule was used instead (informational, never fatal).
func (c *Classifier) Classify(asset domain.Asset) (classified domain.ClassifiedAsset, mismatch bool) {
	name := asset.OriginalFileName
	stem, fromPattern := c.stemOf(name)

	role := domain.RoleUnclassified
	switch {
	case c.cover.MatchString(name):
		role = domain.RoleCover
	case c.raw.MatchString(name):
		role = domain.RoleRaw
	}

	classified = domain.ClassifiedAsset{
		ID:       asset.ID,
		Filename: name,
		Stem:     stem,
		Role:     role,
	}
	return classified, c.stem != nil && !fromPattern
}

func (c *Classifier) stemOf(name string) (stem string, fromPattern bool) {
	if c.stem != nil {
		// An empty first capture counts as a non-match and falls back
		// to the default rule.
		if m := c.stem.FindStringSubmatch(name); len(m) > 1 && m[1] != "" {
			return m[1], true
		}
	}
	return defaultStem(name), false
}

// defaultStem is exactly "substring before the last period, or the whole
// string if no period exists". A hidden file with a single extension still
// strips from its last dot.
func defaultStem(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[:i]
	}
	return name
}

// NewClassifierFromRequest validates and compiles the patterns of a stack
// request before any network call is made.
func NewClassifierFromRequest(req domain.StackRequest) (*Classifier, error) {
	if strings.TrimSpace(req.CoverPattern) == "" {
		return nil, domain.WrapError(domain.ErrInvalidInput, "compile cover pattern", errors.New("pattern is empty"))
	}
	if strings.TrimSpace(req.RawPattern) == "" {
		return nil, domain.WrapError(domain.ErrInvalidInput, "compile raw pattern", errors.New("pattern is empty"))
	}
	return NewClassifier(req.CoverPattern, req.RawPattern, req.StemPattern)
}
