package usecase

import "github.com/mzhokh/photocat/internal/core/domain"

// stemGroup holds at most one cover (last writer wins) and the raw assets
// seen for one stem, in input order.
type stemGroup struct {
	hasCover      bool
	coverID       string
	coverFilename string
	raws          []domain.ClassifiedAsset
}

type pairResolver struct {
	order  []string
	groups map[string]*stemGroup
}

func newPairResolver() *pairResolver {
	return &pairResolver{groups: make(map[string]*stemGroup)}
}

// ResolvePairs classifies the asset stream and groups it by stem. It is
// pure and deterministic: groups are finalized in first-seen-stem order,
// so the same input always yields the same pairs and counts. Unclassified
// assets never enter a group and never count as skipped.
func ResolvePairs(assets []domain.Asset, classifier *Classifier) domain.PairResolution {
	r := newPairResolver()
	var res domain.PairResolution

	for _, asset := range assets {
		classified, mismatch := classifier.Classify(asset)
		if mismatch {
			res.StemMismatches = append(res.StemMismatches, classified.Filename)
		}
		if replaced, ok := r.add(classified); ok {
			res.ReplacedCovers = append(res.ReplacedCovers, replaced)
		}
	}

	res.Pairs, res.SkippedNoMatch = r.finalize()
	return res
}

func (r *pairResolver) add(classified domain.ClassifiedAsset) (domain.ReplacedCover, bool) {
	switch classified.Role {
	case domain.RoleCover:
		g := r.group(classified.Stem)
		if g.hasCover {
			replaced := domain.ReplacedCover{
				Stem:        classified.Stem,
				OldFilename: g.coverFilename,
				NewFilename: classified.Filename,
			}
			g.coverID = classified.ID
			g.coverFilename = classified.Filename
			return replaced, true
		}
		g.hasCover = true
		g.coverID = classified.ID
		g.coverFilename = classified.Filename
	case domain.RoleRaw:
		g := r.group(classified.Stem)
		g.raws = append(g.raws, classified)
	}
	return domain.ReplacedCover{}, false
}

func (r *pairResolver) group(stem string) *stemGroup {
	if g, ok := r.groups[stem]; ok {
		return g
	}
	g := &stemGroup{}
	r.groups[stem] = g
	r.order = append(r.order, stem)
	return g
}

// finalize emits one pair per raw asset in every group that has a cover.
// A raw-only group contributes its raw count to skipped; a cover-only
// group contributes one.
func (r *pairResolver) finalize() ([]domain.Pair, int) {
	var pairs []domain.Pair
	skipped := 0

	for _, stem := range r.order {
		g := r.groups[stem]
		switch {
		case g.hasCover && len(g.raws) > 0:
			for _, raw := range g.raws {
				pairs = append(pairs, domain.Pair{
					Stem:          stem,
					CoverID:       g.coverID,
					CoverFilename: g.coverFilename,
					RawID:         raw.ID,
					RawFilename:   raw.Filename,
				})
			}
		case g.hasCover:
			skipped++
		case len(g.raws) > 0:
			skipped += len(g.raws)
		}
	}
	return pairs, skipped
}
