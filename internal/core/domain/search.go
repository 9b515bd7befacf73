package domain

import "time"

// SearchField scopes a free-text location term to one metadata field.
type SearchField string

const (
	FieldNone    SearchField = ""
	FieldCity    SearchField = "city"
	FieldCountry SearchField = "country"
	FieldState   SearchField = "state"
)

// DateRange bounds a search by capture time. A zero From or To leaves
// that side unbounded.
type DateRange struct {
	From time.Time
	To   time.Time
}

// SearchQuery describes one field-scoped catalog search. Page and size
// are supplied separately by the paginated fetcher.
type SearchQuery struct {
	Dates DateRange
	Field SearchField
	Term  string
}

// AssetRef is the identity-plus-filename view kept after aggregation.
type AssetRef struct {
	ID       string
	Filename string
}

// LocationResult is the deduplicated union of the three field-scoped
// searches for a single location term. CountsByField holds the
// pre-deduplication size of each field's own result set.
type LocationResult struct {
	Location      string
	Assets        []AssetRef
	CountsByField map[SearchField]int
}

// LocationReport is the per-location slice of an aggregation: the field
// counts plus how many assets this location contributed that no earlier
// location had already claimed.
type LocationReport struct {
	Location      string
	CountsByField map[SearchField]int
	NewAssets     int
}

// AggregationResult is the cross-location union, deduplicated by asset
// id, in first-occurrence order.
type AggregationResult struct {
	Assets    []AssetRef
	Locations []LocationReport
}
