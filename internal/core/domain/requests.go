package domain

// StackRequest carries one invocation of the pairing command. Patterns are
// compiled by the organizer before any network call; invalid patterns are a
// configuration error. When AlbumID is set the assets come from that album
// instead of a metadata search.
type StackRequest struct {
	CoverPattern string
	RawPattern   string
	StemPattern  string
	Dates        DateRange
	AlbumID      string
	DryRun       bool
}

// PairFailure records one stack creation that failed without aborting the batch.
type PairFailure struct {
	Pair Pair
	Err  error
}

// StackReport is the outcome of one pairing run. The run as a whole
// succeeded only when Failures is empty.
type StackReport struct {
	Resolution PairResolution
	Created    int
	Failures   []PairFailure
}

// AlbumRequest carries one invocation of the album command.
type AlbumRequest struct {
	Name      string
	Locations []string
	Dates     DateRange
	DryRun    bool
}

// AlbumReport is the outcome of one aggregation run. Album is zero when
// DryRun is set.
type AlbumReport struct {
	Aggregation *AggregationResult
	Album       Album
	DryRun      bool
}
