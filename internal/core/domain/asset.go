package domain

// Asset is a read-only snapshot of one catalog asset. Assets are owned by
// the remote catalog and referenced by identifier only.
type Asset struct {
	ID               string
	OriginalFileName string
	StackID          string
}

// Role is the pairing role a classifier assigns to an asset.
type Role int

const (
	RoleUnclassified Role = iota
	RoleCover
	RoleRaw
)

func (r Role) String() string {
	switch r {
	case RoleCover:
		return "cover"
	case RoleRaw:
		return "raw"
	default:
		return "unclassified"
	}
}

// ClassifiedAsset is the derived view of one asset after stem extraction
// and role matching.
type ClassifiedAsset struct {
	ID       string
	Filename string
	Stem     string
	Role     Role
}

// Pair couples a cover asset with one raw asset sharing the same stem.
type Pair struct {
	Stem          string
	CoverID       string
	CoverFilename string
	RawID         string
	RawFilename   string
}

// ReplacedCover records a cover conflict resolved by last-writer-wins.
type ReplacedCover struct {
	Stem        string
	OldFilename string
	NewFilename string
}

// PairResolution is the complete outcome of grouping a classified asset
// stream: the pairs to stack plus everything worth reporting about what
// did not pair up.
type PairResolution struct {
	Pairs          []Pair
	SkippedNoMatch int
	StemMismatches []string
	ReplacedCovers []ReplacedCover
}
