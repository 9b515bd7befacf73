package domain

// Album is the catalog's named asset collection.
type Album struct {
	ID   string
	Name string
}
