package crawldex

import "context"

// IndexStore persists a whole Index with atomic semantics: a save either
// replaces the previous copy completely or leaves it untouched, and a load
// either returns a complete Index or an error.
type IndexStore interface {
	// SaveIndex writes the index.
	SaveIndex(ctx context.Context, idx *Index) error

	// LoadIndex reads the index.
	// Returns ENOTFOUND if nothing has been saved and ECORRUPT if the
	// stored data is not a valid index.
	LoadIndex(ctx context.Context) (*Index, error)
}
