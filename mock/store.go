package mock

import (
	"context"

	"github.com/fwojciec/crawldex"
)

var _ crawldex.IndexStore = (*IndexStore)(nil)

// IndexStore is a mock implementation of crawldex.IndexStore.
type IndexStore struct {
	SaveIndexFn func(ctx context.Context, idx *crawldex.Index) error
	LoadIndexFn func(ctx context.Context) (*crawldex.Index, error)
}

func (s *IndexStore) SaveIndex(ctx context.Context, idx *crawldex.Index) error {
	return s.SaveIndexFn(ctx, idx)
}

func (s *IndexStore) LoadIndex(ctx context.Context) (*crawldex.Index, error) {
	return s.LoadIndexFn(ctx)
}
