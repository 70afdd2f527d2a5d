// Package fs implements crawldex storage on the local filesystem.
package fs

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fwojciec/crawldex"
)

// Ensure IndexStore implements crawldex.IndexStore at compile time.
var _ crawldex.IndexStore = (*IndexStore)(nil)

// IndexStore implements crawldex.IndexStore as a single JSON file.
// Saves go to path.tmp first and are renamed over path, so a reader
// never observes a partially written index.
type IndexStore struct {
	path string
}

// NewIndexStore creates a new IndexStore backed by the file at path.
func NewIndexStore(path string) *IndexStore {
	return &IndexStore{path: path}
}

func (s *IndexStore) tempPath() string {
	return s.path + ".tmp"
}

func (s *IndexStore) SaveIndex(ctx context.Context, idx *crawldex.Index) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := idx.Serialize()
	if err != nil {
		return err
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return crawldex.Errorf(crawldex.EINTERNAL, "create index directory: %v", err)
		}
	}

	if err := os.WriteFile(s.tempPath(), data, 0644); err != nil {
		return crawldex.Errorf(crawldex.EINTERNAL, "write index: %v", err)
	}
	if err := os.Rename(s.tempPath(), s.path); err != nil {
		_ = os.Remove(s.tempPath())
		return crawldex.Errorf(crawldex.EINTERNAL, "replace index: %v", err)
	}
	return nil
}

func (s *IndexStore) LoadIndex(ctx context.Context) (*crawldex.Index, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, crawldex.Errorf(crawldex.ENOTFOUND, "index file %s not found", s.path)
	} else if err != nil {
		return nil, crawldex.Errorf(crawldex.EINTERNAL, "read index: %v", err)
	}
	return crawldex.DeserializeIndex(data)
}
