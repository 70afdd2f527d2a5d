package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/crawldex"
	"github.com/fwojciec/crawldex/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleIndex() *crawldex.Index {
	idx := crawldex.NewIndex()
	idx.Update("https://x.com/p1", map[string]int{"cat": 2})
	idx.Update("https://x.com/p2", map[string]int{"cat": 1, "dog": 3})
	return idx
}

func TestIndexStore_SaveIndex(t *testing.T) {
	t.Parallel()

	t.Run("writes serialized index to path", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "inverted_index.json")
		store := fs.NewIndexStore(path)
		idx := sampleIndex()

		err := store.SaveIndex(context.Background(), idx)

		require.NoError(t, err)
		want, err := idx.Serialize()
		require.NoError(t, err)
		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, string(want), string(got))

		_, err = os.Stat(path + ".tmp")
		assert.True(t, os.IsNotExist(err), "temp file should be renamed away")
	})

	t.Run("creates parent directories", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "data", "nested", "index.json")
		store := fs.NewIndexStore(path)

		err := store.SaveIndex(context.Background(), sampleIndex())

		require.NoError(t, err)
		_, err = os.Stat(path)
		require.NoError(t, err)
	})

	t.Run("replaces existing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "index.json")
		require.NoError(t, os.WriteFile(path, []byte("stale"), 0644))
		store := fs.NewIndexStore(path)

		err := store.SaveIndex(context.Background(), sampleIndex())
		require.NoError(t, err)

		loaded, err := store.LoadIndex(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"cat", "dog"}, loaded.Words())
	})

	t.Run("leaves previous index intact when save fails", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "index.json")
		store := fs.NewIndexStore(path)
		require.NoError(t, store.SaveIndex(context.Background(), sampleIndex()))

		// A directory at the temp path makes the write fail.
		require.NoError(t, os.Mkdir(path+".tmp", 0755))

		next := crawldex.NewIndex()
		next.Update("https://x.com/p3", map[string]int{"bird": 1})
		err := store.SaveIndex(context.Background(), next)

		require.Error(t, err)
		assert.Equal(t, crawldex.EINTERNAL, crawldex.ErrorCode(err))
		loaded, err := store.LoadIndex(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"cat", "dog"}, loaded.Words())
	})

	t.Run("returns context error when canceled", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "index.json")
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := fs.NewIndexStore(path).SaveIndex(ctx, sampleIndex())

		require.ErrorIs(t, err, context.Canceled)
		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr))
	})
}

func TestIndexStore_LoadIndex(t *testing.T) {
	t.Parallel()

	t.Run("round-trips a saved index", func(t *testing.T) {
		t.Parallel()

		store := fs.NewIndexStore(filepath.Join(t.TempDir(), "index.json"))
		require.NoError(t, store.SaveIndex(context.Background(), sampleIndex()))

		loaded, err := store.LoadIndex(context.Background())

		require.NoError(t, err)
		assert.Equal(t, crawldex.Postings{"https://x.com/p1": 2, "https://x.com/p2": 1}, loaded.Postings("cat"))
		assert.Equal(t, crawldex.Postings{"https://x.com/p2": 3}, loaded.Postings("dog"))
	})

	t.Run("returns not found for missing file", func(t *testing.T) {
		t.Parallel()

		store := fs.NewIndexStore(filepath.Join(t.TempDir(), "missing.json"))

		loaded, err := store.LoadIndex(context.Background())

		assert.Nil(t, loaded)
		assert.Equal(t, crawldex.ENOTFOUND, crawldex.ErrorCode(err))
	})

	t.Run("returns corrupt for invalid contents", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "index.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"cat": `), 0644))

		loaded, err := fs.NewIndexStore(path).LoadIndex(context.Background())

		assert.Nil(t, loaded)
		assert.Equal(t, crawldex.ECORRUPT, crawldex.ErrorCode(err))
	})

	t.Run("loads an empty index", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "index.json")
		require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0644))

		loaded, err := fs.NewIndexStore(path).LoadIndex(context.Background())

		require.NoError(t, err)
		assert.True(t, loaded.IsEmpty())
	})
}
