package crawldex_test

import (
	"testing"

	"github.com/fwojciec/crawldex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSearchIndex returns {"cat": {"p1":2,"p2":1}, "dog": {"p2":3}}.
func newSearchIndex() *crawldex.Index {
	idx := crawldex.NewIndex()
	idx.Update("p1", map[string]int{"cat": 2})
	idx.Update("p2", map[string]int{"cat": 1, "dog": 3})
	return idx
}

func TestSearch(t *testing.T) {
	t.Parallel()

	t.Run("intersects postings of every term", func(t *testing.T) {
		t.Parallel()

		result, err := crawldex.Search(newSearchIndex(), "cat dog")

		require.NoError(t, err)
		assert.Equal(t, []string{"p2"}, result.URLs)
		assert.Equal(t, []string{"cat", "dog"}, result.Terms)
		assert.Empty(t, result.Missing)
	})

	t.Run("returns sorted URLs for a single term", func(t *testing.T) {
		t.Parallel()

		result, err := crawldex.Search(newSearchIndex(), "cat")

		require.NoError(t, err)
		assert.Equal(t, []string{"p1", "p2"}, result.URLs)
	})

	t.Run("returns no URLs for unknown term", func(t *testing.T) {
		t.Parallel()

		result, err := crawldex.Search(newSearchIndex(), "bird")

		require.NoError(t, err)
		assert.Empty(t, result.URLs)
		assert.Equal(t, "bird", result.Missing)
	})

	t.Run("stops at the first missing later term", func(t *testing.T) {
		t.Parallel()

		result, err := crawldex.Search(newSearchIndex(), "cat bird dog")

		require.NoError(t, err)
		assert.Empty(t, result.URLs)
		assert.Equal(t, "bird", result.Missing)
	})

	t.Run("normalizes the query like indexed text", func(t *testing.T) {
		t.Parallel()

		result, err := crawldex.Search(newSearchIndex(), "  CAT, Dog! ")

		require.NoError(t, err)
		assert.Equal(t, []string{"p2"}, result.URLs)
	})

	t.Run("reports empty query", func(t *testing.T) {
		t.Parallel()

		result, err := crawldex.Search(newSearchIndex(), "")

		require.Error(t, err)
		assert.Nil(t, result)
		assert.Equal(t, crawldex.EINVALID, crawldex.ErrorCode(err))
		assert.Contains(t, crawldex.ErrorMessage(err), "empty query")
	})

	t.Run("reports query of punctuation only as empty", func(t *testing.T) {
		t.Parallel()

		_, err := crawldex.Search(newSearchIndex(), "?!")

		assert.Equal(t, crawldex.EINVALID, crawldex.ErrorCode(err))
	})

	t.Run("treats nil index as empty", func(t *testing.T) {
		t.Parallel()

		result, err := crawldex.Search(nil, "cat")

		require.NoError(t, err)
		assert.Empty(t, result.URLs)
	})
}
