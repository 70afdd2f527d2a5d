package crawl_test

import (
	"testing"

	"github.com/fwojciec/crawldex"
	"github.com/fwojciec/crawldex/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNormalizer(t *testing.T) {
	t.Parallel()

	t.Run("captures origin host", func(t *testing.T) {
		t.Parallel()

		n, err := crawl.NewNormalizer("https://x.com:8443/start")

		require.NoError(t, err)
		assert.Equal(t, "x.com:8443", n.Host())
	})

	for _, origin := range []string{"", "/relative", "ftp://x.com/", "https://", "::bad"} {
		t.Run("rejects "+origin, func(t *testing.T) {
			t.Parallel()

			_, err := crawl.NewNormalizer(origin)

			require.Error(t, err)
			assert.Equal(t, crawldex.EINVALID, crawldex.ErrorCode(err))
		})
	}
}

func TestNormalizer_Normalize(t *testing.T) {
	t.Parallel()

	n, err := crawl.NewNormalizer("https://x.com/")
	require.NoError(t, err)

	accepted := []struct {
		name string
		base string
		href string
		want string
	}{
		{"root-relative with query", "https://x.com/a", "/b?q=1", "https://x.com/b?q=1"},
		{"absolute same host", "https://x.com/a", "https://x.com/c", "https://x.com/c"},
		{"path-relative", "https://x.com/a/b", "c", "https://x.com/a/c"},
		{"parent directory", "https://x.com/a/b/", "../d", "https://x.com/a/d"},
		{"strips fragment", "https://x.com/a", "/b#section", "https://x.com/b"},
		{"strips fragment keeps query", "https://x.com/a", "/b?p=2#top", "https://x.com/b?p=2"},
		{"drops empty query", "https://x.com/a", "/b?", "https://x.com/b"},
		{"scheme-relative", "https://x.com/a", "//x.com/e", "https://x.com/e"},
		{"trims whitespace", "https://x.com/a", "  /page/2/ ", "https://x.com/page/2/"},
		{"keeps trailing slash", "https://x.com/a", "/tag/love/", "https://x.com/tag/love/"},
		{"empty href resolves to base", "https://x.com/a?x=1", "", "https://x.com/a?x=1"},
		{"lowercases scheme", "https://x.com/a", "HTTPS://x.com/f", "https://x.com/f"},
		{"http on same host", "https://x.com/a", "http://x.com/g", "http://x.com/g"},
	}
	for _, tc := range accepted {
		t.Run("accepts "+tc.name, func(t *testing.T) {
			t.Parallel()

			got, ok := n.Normalize(tc.base, tc.href)

			require.True(t, ok)
			assert.Equal(t, tc.want, got)
		})
	}

	rejected := []struct {
		name string
		href string
	}{
		{"fragment-only", "#top"},
		{"bare fragment marker", "#"},
		{"other host", "https://other.com/"},
		{"subdomain", "https://www.x.com/"},
		{"different port", "https://x.com:8080/"},
		{"mailto", "mailto:someone@x.com"},
		{"javascript", "javascript:void(0)"},
		{"ftp", "ftp://x.com/file"},
		{"unparsable", "http://[::1"},
	}
	for _, tc := range rejected {
		t.Run("rejects "+tc.name, func(t *testing.T) {
			t.Parallel()

			_, ok := n.Normalize("https://x.com/a", tc.href)

			assert.False(t, ok)
		})
	}

	t.Run("links differing only by fragment are equal", func(t *testing.T) {
		t.Parallel()

		a, okA := n.Normalize("https://x.com/", "/p#one")
		b, okB := n.Normalize("https://x.com/", "/p#two")

		require.True(t, okA)
		require.True(t, okB)
		assert.Equal(t, a, b)
	})
}
