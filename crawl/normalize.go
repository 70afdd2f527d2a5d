package crawl

import (
	"net/url"
	"strings"

	"github.com/fwojciec/crawldex"
)

// Normalizer canonicalizes discovered links and restricts them to the host
// of the crawl origin.
//
// The canonical form is scheme://host/path, followed by ?query when the query
// is non-empty. Fragments are dropped, so links differing only by fragment
// map to the same URL. No case or trailing-slash normalization is applied
// beyond what URL parsing does to the scheme.
type Normalizer struct {
	host string
}

// NewNormalizer creates a Normalizer that accepts links on origin's host.
// Returns EINVALID if origin is not an absolute http(s) URL.
func NewNormalizer(origin string) (*Normalizer, error) {
	u, err := url.Parse(origin)
	if err != nil {
		return nil, crawldex.Errorf(crawldex.EINVALID, "invalid origin URL: %v", err)
	}
	if !isHTTPScheme(u.Scheme) || u.Host == "" {
		return nil, crawldex.Errorf(crawldex.EINVALID, "origin URL %q must be an absolute http(s) URL", origin)
	}
	return &Normalizer{host: u.Host}, nil
}

// Host returns the host links are restricted to.
func (n *Normalizer) Host() string {
	return n.host
}

// Normalize resolves href against baseURL and returns its canonical form.
// The bool result is false when the link is a same-page fragment reference,
// cannot be parsed, uses a scheme other than http or https, or points to a
// different host.
func (n *Normalizer) Normalize(baseURL, href string) (string, bool) {
	href = strings.TrimSpace(href)
	if strings.HasPrefix(href, "#") {
		return "", false
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return "", false
	}
	ref, err := url.Parse(href)
	if err != nil {
		return "", false
	}

	resolved := base.ResolveReference(ref)
	if !isHTTPScheme(resolved.Scheme) {
		return "", false
	}
	if resolved.Host != n.host {
		return "", false
	}

	return canonicalURL(resolved), true
}

// canonicalURL serializes u without userinfo or fragment.
func canonicalURL(u *url.URL) string {
	s := u.Scheme + "://" + u.Host + u.EscapedPath()
	if u.RawQuery != "" {
		s += "?" + u.RawQuery
	}
	return s
}

func isHTTPScheme(scheme string) bool {
	return scheme == "http" || scheme == "https"
}
