// Package goquery implements crawldex.Parser on top of goquery and the
// golang.org/x/net/html node tree.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/crawldex"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure Parser implements crawldex.Parser at compile time.
var _ crawldex.Parser = (*Parser)(nil)

// skipText lists elements whose contents are not visible page text.
var skipText = map[atom.Atom]bool{
	atom.Script:   true,
	atom.Style:    true,
	atom.Noscript: true,
	atom.Template: true,
}

// Parser extracts visible text and anchor hrefs from HTML.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse returns the document text, with text nodes joined by single spaces,
// and the href of every anchor in document order. Empty and duplicate hrefs
// are kept; resolving and filtering them is up to the caller.
func (p *Parser) Parse(raw string) (*crawldex.ParsedPage, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return nil, crawldex.Errorf(crawldex.EPARSE, "failed to parse HTML: %v", err)
	}

	page := &crawldex.ParsedPage{
		Text:  extractText(doc.Nodes),
		Links: []string{},
	}

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		page.Links = append(page.Links, href)
	})

	return page, nil
}

// extractText walks the node tree and collects text nodes outside of
// non-visible elements.
func extractText(nodes []*html.Node) string {
	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			if text := strings.TrimSpace(n.Data); text != "" {
				parts = append(parts, text)
			}
			return
		case html.ElementNode:
			if skipText[n.DataAtom] {
				return
			}
		case html.CommentNode:
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range nodes {
		walk(n)
	}
	return strings.Join(parts, " ")
}
