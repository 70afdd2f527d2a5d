package crawldex

// ParsedPage holds what the crawler needs from one HTML document.
type ParsedPage struct {
	// Text is the visible text of the document, with text nodes joined by spaces.
	Text string

	// Links holds the raw href values of every anchor in document order.
	// Values are unresolved and may repeat.
	Links []string
}

// Parser turns raw HTML into plain text and outbound hrefs.
type Parser interface {
	// Parse processes raw HTML. Returns an EPARSE error when the document
	// cannot be read.
	Parse(html string) (*ParsedPage, error)
}
