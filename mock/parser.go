package mock

import "github.com/fwojciec/crawldex"

var _ crawldex.Parser = (*Parser)(nil)

// Parser is a mock implementation of crawldex.Parser.
type Parser struct {
	ParseFn func(html string) (*crawldex.ParsedPage, error)
}

func (p *Parser) Parse(html string) (*crawldex.ParsedPage, error) {
	return p.ParseFn(html)
}
