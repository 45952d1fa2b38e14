package block

import (
	"github.com/npillmayer/namumark/markup/ast"
	"github.com/npillmayer/namumark/markup/span"
)

// Parser parses documents. It holds configuration only and may be used
// concurrently.
type Parser struct {
	spans *span.Parser
}

// New creates a block parser. languages are handed to the span parser as
// additional syntax highlight languages.
func New(languages ...string) *Parser {
	p := &Parser{}
	p.spans = span.New(p, languages...)
	return p
}

// Spans returns the span parser used for block content.
func (p *Parser) Spans() *span.Parser {
	return p.spans
}

// Parse parses a document into a list of blocks.
func (p *Parser) Parse(input string) []ast.Block {
	var blocks []ast.Block
	for input != "" {
		b, rest, ok := p.block(input)
		if !ok || len(rest) >= len(input) {
			tracer().Errorf("block list stalled at %.20q", input)
			break
		}
		blocks = append(blocks, b)
		input = rest
	}
	tracer().Debugf("parsed document into %d blocks", len(blocks))
	return blocks
}

// MultilineList parses input into a list of multiline blocks. Singleline
// blocks are not recognized. MultilineList implements span.BlockLister.
func (p *Parser) MultilineList(input string) []ast.Multiline {
	var blocks []ast.Multiline
	for input != "" {
		b, rest, ok := p.multiline(input)
		if !ok || len(rest) >= len(input) {
			tracer().Errorf("multiline block list stalled at %.20q", input)
			break
		}
		blocks = append(blocks, b)
		input = rest
	}
	return blocks
}

var _ span.BlockLister = (*Parser)(nil)

func (p *Parser) block(input string) (ast.Block, string, bool) {
	if b, rest, ok := p.singleline(input); ok {
		return b, rest, true
	}
	return p.multiline(input)
}

func (p *Parser) multiline(input string) (ast.Multiline, string, bool) {
	if b, rest, ok := p.list(input); ok {
		return b, rest, true
	}
	if b, rest, ok := p.indent(input); ok {
		return b, rest, true
	}
	if b, rest, ok := horizontalRule(input); ok {
		return b, rest, true
	}
	if b, rest, ok := p.blockquote(input); ok {
		return b, rest, true
	}
	return p.paragraph(input)
}
