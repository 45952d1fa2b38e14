/*
Package namumark parses documents written in namumark, the markup dialect of
the Korean wiki namu.wiki, into a tree of typed nodes.

    blocks := namumark.Parse("= Title =\n'''bold''' text\n * item")

Parsing is total: every input is a valid document and markup which is not
recognized degrades to literal text. The result is a list of ast.Block
values (package markup/ast). Rendering the tree is left to clients; package
markup/format re-serializes a tree to canonical markup, package markup/text
extracts its literal text.

A Parser may be configured with options:

    p := namumark.New(
        namumark.WithNormalization(norm.NFC),
        namumark.WithSyntaxLanguages("haskell", "ocaml"),
    )
    blocks := p.Parse(document)

Parsers hold configuration only and may be shared between goroutines.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package namumark

import (
	"io"

	"github.com/npillmayer/namumark/core"
	"github.com/npillmayer/namumark/markup/ast"
	"github.com/npillmayer/namumark/markup/block"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/unicode/norm"
)

// tracer traces with key 'namumark'.
func tracer() tracing.Trace {
	return tracing.Select("namumark")
}

// Parser parses namumark documents.
type Parser struct {
	normalize bool
	form      norm.Form
	languages []string
	blocks    *block.Parser
}

// Option configures a Parser.
type Option func(*Parser)

// WithNormalization normalizes documents to a Unicode normal form before
// parsing. Without it, input is parsed as is, which keeps literal text
// byte-identical to the document. Normalizing to NFC lets decomposed Hangul
// match list markers such as ` 가.`.
func WithNormalization(form norm.Form) Option {
	return func(p *Parser) {
		p.normalize = true
		p.form = form
	}
}

// WithSyntaxLanguages adds languages to the names recognized by
// `{{{#!syntax language …}}}`.
func WithSyntaxLanguages(languages ...string) Option {
	return func(p *Parser) {
		p.languages = append(p.languages, languages...)
	}
}

// New creates a parser.
func New(opts ...Option) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	p.blocks = block.New(p.languages...)
	return p
}

var defaultParser = New()

// Parse parses a document with default settings.
func Parse(document string) []ast.Block {
	return defaultParser.Parse(document)
}

// Parse parses a document into a list of blocks.
func (p *Parser) Parse(document string) []ast.Block {
	if p.normalize {
		document = p.form.String(document)
	}
	return p.blocks.Parse(document)
}

// ParseReader reads a document from r and parses it. Errors reading r are
// returned with code core.EMISSING.
func (p *Parser) ParseReader(r io.Reader) ([]ast.Block, error) {
	if p.normalize {
		r = p.form.Reader(r)
	}
	document, err := io.ReadAll(r)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot read document")
	}
	tracer().Debugf("read document of %d bytes", len(document))
	return p.blocks.Parse(string(document)), nil
}
