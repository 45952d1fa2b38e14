package span

import (
	"strings"
	"sync"

	"github.com/derekparker/trie"
	"github.com/npillmayer/namumark/markup/ast"
	"github.com/npillmayer/namumark/markup/scan"
	"github.com/npillmayer/uax/grapheme"
)

// BlockLister parses text into a list of multiline blocks. It is implemented
// by the block grammar.
type BlockLister interface {
	MultilineList(input string) []ast.Multiline
}

// Parser parses span lists. A Parser does not hold any parsing state and may
// be used concurrently.
type Parser struct {
	blocks    BlockLister
	languages *trie.Trie
	maxLang   int // length of the longest language name
}

var setupGraphemes sync.Once

// New creates a span parser. blocks parses the content of folding brackets.
// languages are added to the built-in names of syntax highlight languages.
func New(blocks BlockLister, languages ...string) *Parser {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	p := &Parser{
		blocks:    blocks,
		languages: trie.New(),
	}
	for _, list := range [][]string{SyntaxLanguages, languages} {
		for _, lang := range list {
			if lang == "" {
				continue
			}
			p.languages.Add(lang, lang)
			if len(lang) > p.maxLang {
				p.maxLang = len(lang)
			}
		}
	}
	return p
}

// List parses input into a list of spans. It consumes all of input.
func (p *Parser) List(input string) []ast.Span {
	var list []ast.Span
	for input != "" {
		span, rest, ok := p.span(input)
		if !ok || len(rest) >= len(input) {
			tracer().Errorf("span list stalled at %.20q", input)
			break
		}
		list = append(list, span)
		input = rest
	}
	return list
}

func (p *Parser) span(input string) (ast.Span, string, bool) {
	if s, rest, ok := p.semantic(input); ok {
		return s, rest, true
	}
	if s, rest, ok := p.bracket(input); ok {
		return s, rest, true
	}
	if s, rest, ok := p.command(input); ok {
		return s, rest, true
	}
	if s, rest, ok := p.macro(input); ok {
		return s, rest, true
	}
	return p.inline(input)
}

// inline consumes literal text up to the next position where a semantic or
// bracket span starts. It advances by grapheme clusters and always consumes
// at least one cluster of non-empty input.
func (p *Parser) inline(input string) (ast.Span, string, bool) {
	if input == "" {
		return nil, input, false
	}
	segment := input
	if i := strings.IndexByte(input, '\n'); i > 0 {
		segment = input[:i]
	} else if i == 0 {
		segment = input[:1]
	}
	gstr := grapheme.StringFromString(segment)
	pos := 0
	for i := 0; i < gstr.Len(); i++ {
		if i > 0 && p.startsSpan(input[pos:]) {
			break
		}
		pos += len(gstr.Nth(i))
	}
	if pos == 0 { // no cluster found, take a single byte
		pos = 1
	}
	return &ast.Inline{Text: input[:pos]}, input[pos:], true
}

// startsSpan is the stop condition of inline runs.
func (p *Parser) startsSpan(input string) bool {
	return startsSemantic(input) || scan.StartsWithBracket(input)
}
