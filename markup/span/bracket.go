package span

import (
	"strings"

	"github.com/npillmayer/namumark/markup/ast"
	"github.com/npillmayer/namumark/markup/scan"
	"github.com/npillmayer/namumark/markup/value"
)

// Bracket directives.
const (
	FoldingDirective = "#!folding "
	SyntaxDirective  = "#!syntax "
)

// SyntaxLanguages are the languages recognized by `{{{#!syntax …}}}`.
// Further languages may be configured with New.
var SyntaxLanguages = []string{
	"basic", "bash", "c", "cpp", "csharp", "css", "erlang", "go", "html",
	"java", "javascript", "json", "kotlin", "lisp", "lua", "markdown",
	"objectivec", "perl", "php", "powershell", "python", "ruby", "rust",
	"sql", "swift", "typescript", "xml", "yaml",
}

// bracket parses a `{{{…}}}` region and dispatches on its directive.
func (p *Parser) bracket(input string) (ast.Span, string, bool) {
	inner, rest, ok := scan.MatchBracket(input)
	if !ok {
		return nil, input, false
	}
	if level, text, ok := fontSize(inner, '+'); ok {
		return &ast.SizeUp{Level: level, Spans: p.List(text)}, rest, true
	}
	if level, text, ok := fontSize(inner, '-'); ok {
		return &ast.SizeDown{Level: level, Spans: p.List(text)}, rest, true
	}
	if color, text, ok := colored(inner); ok {
		return &ast.Colored{Color: color, Spans: p.List(text)}, rest, true
	}
	if body, ok := strings.CutPrefix(inner, FoldingDirective); ok {
		var blocks []ast.Multiline
		if p.blocks != nil {
			blocks = p.blocks.MultilineList(body)
		}
		return &ast.Folding{Blocks: blocks}, rest, true
	}
	if body, ok := strings.CutPrefix(inner, SyntaxDirective); ok {
		if lang, code, ok := p.language(body); ok {
			return &ast.SyntaxHighlight{Language: lang, Code: code}, rest, true
		}
		tracer().Debugf("unknown syntax language in %.20q", body)
	}
	return &ast.Raw{Text: inner}, rest, true
}

// fontSize recognizes `+N ` and `-N ` with N in 1…5.
func fontSize(inner string, sign byte) (ast.FontSizeLevel, string, bool) {
	if len(inner) < 3 || inner[0] != sign || inner[2] != ' ' {
		return 0, inner, false
	}
	if d := inner[1]; d < '1' || d > '0'+ast.MaxFontSizeLevel {
		return 0, inner, false
	}
	return ast.NewFontSizeLevel(int(inner[1] - '0')), inner[3:], true
}

// colored recognizes `#RRGGBB `.
func colored(inner string) (value.Color, string, bool) {
	if len(inner) < 8 || inner[0] != '#' || inner[7] != ' ' || !value.IsHexCode(inner[1:7]) {
		return value.Black, inner, false
	}
	return value.ParseColor(inner[:7]), inner[8:], true
}

// language finds the longest known language name at the start of body. The
// name has to be followed by whitespace or end the bracket. The code is
// everything after the name.
func (p *Parser) language(body string) (lang, code string, ok bool) {
	for n := 1; n <= len(body) && n <= p.maxLang; n++ {
		prefix := body[:n]
		if !p.languages.HasKeysWithPrefix(prefix) {
			break
		}
		if _, found := p.languages.Find(prefix); !found {
			continue
		}
		if n == len(body) || isSpace(body[n]) {
			lang, code, ok = prefix, body[n:], true
		}
	}
	return
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
