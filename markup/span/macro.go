package span

import (
	"strings"

	"github.com/npillmayer/namumark/markup/ast"
	"github.com/npillmayer/namumark/markup/value"
)

// Keyword macros, matched against the complete macro text.
var keywordMacros = []struct {
	keywords []string
	create   func() ast.Span
}{
	{[]string{"각주", "footnote"}, func() ast.Span { return &ast.Footnote{} }},
	{[]string{"br"}, func() ast.Span { return &ast.Break{} }},
	{[]string{"date"}, func() ast.Span { return &ast.Date{} }},
	{[]string{"datetime"}, func() ast.Span { return &ast.Datetime{} }},
}

// macro parses `[…]`. The macro ends at the first `]`. Macros are tried in
// the order footnote, br, date, datetime, pagecount, include, table of
// contents, anchor, math, age, dday, ruby, footnote reference.
func (p *Parser) macro(input string) (ast.Span, string, bool) {
	if !strings.HasPrefix(input, "[") {
		return nil, input, false
	}
	i := strings.IndexByte(input[1:], ']')
	if i < 0 {
		return nil, input, false
	}
	line, rest := input[1:1+i], input[1+i+1:]
	if s, ok := p.macroSpan(line); ok {
		return s, rest, true
	}
	return nil, input, false
}

func (p *Parser) macroSpan(line string) (ast.Span, bool) {
	for _, m := range keywordMacros {
		for _, kw := range m.keywords {
			if line == kw {
				return m.create(), true
			}
		}
	}
	if line == "pagecount" {
		return &ast.PageCount{}, true
	}
	if ns, ok := call(line, "pagecount"); ok {
		return &ast.PageCount{Namespace: ns, Scoped: true}, true
	}
	if args, ok := call(line, "include"); ok {
		return include(args), true
	}
	if line == "목차" || line == "tableofcontents" {
		return &ast.TableOfContents{}, true
	}
	if arg, ok := call(line, "anchor"); ok {
		return &ast.Anchor{Name: arg}, true
	}
	if arg, ok := call(line, "math"); ok {
		return &ast.Latex{Expr: arg}, true
	}
	if arg, ok := call(line, "age"); ok {
		return &ast.Age{Date: arg}, true
	}
	if arg, ok := call(line, "dday"); ok {
		return &ast.Dday{Date: arg}, true
	}
	if args, ok := call(line, "ruby"); ok {
		return ruby(args), true
	}
	if text, ok := strings.CutPrefix(line, "*"); ok {
		label := ""
		if i := strings.IndexByte(text, ' '); i >= 0 {
			label, text = text[:i], text[i+1:]
		}
		return &ast.FootnoteRef{Label: label, Spans: p.List(text)}, true
	}
	return nil, false
}

// call matches `name(args)` with the first ')' ending the macro text.
func call(line, name string) (string, bool) {
	args, ok := strings.CutPrefix(line, name+"(")
	if !ok {
		return "", false
	}
	i := strings.IndexByte(args, ')')
	if i < 0 || i != len(args)-1 {
		return "", false
	}
	return args[:i], true
}

// include parses `namespace, key=value, …`. Arguments without '=' are kept
// with an empty value.
func include(args string) *ast.Include {
	ns, params, _ := strings.Cut(args, ",")
	inc := &ast.Include{Namespace: ns}
	for _, token := range strings.Split(params, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		key, val, _ := strings.Cut(token, "=")
		inc.Args = append(inc.Args, ast.IncludeArg{
			Key:   strings.TrimSpace(key),
			Value: strings.TrimSpace(val),
		})
	}
	return inc
}

// ruby parses `word, ruby=text, color=#RRGGBB`.
func ruby(args string) *ast.Ruby {
	word, opts, _ := strings.Cut(args, ",")
	r := &ast.Ruby{Word: word, Option: ast.RubyOption{Color: value.Black}}
	for _, token := range strings.Split(opts, ",") {
		key, val, ok := keyValue(token)
		if !ok {
			continue
		}
		switch key {
		case "ruby":
			r.Option.Text = val
		case "color":
			r.Option.Color = value.ParseColor(val)
		}
	}
	return r
}
