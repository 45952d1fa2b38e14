package span

import (
	"strings"

	"github.com/npillmayer/namumark/markup/ast"
)

// SemanticMarkers lists the decoration markers in the order they are tried.
// `'''` has to come before `''`.
var SemanticMarkers = []struct {
	Marker string
	Kind   ast.SemanticKind
}{
	{"'''", ast.Strong},
	{"''", ast.Emphasis},
	{"~~", ast.Delete},
	{"--", ast.Delete},
	{"__", ast.Underline},
	{"^^", ast.Superscript},
	{",,", ast.Subscript},
}

// semantic parses text enclosed in a pair of markers. The closing marker is
// the next occurrence of the marker, markers do not nest. A newline is a
// semantic span of its own.
func (p *Parser) semantic(input string) (ast.Span, string, bool) {
	for _, m := range SemanticMarkers {
		inner, rest, ok := enclosed(input, m.Marker)
		if ok {
			return &ast.Semantic{Kind: m.Kind, Spans: p.List(inner)}, rest, true
		}
	}
	if strings.HasPrefix(input, "\n") {
		return &ast.Semantic{Kind: ast.Linebreak}, input[1:], true
	}
	return nil, input, false
}

func enclosed(input, marker string) (inner, rest string, ok bool) {
	if !strings.HasPrefix(input, marker) {
		return "", input, false
	}
	body := input[len(marker):]
	i := strings.Index(body, marker)
	if i < 0 {
		return "", input, false
	}
	return body[:i], body[i+len(marker):], true
}

func startsSemantic(input string) bool {
	if strings.HasPrefix(input, "\n") {
		return true
	}
	for _, m := range SemanticMarkers {
		if _, _, ok := enclosed(input, m.Marker); ok {
			return true
		}
	}
	return false
}
