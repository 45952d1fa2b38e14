package block

import (
	"strings"

	"github.com/npillmayer/namumark/markup/ast"
	"github.com/npillmayer/namumark/markup/scan"
)

// UnorderedMarker starts an item of an unordered list.
const UnorderedMarker = " *"

// OrderedMarkers maps the markers of ordered list items to their numbering
// schemes, in the order they are tried.
var OrderedMarkers = []struct {
	Marker string
	Style  ast.IndexStyle
}{
	{" 1.", ast.Numeric},
	{" a.", ast.LowerAlphabet},
	{" A.", ast.UpperAlphabet},
	{" i.", ast.LowerRoman},
	{" I.", ast.UpperRoman},
	{" ㄱ.", ast.HangulChosung},
	{" 가.", ast.HangulSyllable},
}

// OrderedMarker returns the marker for a numbering scheme.
func OrderedMarker(style ast.IndexStyle) string {
	for _, m := range OrderedMarkers {
		if m.Style == style {
			return m.Marker
		}
	}
	return OrderedMarkers[0].Marker
}

func (p *Parser) list(input string) (ast.Multiline, string, bool) {
	if strings.HasPrefix(input, UnorderedMarker) {
		items, rest := p.items(input[len(UnorderedMarker):], UnorderedMarker)
		return &ast.UnorderedList{Items: items}, rest, true
	}
	for _, m := range OrderedMarkers {
		if !strings.HasPrefix(input, m.Marker) {
			continue
		}
		start := ast.DefaultStart
		first := input[len(m.Marker):]
		if token, rest, ok := startIndex(first); ok {
			start, first = token, rest
		}
		items, rest := p.items(first, m.Marker)
		return &ast.OrderedList{Items: items, Index: ast.ListIndex{Style: m.Style, Start: start}}, rest, true
	}
	return nil, input, false
}

// items collects the items of a list. first follows the marker of the first
// item. An empty first item is dropped. A continuation item with a start
// index `#token` starts a new list.
func (p *Parser) items(first, marker string) ([]ast.ListItem, string) {
	var items []ast.ListItem
	rest, content := itemLine(first)
	if content != "" {
		items = append(items, ast.ListItem{Blocks: p.MultilineList(content)})
	}
	for strings.HasPrefix(rest, marker) {
		next := rest[len(marker):]
		if _, _, ok := startIndex(next); ok {
			tracer().Debugf("start index on continuation item, breaking list")
			break
		}
		rest, content = itemLine(next)
		items = append(items, ast.ListItem{Blocks: p.MultilineList(content)})
	}
	return items, rest
}

// itemLine takes the content of a list item, which extends to the next
// newline outside of a bracket region. One leading space is dropped.
func itemLine(input string) (rest, content string) {
	rest, line := scan.LineWithBracket(input)
	return rest, scan.Whitespace(line)
}

// startIndex matches `#token` with token consisting of digits and lowercase
// ASCII letters.
func startIndex(input string) (token, rest string, ok bool) {
	if !strings.HasPrefix(input, "#") {
		return "", input, false
	}
	n := 1
	for n < len(input) && isIndexChar(input[n]) {
		n++
	}
	if n == 1 {
		return "", input, false
	}
	return input[1:n], input[n:], true
}

func isIndexChar(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'z'
}

func startsList(input string) bool {
	if strings.HasPrefix(input, UnorderedMarker) {
		return true
	}
	for _, m := range OrderedMarkers {
		if strings.HasPrefix(input, m.Marker) {
			return true
		}
	}
	return false
}
