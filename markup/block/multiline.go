package block

import (
	"strings"

	"github.com/npillmayer/namumark/markup/ast"
	"github.com/npillmayer/namumark/markup/scan"
)

// Horizontal rules consist of 4 to 9 dashes.
const (
	MinRule = 4
	MaxRule = 9
)

// indent parses content indented by one space. The content ends at the first
// newline outside of a bracket region and may contain further indentation.
func (p *Parser) indent(input string) (ast.Multiline, string, bool) {
	if !strings.HasPrefix(input, " ") {
		return nil, input, false
	}
	rest, line := scan.LineWithBracket(input[1:])
	return &ast.Indent{Blocks: p.MultilineList(line)}, rest, true
}

// horizontalRule matches a line of 4 to 9 dashes, optionally preceded by
// spaces.
func horizontalRule(input string) (ast.Multiline, string, bool) {
	rest, line := scan.Line(input)
	if !isRule(line) {
		return nil, input, false
	}
	return &ast.HorizontalRule{}, rest, true
}

func isRule(line string) bool {
	dashes := strings.TrimLeft(line, " ")
	if len(dashes) < MinRule || len(dashes) > MaxRule {
		return false
	}
	return strings.Trim(dashes, "-") == ""
}

// blockquote consumes all consecutive lines starting with '>'. Each line,
// stripped of '>' and one space, is parsed on its own. Lines of a
// blockquote may hold lists, indents, nested blockquotes and paragraphs.
func (p *Parser) blockquote(input string) (ast.Multiline, string, bool) {
	if !strings.HasPrefix(input, ">") {
		return nil, input, false
	}
	quote := &ast.Blockquote{}
	for strings.HasPrefix(input, ">") {
		rest, line := scan.Line(input)
		quote.Blocks = append(quote.Blocks, p.quoteLine(scan.Whitespace(line[1:]))...)
		input = rest
	}
	return quote, input, true
}

func (p *Parser) quoteLine(line string) []ast.Multiline {
	if line == "" {
		return []ast.Multiline{&ast.Paragraph{}}
	}
	var blocks []ast.Multiline
	for line != "" {
		b, rest, ok := p.list(line)
		if !ok {
			b, rest, ok = p.indent(line)
		}
		if !ok {
			b, rest, ok = p.blockquote(line)
		}
		if !ok {
			b, rest, _ = p.paragraph(line)
		}
		if len(rest) >= len(line) {
			break
		}
		blocks = append(blocks, b)
		line = rest
	}
	return blocks
}

// paragraph absorbs lines until the next line starts a blockquote, a
// horizontal rule, a list, a comment or an open heading. Bracket regions
// spanning several lines are absorbed as a whole. The newline ending the
// paragraph is consumed but not part of its content.
func (p *Parser) paragraph(input string) (ast.Multiline, string, bool) {
	if input == "" {
		return nil, input, false
	}
	pos := 0
	for {
		_, line := scan.LineWithBracket(input[pos:])
		pos += len(line)
		if pos >= len(input) { // no more newlines
			break
		}
		next := input[pos+1:]
		if next == "" || interruptsParagraph(next) {
			content := input[:pos]
			return &ast.Paragraph{Spans: p.spans.List(content)}, next, true
		}
		pos++ // keep the newline
	}
	return &ast.Paragraph{Spans: p.spans.List(input)}, "", true
}

func interruptsParagraph(input string) bool {
	if strings.HasPrefix(input, ">") || strings.HasPrefix(input, CommentMarker) {
		return true
	}
	if _, line := scan.Line(input); isRule(line) {
		return true
	}
	return startsList(input) || startsOpenHeading(input)
}
