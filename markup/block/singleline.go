package block

import (
	"strings"

	"github.com/npillmayer/namumark/markup/ast"
	"github.com/npillmayer/namumark/markup/scan"
)

// CommentMarker starts a comment line.
const CommentMarker = "##"

// singleline tries open heading, closed heading and comment on the first
// line of input.
func (p *Parser) singleline(input string) (ast.Singleline, string, bool) {
	rest, line := scan.Line(input)
	if level, content, ok := openHeading(line); ok {
		return &ast.OpenHeading{Level: ast.NewHeadingLevel(level), Spans: p.spans.List(content)}, rest, true
	}
	if level, content, ok := closedHeading(line); ok {
		return &ast.ClosedHeading{Level: ast.NewHeadingLevel(level), Spans: p.spans.List(content)}, rest, true
	}
	if text, ok := strings.CutPrefix(line, CommentMarker); ok {
		return &ast.Comment{Text: text}, rest, true
	}
	return nil, input, false
}

// openHeading matches `= content =` with 1 to 6 markers on either side.
func openHeading(line string) (int, string, bool) {
	return heading(line, " ", " ")
}

// closedHeading matches `=# content #=` with 1 to 6 markers on either side.
func closedHeading(line string) (int, string, bool) {
	return heading(line, "# ", " #")
}

func heading(line, open, close string) (int, string, bool) {
	n := 0
	for n < len(line) && line[n] == '=' {
		n++
	}
	if n < 1 || n > ast.MaxHeadingLevel {
		return 0, "", false
	}
	markers := line[:n]
	head := markers + open
	tail := close + markers
	if len(line) < len(head)+len(tail) || !strings.HasPrefix(line, head) || !strings.HasSuffix(line, tail) {
		return 0, "", false
	}
	return n, line[len(head) : len(line)-len(tail)], true
}

// startsOpenHeading is true if the first line of input is an open heading.
func startsOpenHeading(input string) bool {
	_, line := scan.Line(input)
	_, _, ok := openHeading(line)
	return ok
}
