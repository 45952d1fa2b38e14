/*
Package text extracts the literal text of a namumark tree.

The literal text is everything in a document which is not markup: inline
text, raw brackets, code, link targets, macro arguments and the like.
Blocks are separated by newlines. The text is returned as a cord, with one
leaf per text fragment; each leaf remembers the node it stems from.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package text

import (
	"github.com/npillmayer/cords"
	"github.com/npillmayer/namumark/markup/ast"
)

// PlainText creates a text cord for the literal text of a list of blocks.
func PlainText(blocks []ast.Block) cords.Cord {
	c := &collector{b: cords.NewBuilder()}
	for i, b := range blocks {
		if i > 0 {
			c.add(nil, "\n")
		}
		c.block(b)
	}
	return c.b.Cord()
}

// SpanText creates a text cord for the literal text of a span list.
func SpanText(spans []ast.Span) cords.Cord {
	c := &collector{b: cords.NewBuilder()}
	c.spans(spans)
	return c.b.Cord()
}

type collector struct {
	b *cords.Builder
}

func (c *collector) add(origin interface{}, s string) {
	if s == "" {
		return
	}
	c.b.Append(&Leaf{origin: origin, content: s})
}

func (c *collector) block(b ast.Block) {
	switch b := b.(type) {
	case *ast.OpenHeading:
		c.spans(b.Spans)
	case *ast.ClosedHeading:
		c.spans(b.Spans)
	case *ast.Comment:
		c.add(b, b.Text)
	case ast.Multiline:
		c.multiline(b)
	}
}

func (c *collector) multilines(blocks []ast.Multiline) {
	for i, b := range blocks {
		if i > 0 {
			c.add(nil, "\n")
		}
		c.multiline(b)
	}
}

func (c *collector) multiline(b ast.Multiline) {
	switch b := b.(type) {
	case *ast.Paragraph:
		c.spans(b.Spans)
	case *ast.Indent:
		c.multilines(b.Blocks)
	case *ast.Blockquote:
		c.multilines(b.Blocks)
	case *ast.UnorderedList:
		c.items(b.Items)
	case *ast.OrderedList:
		c.items(b.Items)
	}
}

func (c *collector) items(items []ast.ListItem) {
	for i, item := range items {
		if i > 0 {
			c.add(nil, "\n")
		}
		c.multilines(item.Blocks)
	}
}

func (c *collector) spans(spans []ast.Span) {
	for _, s := range spans {
		c.span(s)
	}
}

func (c *collector) span(s ast.Span) {
	switch s := s.(type) {
	case *ast.Inline:
		c.add(s, s.Text)
	case *ast.Semantic:
		if s.Kind == ast.Linebreak {
			c.add(s, "\n")
		}
		c.spans(s.Spans)
	case *ast.Colored:
		c.spans(s.Spans)
	case *ast.SizeUp:
		c.spans(s.Spans)
	case *ast.SizeDown:
		c.spans(s.Spans)
	case *ast.Folding:
		c.multilines(s.Blocks)
	case *ast.Raw:
		c.add(s, s.Text)
	case *ast.SyntaxHighlight:
		c.add(s, s.Code)
	case *ast.Image:
		c.add(s, s.URL)
	case *ast.Video:
		c.add(s, s.ID)
	case *ast.Link:
		c.add(s, s.Target)
		c.spans(s.Spans)
	case *ast.Category:
		c.add(s, s.Name)
	case *ast.Age:
		c.add(s, s.Date)
	case *ast.Dday:
		c.add(s, s.Date)
	case *ast.Anchor:
		c.add(s, s.Name)
	case *ast.Latex:
		c.add(s, s.Expr)
	case *ast.FootnoteRef:
		c.add(s, s.Label)
		c.spans(s.Spans)
	case *ast.Include:
		c.add(s, s.Namespace)
	case *ast.PageCount:
		c.add(s, s.Namespace)
	case *ast.Ruby:
		c.add(s, s.Word)
		c.add(s, s.Option.Text)
	}
}

// ---------------------------------------------------------------------------

// Leaf is the leaf type of cords created by PlainText. It holds a text
// fragment and the node (ast.Block or ast.Span) the fragment stems from.
// Separators between blocks have no origin.
type Leaf struct {
	origin  interface{}
	content string
}

// Origin returns the node a text fragment stems from, or nil.
func (l Leaf) Origin() interface{} {
	return l.origin
}

// Weight of a leaf is its string length in bytes.
func (l Leaf) Weight() uint64 {
	return uint64(len(l.content))
}

func (l Leaf) String() string {
	return l.content
}

// Split splits a leaf at position i, resulting in 2 new leafs.
func (l Leaf) Split(i uint64) (cords.Leaf, cords.Leaf) {
	left := &Leaf{origin: l.origin, content: l.content[:i]}
	right := &Leaf{origin: l.origin, content: l.content[i:]}
	return left, right
}

// Substring returns a string segment of the leaf's text fragment.
func (l Leaf) Substring(i, j uint64) []byte {
	return []byte(l.content[i:j])
}

var _ cords.Leaf = Leaf{}
