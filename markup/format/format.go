/*
Package format writes a namumark tree back to markup.

The output is canonical: each node is written with one fixed notation
(e.g. `~~` for deletions, `[각주]` for footnotes, options without default
values). For trees produced by the parser, parsing the canonical markup
again yields an equal tree, as long as inline text does not run into a
command or macro, which the grammar would then absorb as literal text.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package format

import (
	"strconv"
	"strings"

	"github.com/npillmayer/namumark/core/option"
	"github.com/npillmayer/namumark/markup/ast"
	"github.com/npillmayer/namumark/markup/block"
	"github.com/npillmayer/namumark/markup/value"
)

// Markup returns blocks as canonical markup. Blocks are separated by
// newlines.
func Markup(blocks []ast.Block) string {
	w := &writer{}
	for i, b := range blocks {
		if i > 0 {
			w.WriteByte('\n')
		}
		w.block(b)
	}
	return w.String()
}

// Spans returns a span list as canonical markup.
func Spans(spans []ast.Span) string {
	w := &writer{}
	w.spans(spans)
	return w.String()
}

type writer struct {
	strings.Builder
}

func (w *writer) block(b ast.Block) {
	switch b := b.(type) {
	case *ast.OpenHeading:
		m := strings.Repeat("=", int(b.Level))
		w.WriteString(m + " ")
		w.spans(b.Spans)
		w.WriteString(" " + m)
	case *ast.ClosedHeading:
		m := strings.Repeat("=", int(b.Level))
		w.WriteString(m + "# ")
		w.spans(b.Spans)
		w.WriteString(" #" + m)
	case *ast.Comment:
		w.WriteString(block.CommentMarker + b.Text)
	case ast.Multiline:
		w.multiline(b)
	}
}

func (w *writer) multilines(blocks []ast.Multiline) {
	for i, b := range blocks {
		if i > 0 {
			w.WriteByte('\n')
		}
		w.multiline(b)
	}
}

func (w *writer) multiline(b ast.Multiline) {
	switch b := b.(type) {
	case *ast.Paragraph:
		w.spans(b.Spans)
	case *ast.HorizontalRule:
		w.WriteString(strings.Repeat("-", block.MinRule))
	case *ast.Indent:
		w.WriteByte(' ')
		w.multilines(b.Blocks)
	case *ast.Blockquote:
		for i, child := range b.Blocks {
			if i > 0 {
				w.WriteByte('\n')
			}
			w.WriteByte('>')
			if s := multilineString(child); s != "" {
				w.WriteString(" " + s)
			}
		}
	case *ast.UnorderedList:
		if len(b.Items) == 0 {
			w.WriteString(block.UnorderedMarker)
		}
		for i, item := range b.Items {
			if i > 0 {
				w.WriteByte('\n')
			}
			w.item(block.UnorderedMarker, item)
		}
	case *ast.OrderedList:
		marker := block.OrderedMarker(b.Index.Style)
		first := marker
		if b.Index.Start != ast.DefaultStart && b.Index.Start != "" {
			first += "#" + b.Index.Start
		}
		if len(b.Items) == 0 {
			w.WriteString(first)
		}
		for i, item := range b.Items {
			if i > 0 {
				w.WriteByte('\n')
				w.item(marker, item)
			} else {
				w.item(first, item)
			}
		}
	}
}

func (w *writer) item(marker string, item ast.ListItem) {
	w.WriteString(marker)
	if len(item.Blocks) > 0 {
		w.WriteByte(' ')
		w.multilines(item.Blocks)
	}
}

func multilineString(b ast.Multiline) string {
	w := &writer{}
	w.multiline(b)
	return w.String()
}

var semanticMarkers = map[ast.SemanticKind]string{
	ast.Strong:      "'''",
	ast.Emphasis:    "''",
	ast.Delete:      "~~",
	ast.Underline:   "__",
	ast.Superscript: "^^",
	ast.Subscript:   ",,",
}

func (w *writer) spans(spans []ast.Span) {
	for _, s := range spans {
		w.span(s)
	}
}

func (w *writer) span(s ast.Span) {
	switch s := s.(type) {
	case *ast.Inline:
		w.WriteString(s.Text)
	case *ast.Semantic:
		if s.Kind == ast.Linebreak {
			w.WriteByte('\n')
			return
		}
		inner := Spans(s.Spans)
		m := semanticMarkers[s.Kind]
		if s.Kind == ast.Delete {
			m = w.deleteMarker(inner)
		}
		w.WriteString(m + inner + m)
	default:
		switch ast.ClassOf(s) {
		case ast.BracketClass:
			w.bracket(s)
		case ast.CommandClass:
			w.command(s)
		case ast.MacroClass:
			w.macro(s)
		}
	}
}

// deleteMarker selects `~~` or `--` for a deletion, whichever does not
// collide with the content or the text before it.
func (w *writer) deleteMarker(inner string) string {
	for _, m := range []string{"~~", "--"} {
		c := m[:1]
		if !strings.Contains(inner, m) && !strings.HasSuffix(inner, c) &&
			!strings.HasSuffix(w.String(), c) {
			return m
		}
	}
	return semanticMarkers[ast.Delete]
}

func (w *writer) bracket(s ast.Span) {
	w.WriteString("{{{")
	switch s := s.(type) {
	case *ast.Colored:
		w.WriteString(s.Color.String() + " ")
		w.spans(s.Spans)
	case *ast.Folding:
		w.WriteString("#!folding ")
		w.multilines(s.Blocks)
	case *ast.Raw:
		w.WriteString(s.Text)
	case *ast.SizeUp:
		w.WriteString("+" + s.Level.String() + " ")
		w.spans(s.Spans)
	case *ast.SizeDown:
		w.WriteString("-" + s.Level.String() + " ")
		w.spans(s.Spans)
	case *ast.SyntaxHighlight:
		w.WriteString("#!syntax " + s.Language + s.Code)
	}
	w.WriteString("}}}")
}

func (w *writer) command(s ast.Span) {
	w.WriteString("[[")
	switch s := s.(type) {
	case *ast.Image:
		w.WriteString("파일:" + s.URL)
		var opts []string
		o := s.Option
		opts = appendAttribute(opts, "width", o.Width)
		opts = appendAttribute(opts, "height", o.Height)
		opts = appendAttribute(opts, "align", o.Align)
		opts = appendAttribute(opts, "background_color", o.BackgroundColor, value.Black)
		if len(opts) > 0 {
			w.WriteString("|" + strings.Join(opts, "&"))
		}
	case *ast.Video:
		o := s.Option
		args := []string{s.ID}
		args = appendAttribute(args, "width", o.Width)
		args = appendAttribute(args, "height", o.Height)
		if o.Start != 0 {
			args = append(args, "start="+strconv.FormatUint(uint64(o.Start), 10))
		}
		if o.End != 0 {
			args = append(args, "end="+strconv.FormatUint(uint64(o.End), 10))
		}
		w.WriteString(o.Platform.Keyword() + "(" + strings.Join(args, ", ") + ")")
	case *ast.Link:
		w.WriteString(s.Target)
		if len(s.Spans) > 0 {
			w.WriteByte('|')
			w.spans(s.Spans)
		}
	case *ast.Category:
		w.WriteString("분류:" + s.Name)
	}
	w.WriteString("]]")
}

// appendAttribute appends `key=value` for an option which is set and differs
// from its defaults.
func appendAttribute(attrs []string, key string, o option.Type, defaults ...interface{}) []string {
	if attr, ok := option.Attribute(key, o, defaults...); ok {
		return append(attrs, attr)
	}
	return attrs
}

func (w *writer) macro(s ast.Span) {
	w.WriteByte('[')
	switch s := s.(type) {
	case *ast.Age:
		w.WriteString("age(" + s.Date + ")")
	case *ast.Anchor:
		w.WriteString("anchor(" + s.Name + ")")
	case *ast.FootnoteRef:
		w.WriteString("*" + s.Label + " ")
		w.spans(s.Spans)
	case *ast.Date:
		w.WriteString("date")
	case *ast.Datetime:
		w.WriteString("datetime")
	case *ast.Dday:
		w.WriteString("dday(" + s.Date + ")")
	case *ast.Footnote:
		w.WriteString("각주")
	case *ast.Include:
		args := []string{s.Namespace}
		for _, arg := range s.Args {
			if arg.Value == "" {
				args = append(args, arg.Key)
			} else {
				args = append(args, arg.Key+"="+arg.Value)
			}
		}
		w.WriteString("include(" + strings.Join(args, ", ") + ")")
	case *ast.Latex:
		w.WriteString("math(" + s.Expr + ")")
	case *ast.Break:
		w.WriteString("br")
	case *ast.PageCount:
		w.WriteString("pagecount")
		if s.Scoped {
			w.WriteString("(" + s.Namespace + ")")
		}
	case *ast.Ruby:
		args := []string{s.Word}
		if s.Option.Text != "" {
			args = append(args, "ruby="+s.Option.Text)
		}
		args = appendAttribute(args, "color", s.Option.Color, value.Black)
		w.WriteString("ruby(" + strings.Join(args, ", ") + ")")
	case *ast.TableOfContents:
		w.WriteString("목차")
	}
	w.WriteByte(']')
}
