package ast

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes a tree of blocks to w, one node per line. Children are indented
// by two spaces. Node attributes follow the node name as Key=value pairs,
// strings quoted:
//
//     OpenHeading Level=h2
//       Inline Text="Danuel"
//
func Dump(w io.Writer, blocks []Block) error {
	_, err := io.WriteString(w, DumpString(blocks))
	return err
}

// DumpString returns the dump of a tree of blocks as a string.
func DumpString(blocks []Block) string {
	d := &dumper{}
	for _, b := range blocks {
		d.block(b)
	}
	return d.String()
}

// DumpSpans returns the dump of a span list as a string.
func DumpSpans(spans []Span) string {
	d := &dumper{}
	d.spans(spans)
	return d.String()
}

type dumper struct {
	strings.Builder
	depth int
}

func (d *dumper) node(name string, attrs ...interface{}) {
	if d.Len() > 0 {
		d.WriteByte('\n')
	}
	d.WriteString(strings.Repeat("  ", d.depth))
	d.WriteString(name)
	for i := 0; i+1 < len(attrs); i += 2 {
		switch v := attrs[i+1].(type) {
		case string:
			fmt.Fprintf(d, " %s=%q", attrs[i], v)
		default:
			fmt.Fprintf(d, " %s=%v", attrs[i], v)
		}
	}
}

func (d *dumper) nested(f func()) {
	d.depth++
	f()
	d.depth--
}

func (d *dumper) block(b Block) {
	switch b := b.(type) {
	case *OpenHeading:
		d.node("OpenHeading", "Level", b.Level)
		d.nested(func() { d.spans(b.Spans) })
	case *ClosedHeading:
		d.node("ClosedHeading", "Level", b.Level)
		d.nested(func() { d.spans(b.Spans) })
	case *Comment:
		d.node("Comment", "Text", b.Text)
	case Multiline:
		d.multiline(b)
	default:
		d.node(fmt.Sprintf("<unknown block %T>", b))
	}
}

func (d *dumper) multilines(blocks []Multiline) {
	d.nested(func() {
		for _, b := range blocks {
			d.multiline(b)
		}
	})
}

func (d *dumper) items(items []ListItem) {
	d.nested(func() {
		for _, item := range items {
			d.node("ListItem")
			d.multilines(item.Blocks)
		}
	})
}

func (d *dumper) multiline(b Multiline) {
	switch b := b.(type) {
	case *Paragraph:
		d.node("Paragraph")
		d.nested(func() { d.spans(b.Spans) })
	case *HorizontalRule:
		d.node("HorizontalRule")
	case *Indent:
		d.node("Indent")
		d.multilines(b.Blocks)
	case *Blockquote:
		d.node("Blockquote")
		d.multilines(b.Blocks)
	case *UnorderedList:
		d.node("UnorderedList")
		d.items(b.Items)
	case *OrderedList:
		d.node("OrderedList", "Style", b.Index.Style, "Start", b.Index.Start)
		d.items(b.Items)
	default:
		d.node(fmt.Sprintf("<unknown block %T>", b))
	}
}

func (d *dumper) spans(spans []Span) {
	for _, s := range spans {
		d.span(s)
	}
}

func (d *dumper) span(s Span) {
	switch s := s.(type) {
	case *Semantic:
		d.node(s.Kind.String())
		d.nested(func() { d.spans(s.Spans) })
	case *Colored:
		d.node("Colored", "Color", s.Color.String())
		d.nested(func() { d.spans(s.Spans) })
	case *Folding:
		d.node("Folding")
		d.multilines(s.Blocks)
	case *Raw:
		d.node("Raw", "Text", s.Text)
	case *SizeUp:
		d.node("SizeUp", "Level", s.Level)
		d.nested(func() { d.spans(s.Spans) })
	case *SizeDown:
		d.node("SizeDown", "Level", s.Level)
		d.nested(func() { d.spans(s.Spans) })
	case *SyntaxHighlight:
		d.node("SyntaxHighlight", "Language", s.Language, "Code", s.Code)
	case *Image:
		o := s.Option
		d.node("Image", "URL", s.URL, "Width", o.Width, "Height", o.Height,
			"Align", o.Align, "Background", o.BackgroundColor.String())
	case *Video:
		o := s.Option
		d.node("Video", "ID", s.ID, "Platform", o.Platform, "Width", o.Width,
			"Height", o.Height, "Start", o.Start, "End", o.End)
	case *Link:
		d.node("Link", "Target", s.Target)
		d.nested(func() { d.spans(s.Spans) })
	case *Category:
		d.node("Category", "Name", s.Name)
	case *Age:
		d.node("Age", "Date", s.Date)
	case *Anchor:
		d.node("Anchor", "Name", s.Name)
	case *FootnoteRef:
		d.node("FootnoteRef", "Label", s.Label)
		d.nested(func() { d.spans(s.Spans) })
	case *Date:
		d.node("Date")
	case *Datetime:
		d.node("Datetime")
	case *Dday:
		d.node("Dday", "Date", s.Date)
	case *Footnote:
		d.node("Footnote")
	case *Include:
		d.node("Include", "Namespace", s.Namespace)
		d.nested(func() {
			for _, arg := range s.Args {
				d.node("Arg", "Key", arg.Key, "Value", arg.Value)
			}
		})
	case *Latex:
		d.node("Latex", "Expr", s.Expr)
	case *Break:
		d.node("Break")
	case *PageCount:
		if s.Scoped {
			d.node("PageCount", "Namespace", s.Namespace)
		} else {
			d.node("PageCount")
		}
	case *Ruby:
		d.node("Ruby", "Word", s.Word, "Text", s.Option.Text, "Color", s.Option.Color.String())
	case *TableOfContents:
		d.node("TableOfContents")
	case *Inline:
		d.node("Inline", "Text", s.Text)
	default:
		d.node(fmt.Sprintf("<unknown span %T>", s))
	}
}
