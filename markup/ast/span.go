package ast

import (
	"strconv"

	"github.com/npillmayer/namumark/core"
	"github.com/npillmayer/namumark/markup/value"
)

// Span is an inline unit within a block.
type Span interface {
	span()
}

// Class groups spans by the production which created them.
type Class uint8

// Span classes, in the order the span grammar tries them.
const (
	SemanticClass Class = iota
	BracketClass
	CommandClass
	MacroClass
	InlineClass
)

func (c Class) String() string {
	switch c {
	case SemanticClass:
		return "Semantic"
	case BracketClass:
		return "Bracket"
	case CommandClass:
		return "Command"
	case MacroClass:
		return "Macro"
	}
	return "Inline"
}

// ClassOf returns the class of a span.
func ClassOf(s Span) Class {
	switch s.(type) {
	case *Semantic:
		return SemanticClass
	case *Colored, *Folding, *Raw, *SizeUp, *SizeDown, *SyntaxHighlight:
		return BracketClass
	case *Image, *Video, *Link, *Category:
		return CommandClass
	case *Inline:
		return InlineClass
	}
	return MacroClass
}

// --- Semantic spans --------------------------------------------------------

// SemanticKind is the kind of text decoration of a semantic span.
type SemanticKind uint8

// Semantic kinds. Linebreak carries no child spans.
const (
	Strong      SemanticKind = iota // '''
	Emphasis                        // ''
	Delete                          // ~~ or --
	Underline                       // __
	Superscript                     // ^^
	Subscript                       // ,,
	Linebreak                       // a newline inside span content
)

var semanticNames = [...]string{
	"Strong", "Emphasis", "Delete", "Underline", "Superscript", "Subscript", "Linebreak",
}

func (k SemanticKind) String() string {
	if int(k) < len(semanticNames) {
		return semanticNames[k]
	}
	return "<unknown semantic kind>"
}

// Semantic is text enclosed in a pair of decoration markers.
type Semantic struct {
	Kind  SemanticKind
	Spans []Span
}

// --- Bracket spans ---------------------------------------------------------

// FontSizeLevel is the step of a relative font size change, 1…5.
type FontSizeLevel uint8

// MaxFontSizeLevel is the largest step of a font size change.
const MaxFontSizeLevel = 5

// NewFontSizeLevel creates a font size level. The grammar accepts single
// digits 1…5 only; other values are a defect and will panic.
func NewFontSizeLevel(n int) FontSizeLevel {
	if n < 1 || n > MaxFontSizeLevel {
		core.Defect("font size level %d out of range 1…%d", n, MaxFontSizeLevel)
	}
	return FontSizeLevel(n)
}

func (l FontSizeLevel) String() string {
	return strconv.Itoa(int(l))
}

// Colored is `{{{#RRGGBB text}}}`.
type Colored struct {
	Color value.Color
	Spans []Span
}

// Folding is `{{{#!folding content}}}`. Its content is a block list.
type Folding struct {
	Blocks []Multiline
}

// Raw is a bracket without a recognized directive, `{{{text}}}`.
// Text is not interpreted.
type Raw struct {
	Text string
}

// SizeUp is `{{{+N text}}}`.
type SizeUp struct {
	Level FontSizeLevel
	Spans []Span
}

// SizeDown is `{{{-N text}}}`.
type SizeDown struct {
	Level FontSizeLevel
	Spans []Span
}

// SyntaxHighlight is `{{{#!syntax language code}}}`. Code is everything after
// the language name, including leading whitespace and newlines.
type SyntaxHighlight struct {
	Language string
	Code     string
}

// --- Command spans ---------------------------------------------------------

// Image is `[[파일:url|options]]`.
type Image struct {
	URL    string
	Option ImageOption
}

// Video is `[[youtube(id, options)]]` and its siblings for other platforms.
type Video struct {
	ID     string
	Option VideoOption
}

// Link is `[[target|text]]`. Spans is empty if no display text is given.
type Link struct {
	Target string
	Spans  []Span
}

// Category is `[[분류:name]]`.
type Category struct {
	Name string
}

// --- Macro spans -----------------------------------------------------------

// Age is `[age(date)]`.
type Age struct {
	Date string
}

// Anchor is `[anchor(name)]`.
type Anchor struct {
	Name string
}

// FootnoteRef is `[*label text]`, a footnote placed at its reference.
type FootnoteRef struct {
	Label string
	Spans []Span
}

// Date is `[date]`.
type Date struct{}

// Datetime is `[datetime]`.
type Datetime struct{}

// Dday is `[dday(date)]`.
type Dday struct {
	Date string
}

// Footnote is `[각주]` or `[footnote]`, the place where footnotes are listed.
type Footnote struct{}

// Include is `[include(namespace, key=value, …)]`.
type Include struct {
	Namespace string
	Args      []IncludeArg
}

// IncludeArg is a parameter handed to an included document.
type IncludeArg struct {
	Key   string
	Value string
}

// Latex is `[math(expression)]`.
type Latex struct {
	Expr string
}

// Break is `[br]`.
type Break struct{}

// PageCount is `[pagecount]` or `[pagecount(namespace)]`. Scoped tells
// whether a namespace was given.
type PageCount struct {
	Namespace string
	Scoped    bool
}

// Ruby is `[ruby(word, ruby=text, color=#RRGGBB)]`.
type Ruby struct {
	Word   string
	Option RubyOption
}

// TableOfContents is `[목차]` or `[tableofcontents]`.
type TableOfContents struct{}

// --- Inline ----------------------------------------------------------------

// Inline is a run of literal text.
type Inline struct {
	Text string
}

func (*Semantic) span()        {}
func (*Colored) span()         {}
func (*Folding) span()         {}
func (*Raw) span()             {}
func (*SizeUp) span()          {}
func (*SizeDown) span()        {}
func (*SyntaxHighlight) span() {}
func (*Image) span()           {}
func (*Video) span()           {}
func (*Link) span()            {}
func (*Category) span()        {}
func (*Age) span()             {}
func (*Anchor) span()          {}
func (*FootnoteRef) span()     {}
func (*Date) span()            {}
func (*Datetime) span()        {}
func (*Dday) span()            {}
func (*Footnote) span()        {}
func (*Include) span()         {}
func (*Latex) span()           {}
func (*Break) span()           {}
func (*PageCount) span()       {}
func (*Ruby) span()            {}
func (*TableOfContents) span() {}
func (*Inline) span()          {}
