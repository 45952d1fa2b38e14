package ast

import (
	"strconv"

	"github.com/npillmayer/namumark/core"
)

// Block is a structural unit of a document.
type Block interface {
	block()
}

// Singleline is a block which occupies exactly one line and may only occur
// at document level: headings and comments.
type Singleline interface {
	Block
	singleline()
}

// Multiline is a block which may span several lines and may be nested inside
// indents, blockquotes, list items and folding brackets.
type Multiline interface {
	Block
	multiline()
}

// --- Singleline blocks -----------------------------------------------------

// HeadingLevel is the level of a heading, 1…6.
type HeadingLevel uint8

// MaxHeadingLevel is the deepest heading level.
const MaxHeadingLevel = 6

// NewHeadingLevel creates a heading level from a count of `=` markers.
// The grammar never counts more than 6 markers; a level outside 1…6 is a
// defect and will panic.
func NewHeadingLevel(n int) HeadingLevel {
	if n < 1 || n > MaxHeadingLevel {
		core.Defect("heading level %d out of range 1…%d", n, MaxHeadingLevel)
	}
	return HeadingLevel(n)
}

func (l HeadingLevel) String() string {
	return "h" + strconv.Itoa(int(l))
}

// OpenHeading is a heading in `== title ==` notation.
type OpenHeading struct {
	Spans []Span
	Level HeadingLevel
}

// ClosedHeading is a heading in `==# title #==` notation, which renderers
// usually show folded.
type ClosedHeading struct {
	Spans []Span
	Level HeadingLevel
}

// Comment is a line starting with `##`. Its text is kept raw.
type Comment struct {
	Text string
}

func (*OpenHeading) block()        {}
func (*OpenHeading) singleline()   {}
func (*ClosedHeading) block()      {}
func (*ClosedHeading) singleline() {}
func (*Comment) block()            {}
func (*Comment) singleline()       {}

// --- Multiline blocks ------------------------------------------------------

// Paragraph is a run of text lines.
type Paragraph struct {
	Spans []Span
}

// HorizontalRule is a line of 4 to 9 dashes.
type HorizontalRule struct{}

// Indent is content indented by one space. Deeper indentation nests.
type Indent struct {
	Blocks []Multiline
}

// Blockquote holds the blocks of consecutive lines starting with `>`.
type Blockquote struct {
	Blocks []Multiline
}

// UnorderedList is a list with ` *` markers.
type UnorderedList struct {
	Items []ListItem
}

// OrderedList is a list with numbering markers such as ` 1.` or ` 가.`.
type OrderedList struct {
	Items []ListItem
	Index ListIndex
}

// ListItem is the body of a list entry.
type ListItem struct {
	Blocks []Multiline
}

func (*Paragraph) block()          {}
func (*Paragraph) multiline()      {}
func (*HorizontalRule) block()     {}
func (*HorizontalRule) multiline() {}
func (*Indent) block()             {}
func (*Indent) multiline()         {}
func (*Blockquote) block()         {}
func (*Blockquote) multiline()     {}
func (*UnorderedList) block()      {}
func (*UnorderedList) multiline()  {}
func (*OrderedList) block()        {}
func (*OrderedList) multiline()    {}

// IndexStyle is the numbering scheme of an ordered list.
type IndexStyle uint8

// Numbering schemes, in the order the parser tries their markers.
const (
	Numeric        IndexStyle = iota // 1. 2. 3.
	LowerAlphabet                    // a. b. c.
	UpperAlphabet                    // A. B. C.
	LowerRoman                       // i. ii. iii.
	UpperRoman                       // I. II. III.
	HangulChosung                    // ㄱ. ㄴ. ㄷ.
	HangulSyllable                   // 가. 나. 다.
)

var indexStyleNames = [...]string{
	"Numeric", "LowerAlphabet", "UpperAlphabet", "LowerRoman", "UpperRoman",
	"HangulChosung", "HangulSyllable",
}

func (s IndexStyle) String() string {
	if int(s) < len(indexStyleNames) {
		return indexStyleNames[s]
	}
	return "<unknown index style>"
}

// DefaultStart is the start index of lists without an explicit `#token`.
const DefaultStart = "1"

// ListIndex is the numbering of an ordered list: its style and the token the
// list starts with. Start is kept as written (`#4` → "4").
type ListIndex struct {
	Style IndexStyle
	Start string
}
