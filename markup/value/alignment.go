package value

import (
	"github.com/npillmayer/namumark/core/option"
)

// Alignment is the horizontal alignment of embedded media.
type Alignment uint8

// Alignments. AlignAuto denotes an unset alignment.
const (
	AlignAuto Alignment = iota
	AlignStart
	AlignEnd
	AlignLeft
	AlignCenter
	AlignRight
)

var alignmentMap = map[Alignment]string{
	AlignAuto:   "auto",
	AlignStart:  "start",
	AlignEnd:    "end",
	AlignLeft:   "left",
	AlignCenter: "center",
	AlignRight:  "right",
}

var alignmentStringMap = map[string]Alignment{
	"start":  AlignStart,
	"end":    AlignEnd,
	"left":   AlignLeft,
	"center": AlignCenter,
	"right":  AlignRight,
}

// ParseAlignment parses an alignment token. Tokens have to match exactly;
// anything else results in AlignAuto.
func ParseAlignment(token string) Alignment {
	if a, ok := alignmentStringMap[token]; ok {
		return a
	}
	return AlignAuto
}

func (a Alignment) String() string {
	if s, ok := alignmentMap[a]; ok {
		return s
	}
	return "auto"
}

// Match is part of interface option.Type.
func (a Alignment) Match(choices interface{}) (interface{}, error) {
	return option.Match(a, choices)
}

// Equals is part of interface option.Type.
func (a Alignment) Equals(other interface{}) bool {
	switch x := other.(type) {
	case Alignment:
		return a == x
	case string:
		return a.String() == x
	}
	return false
}

// IsNone returns true if a is AlignAuto.
func (a Alignment) IsNone() bool {
	return a == AlignAuto
}
