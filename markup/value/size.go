package value

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/npillmayer/namumark/core"
	"github.com/npillmayer/namumark/core/option"
)

// Unit is the unit of a size value.
type Unit uint8

// Units for sizes. Auto denotes an unset size.
const (
	Auto    Unit = iota // no size given or size not understood
	Numeric             // a plain number, unit left to the renderer
	Pixel               // px
	Rem                 // rem
	Percent             // %
)

var unitMap = map[Unit]string{
	Auto:    "auto",
	Numeric: "",
	Pixel:   "px",
	Rem:     "rem",
	Percent: "%",
}

var unitStringMap = map[string]Unit{
	"":    Numeric,
	"px":  Pixel,
	"rem": Rem,
	"%":   Percent,
}

func (u Unit) String() string {
	if u == Numeric {
		return "numeric"
	}
	if s, ok := unitMap[u]; ok {
		return s
	}
	return "<unknown unit>"
}

// Size is an optional dimension for widths and heights of embedded media.
type Size struct {
	Unit  Unit
	Value float32
}

// AutoSize is the unset size.
var AutoSize = Size{}

// SomeSize creates a size with a given unit.
func SomeSize(x float32, unit Unit) Size {
	if unit == Auto {
		return AutoSize
	}
	return Size{Unit: unit, Value: x}
}

// Match is part of interface option.Type.
func (s Size) Match(choices interface{}) (interface{}, error) {
	return option.Match(s, choices)
}

// Equals is part of interface option.Type.
// A size equals a unit if it is measured in this unit, and a number if its
// value is that number (irrespective of the unit).
func (s Size) Equals(other interface{}) bool {
	switch x := other.(type) {
	case Size:
		return s == x
	case Unit:
		return s.Unit == x
	case float32:
		return !s.IsNone() && s.Value == x
	case float64:
		return !s.IsNone() && float64(s.Value) == x
	case int:
		return !s.IsNone() && s.Value == float32(x)
	case string:
		return s.String() == x
	}
	return false
}

// IsNone returns true if s is auto.
func (s Size) IsNone() bool {
	return s.Unit == Auto
}

// String returns s in markup notation, e.g. "200px".
func (s Size) String() string {
	if s.IsNone() {
		return "auto"
	}
	return strconv.FormatFloat(float64(s.Value), 'g', -1, 32) + unitMap[s.Unit]
}

// A number in standard floating point notation, followed by an optional unit.
var sizePattern = regexp.MustCompile(
	`^([+\-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][+\-]?[0-9]+)?)(px|rem|%)?$`)

// ParseSize parses a size token. Valid sizes are
//
//     200
//     200px
//     1.5rem
//     50%
//
// It will never return an error, even with illegal input, but instead will then
// return an auto size.
func ParseSize(token string) Size {
	s, err := ParseSizeStrict(token)
	if err != nil {
		tracer().Debugf("size %q not understood, using auto", token)
		return AutoSize
	}
	return s
}

// ParseSizeStrict parses a size token and reports tokens which are not
// understood with an error of code core.EINVALID.
func ParseSizeStrict(token string) (Size, error) {
	m := sizePattern.FindStringSubmatch(token)
	if len(m) < 2 {
		return AutoSize, core.WrapError(errors.New("format error parsing size"),
			core.EINVALID, "illegal size %q", token)
	}
	unit, ok := unitStringMap[m[2]]
	if !ok { // cannot happen with sizePattern
		return AutoSize, core.Error(core.EINVALID, "illegal unit in size %q", token)
	}
	n, err := strconv.ParseFloat(m[1], 32)
	if err != nil {
		return AutoSize, core.WrapError(err, core.EINVALID, "illegal number in size %q", token)
	}
	return Size{Unit: unit, Value: float32(n)}, nil
}

// GoString is used by %#v and by tree dumps.
func (s Size) GoString() string {
	return fmt.Sprintf("Size(%s)", s.String())
}
