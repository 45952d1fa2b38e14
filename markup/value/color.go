package value

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/namumark/core/option"
)

// ColorModel tells how a color has been written in markup.
type ColorModel uint8

// Color models. Only Hex is produced by the parser; RGB(…) and HSL(…)
// notations are reserved for a later extension of ParseColor.
const (
	Hex ColorModel = iota
	RGB
	HSL
	Raw
)

func (m ColorModel) String() string {
	switch m {
	case Hex:
		return "hex"
	case RGB:
		return "rgb"
	case HSL:
		return "hsl"
	case Raw:
		return "raw"
	}
	return "<unknown color model>"
}

// Color is a text or background color. For models Hex and RGB the components
// are red, green and blue; for HSL they are hue, saturation and lightness.
// Model Raw keeps the color literally, as in CSS color names.
type Color struct {
	Model   ColorModel
	C1      uint8
	C2      uint8
	C3      uint8
	Literal string // for model Raw only
}

// Black is the default color.
var Black = Color{Model: Hex}

// HexColor creates a color from red, green and blue components.
func HexColor(r, g, b uint8) Color {
	return Color{Model: Hex, C1: r, C2: g, C3: b}
}

// RGBColor creates a color from components given in rgb(…) notation.
func RGBColor(r, g, b uint8) Color {
	return Color{Model: RGB, C1: r, C2: g, C3: b}
}

// HSLColor creates a color from components given in hsl(…) notation.
func HSLColor(h, s, l uint8) Color {
	return Color{Model: HSL, C1: h, C2: s, C3: l}
}

// RawColor creates a color which is kept as written.
func RawColor(s string) Color {
	return Color{Model: Raw, Literal: s}
}

// ParseColor parses a color token of the form `#RRGGBB`.
// Any other form results in Black.
func ParseColor(token string) Color {
	if c, ok := parseHex(token); ok {
		return c
	}
	tracer().Debugf("color %q not understood, using black", token)
	return Black
}

// IsHexCode returns true if s consists of exactly 6 hexadecimal digits.
func IsHexCode(s string) bool {
	if len(s) != 6 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return false
		}
	}
	return true
}

func parseHex(token string) (Color, bool) {
	if !strings.HasPrefix(token, "#") || !IsHexCode(token[1:]) {
		return Black, false
	}
	var comp [3]uint8
	for i := 0; i < 3; i++ {
		n, err := strconv.ParseUint(token[1+2*i:3+2*i], 16, 8)
		if err != nil { // cannot happen after IsHexCode
			return Black, false
		}
		comp[i] = uint8(n)
	}
	return HexColor(comp[0], comp[1], comp[2]), true
}

func isHexDigit(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

// Match is part of interface option.Type.
func (c Color) Match(choices interface{}) (interface{}, error) {
	return option.Match(c, choices)
}

// Equals is part of interface option.Type.
// A color equals a color model, another color, or its markup notation.
func (c Color) Equals(other interface{}) bool {
	switch x := other.(type) {
	case Color:
		return c == x
	case ColorModel:
		return c.Model == x
	case string:
		return strings.EqualFold(c.String(), x)
	}
	return false
}

// IsNone is part of interface option.Type. Colors always have a value.
func (c Color) IsNone() bool {
	return false
}

// String returns c in markup notation.
func (c Color) String() string {
	switch c.Model {
	case RGB:
		return fmt.Sprintf("rgb(%d,%d,%d)", c.C1, c.C2, c.C3)
	case HSL:
		return fmt.Sprintf("hsl(%d,%d,%d)", c.C1, c.C2, c.C3)
	case Raw:
		return c.Literal
	}
	return fmt.Sprintf("#%02x%02x%02x", c.C1, c.C2, c.C3)
}
