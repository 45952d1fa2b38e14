package ast

import "github.com/npillmayer/namumark/markup/value"

// ImageOption holds the attributes of an embedded image.
// The zero value is the default: auto sizes, auto alignment, black background.
type ImageOption struct {
	Width           value.Size
	Height          value.Size
	Align           value.Alignment
	BackgroundColor value.Color
}

// VideoOption holds the attributes of an embedded video. Start and End are
// offsets in seconds, 0 if not given.
type VideoOption struct {
	Platform value.VideoPlatform
	Width    value.Size
	Height   value.Size
	Start    uint32
	End      uint32
}

// RubyOption holds the annotation of a ruby macro.
type RubyOption struct {
	Text  string
	Color value.Color
}
