package span

import (
	"strconv"
	"strings"

	"github.com/npillmayer/namumark/markup/ast"
	"github.com/npillmayer/namumark/markup/scan"
	"github.com/npillmayer/namumark/markup/value"
)

// Command prefixes.
const (
	ImagePrefix    = "파일:"
	CategoryPrefix = "분류:"
)

// command parses `[[…]]`. The command ends at the first `]]`.
func (p *Parser) command(input string) (ast.Span, string, bool) {
	if !strings.HasPrefix(input, "[[") {
		return nil, input, false
	}
	i := strings.Index(input[2:], "]]")
	if i < 0 {
		return nil, input, false
	}
	line, rest := input[2:2+i], input[2+i+2:]
	if s, ok := image(line); ok {
		return s, rest, true
	}
	if s, ok := video(line); ok {
		return s, rest, true
	}
	if name, ok := strings.CutPrefix(line, CategoryPrefix); ok {
		return &ast.Category{Name: name}, rest, true
	}
	target, text := untilPipe(line)
	return &ast.Link{Target: target, Spans: p.List(text)}, rest, true
}

// image parses `파일:url|key=value&key=value`. Options may be separated by
// '&' or '|'. Unknown keys are ignored.
func image(line string) (*ast.Image, bool) {
	line, ok := strings.CutPrefix(line, ImagePrefix)
	if !ok {
		return nil, false
	}
	url, opts := untilPipe(line)
	img := &ast.Image{URL: url}
	for _, token := range strings.FieldsFunc(opts, func(r rune) bool { return r == '&' || r == '|' }) {
		key, val, ok := keyValue(token)
		if !ok {
			continue
		}
		switch key {
		case "width":
			img.Option.Width = value.ParseSize(val)
		case "height":
			img.Option.Height = value.ParseSize(val)
		case "align":
			img.Option.Align = value.ParseAlignment(val)
		case "background_color":
			img.Option.BackgroundColor = value.ParseColor(val)
		default:
			tracer().Debugf("ignoring image option %q", key)
		}
	}
	return img, true
}

// video parses `platform(id, key=value, …)`. Text after the closing
// parenthesis is ignored. Offsets which are not numbers stay 0.
func video(line string) (*ast.Video, bool) {
	platform, n, ok := value.ParsePlatform(line)
	if !ok || !strings.HasPrefix(line[n:], "(") {
		return nil, false
	}
	args, _, ok := strings.Cut(line[n+1:], ")")
	if !ok {
		return nil, false
	}
	id, opts, _ := strings.Cut(args, ",")
	v := &ast.Video{ID: id, Option: ast.VideoOption{Platform: platform}}
	for _, token := range strings.Split(opts, ",") {
		key, val, ok := keyValue(token)
		if !ok {
			continue
		}
		switch key {
		case "width":
			v.Option.Width = value.ParseSize(val)
		case "height":
			v.Option.Height = value.ParseSize(val)
		case "start":
			v.Option.Start = offset(val)
		case "end":
			v.Option.End = offset(val)
		}
	}
	return v, true
}

// keyValue splits a `key=value` token. Tokens with more or less than one '='
// are rejected.
func keyValue(token string) (key, val string, ok bool) {
	parts := strings.Split(token, "=")
	if len(parts) != 2 {
		return "", "", false
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), true
}

func offset(val string) uint32 {
	n, err := strconv.ParseUint(val, 10, 32)
	if err != nil {
		tracer().Debugf("video offset %q is not a number", val)
		return 0
	}
	return uint32(n)
}

// untilPipe splits line at the first '|', which is dropped.
func untilPipe(line string) (head, tail string) {
	if i := strings.IndexByte(line, '|'); i >= 0 {
		return line[:i], scan.Pipeline(line[i:])
	}
	return line, ""
}
