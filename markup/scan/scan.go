/*
Package scan provides the cursor primitives of the namumark grammar.

All functions operate on a string holding the not yet consumed input and
return the remaining input first, followed by what has been consumed. None
of them fails; a function which cannot consume anything returns its input
unchanged.

The bracket-aware line splitter treats a region

    {{{ … }}}

as atomic, even if it spans several physical lines. This lets a paragraph,
an indented line or a list item contain a multi-line bracket region while
still ending at a true line boundary.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scan

import (
	"strings"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'namumark.scan'.
func tracer() tracing.Trace {
	return tracing.Select("namumark.scan")
}

// Bracket markers.
const (
	Open  = "{{{"
	Close = "}}}"
)

// Line splits input at the first newline. The newline is consumed but not
// part of line. Without a newline the whole input is the line.
func Line(input string) (rest, line string) {
	if i := strings.IndexByte(input, '\n'); i >= 0 {
		return input[i+1:], input[:i]
	}
	return "", input
}

// Linebreak strips a leading newline.
func Linebreak(input string) string {
	return strip(input, '\n')
}

// Whitespace strips a single leading space.
func Whitespace(input string) string {
	return strip(input, ' ')
}

// Pipeline strips a leading '|'.
func Pipeline(input string) string {
	return strip(input, '|')
}

func strip(input string, c byte) string {
	if len(input) > 0 && input[0] == c {
		return input[1:]
	}
	return input
}

// LineWithBracket splits input at the first newline which is not enclosed in
// a bracket region. As with Line, the newline is consumed but not part of
// line.
//
// Closers without an opener are plain text. If input ends while a bracket
// is still open, that bracket does not count as a region and the line ends
// at the first newline after the last complete region.
func LineWithBracket(input string) (rest, line string) {
	stack := arraystack.New()
	balanced := 0 // end of the last complete region
	i := 0
	for i < len(input) {
		switch {
		case strings.HasPrefix(input[i:], Open):
			stack.Push(i)
			i += len(Open)
		case strings.HasPrefix(input[i:], Close) && !stack.Empty():
			stack.Pop()
			i += len(Close)
			if stack.Empty() {
				balanced = i
			}
		case input[i] == '\n' && stack.Empty():
			return input[i+1:], input[:i]
		default:
			i++
		}
	}
	if stack.Empty() {
		return "", input
	}
	tracer().Debugf("unclosed bracket at %d, splitting at plain newline", mustInt(stack.Peek()))
	rest, line = Line(input[balanced:])
	return rest, input[:balanced] + line
}

// MatchBracket matches the bracket region starting at the beginning of
// input. It returns the text between the outermost markers and the input
// following the region. If input does not start with an opener or the opener
// is never closed, ok is false.
func MatchBracket(input string) (inner, rest string, ok bool) {
	if !strings.HasPrefix(input, Open) {
		return "", input, false
	}
	stack := arraystack.New()
	i := 0
	for i < len(input) {
		switch {
		case strings.HasPrefix(input[i:], Open):
			stack.Push(i)
			i += len(Open)
		case strings.HasPrefix(input[i:], Close):
			stack.Pop()
			i += len(Close)
			if stack.Empty() {
				return input[len(Open) : i-len(Close)], input[i:], true
			}
		default:
			i++
		}
	}
	return "", input, false
}

// StartsWithBracket is true if input starts with a bracket region which is
// closed somewhere.
func StartsWithBracket(input string) bool {
	_, _, ok := MatchBracket(input)
	return ok
}

func mustInt(x interface{}, _ bool) int {
	if n, ok := x.(int); ok {
		return n
	}
	return -1
}
