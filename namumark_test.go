package namumark

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/npillmayer/namumark/core"
	"github.com/npillmayer/namumark/markup/ast"
	"github.com/npillmayer/namumark/markup/format"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/norm"
)

func inline(s string) *ast.Inline {
	return &ast.Inline{Text: s}
}

func text(s string) *ast.Paragraph {
	return &ast.Paragraph{Spans: []ast.Span{inline(s)}}
}

func TestParse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "namumark")
	defer teardown()
	//
	for _, tc := range []struct {
		input string
		want  []ast.Block
	}{
		{"", nil},
		{"Danuel", []ast.Block{text("Danuel")}},
		{"= Danuel =", []ast.Block{&ast.OpenHeading{Level: 1, Spans: []ast.Span{inline("Danuel")}}}},
		{"----", []ast.Block{&ast.HorizontalRule{}}},
		{" ----", []ast.Block{&ast.Indent{Blocks: []ast.Multiline{&ast.HorizontalRule{}}}}},
		{">Danuel", []ast.Block{&ast.Blockquote{Blocks: []ast.Multiline{text("Danuel")}}}},
		{" *Danuel\n *Danuel", []ast.Block{&ast.UnorderedList{Items: []ast.ListItem{
			{Blocks: []ast.Multiline{text("Danuel")}},
			{Blocks: []ast.Multiline{text("Danuel")}},
		}}}},
		{" 1.#4 foo", []ast.Block{&ast.OrderedList{
			Items: []ast.ListItem{{Blocks: []ast.Multiline{text("foo")}}},
			Index: ast.ListIndex{Style: ast.Numeric, Start: "4"},
		}}},
		{"'''Danuel'''", []ast.Block{&ast.Paragraph{Spans: []ast.Span{
			&ast.Semantic{Kind: ast.Strong, Spans: []ast.Span{inline("Danuel")}}}}}},
	} {
		got := Parse(tc.input)
		if diff := cmp.Diff(tc.want, got, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("Parse(%q) (-want +got):\n%s", tc.input, diff)
		}
	}
}

// Every input is a document. None of these may panic or lose input.
var oddities = []string{
	"\n", "\n\n\n", " ", "=", "==", "= =", "#", "##", ">", ">>", " *", " 1.", " 1.#",
	"{{{", "}}}", "{{{{{{", "}}}}}}", "{{{#!folding", "{{{#!syntax", "{{{#ff0000}}}",
	"[[", "]]", "[[]]", "[[|]]", "[", "]", "[]", "[*]", "[include()]", "[ruby()]",
	"'", "''", "'''", "''''", "'''''", "~~", "----------", "-", "^^,,__",
	"[[youtube()]]", "[[파일:]]", "[[분류:]]", " ", "\t*", "가", "ㄱ.",
	"= a =\n\n\n> b\n\n * c\n\n----",
}

func TestTotality(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "namumark")
	defer teardown()
	//
	p := New()
	for _, input := range oddities {
		assert.NotPanics(t, func() { p.Parse(input) }, "input %q", input)
	}
	blocks := p.Parse(strings.Repeat("= a =\n''b'' [[c]] {{{d}}}\n * e\n", 200))
	assert.NotEmpty(t, blocks)
}

func TestIdempotentFormat(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "namumark")
	defer teardown()
	//
	for _, input := range []string{
		"--x-- ~~y~~",
		"[footnote] text",
		" *a\n *b",
		">a\n>b",
		"-----",
		"=# a #=",
		"[[파일:a.jpg|width=abc]]",
		"{{{#!folding >a}}}",
	} {
		once := format.Markup(Parse(input))
		twice := format.Markup(Parse(once))
		assert.Equal(t, once, twice, "formatting %q", input)
	}
}

func TestNormalization(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "namumark")
	defer teardown()
	//
	decomposed := norm.NFD.String(" 가.하나")
	require.NotEqual(t, " 가.하나", decomposed)
	//
	blocks := Parse(decomposed)
	require.Len(t, blocks, 1)
	_, isList := blocks[0].(*ast.OrderedList)
	assert.False(t, isList, "decomposed marker must not match without normalization")
	//
	p := New(WithNormalization(norm.NFC))
	blocks = p.Parse(decomposed)
	require.Len(t, blocks, 1)
	list, isList := blocks[0].(*ast.OrderedList)
	require.True(t, isList, "NFC must restore the list marker")
	assert.Equal(t, ast.HangulSyllable, list.Index.Style)
}

func TestSyntaxLanguages(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "namumark")
	defer teardown()
	//
	input := "{{{#!syntax haskell main}}}"
	raw := []ast.Block{&ast.Paragraph{Spans: []ast.Span{&ast.Raw{Text: "#!syntax haskell main"}}}}
	assert.Empty(t, cmp.Diff(raw, Parse(input)))
	//
	p := New(WithSyntaxLanguages("haskell", "ocaml"))
	code := []ast.Block{&ast.Paragraph{Spans: []ast.Span{
		&ast.SyntaxHighlight{Language: "haskell", Code: " main"}}}}
	assert.Empty(t, cmp.Diff(code, p.Parse(input)))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestParseReader(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "namumark")
	defer teardown()
	//
	p := New(WithNormalization(norm.NFC))
	blocks, err := p.ParseReader(strings.NewReader(norm.NFD.String(" ㄱ.x")))
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.IsType(t, &ast.OrderedList{}, blocks[0])
	//
	_, err = New().ParseReader(failingReader{})
	require.Error(t, err)
	assert.Equal(t, core.EMISSING, core.Code(err))
}

func TestConcurrentUse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "namumark")
	defer teardown()
	//
	p := New()
	want := p.Parse("= a =\n * b\n{{{#!syntax go x}}}")
	done := make(chan []ast.Block)
	for i := 0; i < 8; i++ {
		go func() { done <- p.Parse("= a =\n * b\n{{{#!syntax go x}}}") }()
	}
	for i := 0; i < 8; i++ {
		assert.Empty(t, cmp.Diff(want, <-done))
	}
}
