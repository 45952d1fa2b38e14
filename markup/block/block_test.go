package block

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/npillmayer/namumark/markup/ast"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

type blockTest struct {
	input string
	want  []ast.Block
}

func runBlockTests(t *testing.T, tests []blockTest) {
	t.Helper()
	p := New()
	for _, tc := range tests {
		got := p.Parse(tc.input)
		if diff := cmp.Diff(tc.want, got, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("blocks of %q (-want +got):\n%s", tc.input, diff)
		}
	}
}

func inline(s string) *ast.Inline {
	return &ast.Inline{Text: s}
}

var linebreak = &ast.Semantic{Kind: ast.Linebreak}

func para(spans ...ast.Span) *ast.Paragraph {
	return &ast.Paragraph{Spans: spans}
}

func text(s string) *ast.Paragraph {
	return para(inline(s))
}

func item(blocks ...ast.Multiline) ast.ListItem {
	return ast.ListItem{Blocks: blocks}
}

func blocks(b ...ast.Block) []ast.Block {
	return b
}

func TestScenarios(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "namumark.block")
	defer teardown()
	//
	runBlockTests(t, []blockTest{
		{"Danuel", blocks(text("Danuel"))},
		{"= Danuel =", blocks(&ast.OpenHeading{Level: 1, Spans: []ast.Span{inline("Danuel")}})},
		{"----", blocks(&ast.HorizontalRule{})},
		{" ----", blocks(&ast.Indent{Blocks: []ast.Multiline{&ast.HorizontalRule{}}})},
		{">Danuel", blocks(&ast.Blockquote{Blocks: []ast.Multiline{text("Danuel")}})},
		{" *Danuel\n *Danuel", blocks(&ast.UnorderedList{Items: []ast.ListItem{
			item(text("Danuel")), item(text("Danuel"))}})},
		{" 1.#4 foo", blocks(&ast.OrderedList{Items: []ast.ListItem{item(text("foo"))},
			Index: ast.ListIndex{Style: ast.Numeric, Start: "4"}})},
		{"'''Danuel'''", blocks(para(&ast.Semantic{Kind: ast.Strong, Spans: []ast.Span{inline("Danuel")}}))},
	})
}

func TestEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "namumark.block")
	defer teardown()
	//
	assert.Empty(t, New().Parse(""))
	assert.Empty(t, New().MultilineList(""))
}

func TestHeadings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "namumark.block")
	defer teardown()
	//
	var tests []blockTest
	danuel := []ast.Span{inline("Danuel")}
	for n := 1; n <= 6; n++ {
		m := strings.Repeat("=", n)
		tests = append(tests,
			blockTest{m + " Danuel " + m, blocks(&ast.OpenHeading{Level: ast.HeadingLevel(n), Spans: danuel})},
			blockTest{m + "# Danuel #" + m, blocks(&ast.ClosedHeading{Level: ast.HeadingLevel(n), Spans: danuel})},
		)
	}
	tests = append(tests, []blockTest{
		{"======= Danuel =======", blocks(text("======= Danuel ======="))},
		{"=Danuel=", blocks(text("=Danuel="))},
		{"= Danuel ==", blocks(text("= Danuel =="))},
		{"== Danuel =", blocks(text("== Danuel ="))},
		{"= =", blocks(text("= ="))},
		{"= ''a'' =\nb", blocks(
			&ast.OpenHeading{Level: 1, Spans: []ast.Span{&ast.Semantic{Kind: ast.Emphasis, Spans: []ast.Span{inline("a")}}}},
			text("b"))},
		{"## Danuel", blocks(&ast.Comment{Text: " Danuel"})},
		{"##''x''\nb", blocks(&ast.Comment{Text: "''x''"}, text("b"))},
	}...)
	runBlockTests(t, tests)
}

func TestHorizontalRule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "namumark.block")
	defer teardown()
	//
	var tests []blockTest
	for n := MinRule; n <= MaxRule; n++ {
		tests = append(tests, blockTest{strings.Repeat("-", n), blocks(&ast.HorizontalRule{})})
	}
	del := &ast.Semantic{Kind: ast.Delete}
	tests = append(tests, []blockTest{
		{"---", blocks(text("---"))},
		{"----------", blocks(para(del, del, inline("--")))},
		{"  ----", blocks(&ast.Indent{Blocks: []ast.Multiline{
			&ast.Indent{Blocks: []ast.Multiline{&ast.HorizontalRule{}}}}})},
		{"----\n----", blocks(&ast.HorizontalRule{}, &ast.HorizontalRule{})},
		{"---- x", blocks(para(del, inline("-- x")))},
	}...)
	runBlockTests(t, tests)
}

func TestBlockquote(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "namumark.block")
	defer teardown()
	//
	quote := func(b ...ast.Multiline) *ast.Blockquote {
		return &ast.Blockquote{Blocks: b}
	}
	runBlockTests(t, []blockTest{
		{"> a\n> b\nc", blocks(quote(text("a"), text("b")), text("c"))},
		{">", blocks(quote(para()))},
		{">a\n>\n>b", blocks(quote(text("a"), para(), text("b")))},
		{">> a", blocks(quote(quote(text("a"))))},
		{">  * a", blocks(quote(&ast.UnorderedList{Items: []ast.ListItem{item(text("a"))}}))},
		{">  a", blocks(quote(&ast.Indent{Blocks: []ast.Multiline{text("a")}}))},
		{"> ----", blocks(quote(para(&ast.Semantic{Kind: ast.Delete})))},
		{"> = a =", blocks(quote(text("= a =")))},
	})
}

func TestIndent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "namumark.block")
	defer teardown()
	//
	indent := func(b ...ast.Multiline) *ast.Indent {
		return &ast.Indent{Blocks: b}
	}
	runBlockTests(t, []blockTest{
		{" foo", blocks(indent(text("foo")))},
		{" foo\nbar", blocks(indent(text("foo")), text("bar"))},
		{"  foo", blocks(indent(indent(text("foo"))))},
		{" ## x", blocks(indent(text("## x")))},
		{" {{{a\nb}}}\nc", blocks(indent(para(&ast.Raw{Text: "a\nb"})), text("c"))},
	})
}

func TestLists(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "namumark.block")
	defer teardown()
	//
	ul := func(items ...ast.ListItem) *ast.UnorderedList {
		return &ast.UnorderedList{Items: items}
	}
	ol := func(style ast.IndexStyle, start string, items ...ast.ListItem) *ast.OrderedList {
		return &ast.OrderedList{Items: items, Index: ast.ListIndex{Style: style, Start: start}}
	}
	var tests []blockTest
	for _, m := range OrderedMarkers {
		tests = append(tests,
			blockTest{m.Marker + "Danuel", blocks(ol(m.Style, "1", item(text("Danuel"))))},
			blockTest{m.Marker + " a\n" + m.Marker + " b", blocks(ol(m.Style, "1", item(text("a")), item(text("b"))))},
			blockTest{m.Marker + "#iv a", blocks(ol(m.Style, "iv", item(text("a"))))},
		)
	}
	tests = append(tests, []blockTest{
		{" * a", blocks(ul(item(text("a"))))},
		{" *", blocks(ul())},
		{" *\n * a", blocks(ul(item(text("a"))))},
		{" * a\n *", blocks(ul(item(text("a")), item()))},
		{" * a\nb", blocks(ul(item(text("a"))), text("b"))},
		{" * a\n  * b", blocks(ul(item(text("a"))), &ast.Indent{Blocks: []ast.Multiline{ul(item(text("b")))}})},
		{" *  * a", blocks(ul(item(ul(item(text("a"))))))},
		{" 1.a\n *b", blocks(ol(ast.Numeric, "1", item(text("a"))), ul(item(text("b"))))},
		{" 1.a\n a.b", blocks(ol(ast.Numeric, "1", item(text("a"))), ol(ast.LowerAlphabet, "1", item(text("b"))))},
		{" 1.a\n 1.#3 b", blocks(ol(ast.Numeric, "1", item(text("a"))), ol(ast.Numeric, "3", item(text("b"))))},
		{" * a\n *#x b", blocks(ul(item(text("a"))), ul(item(text("#x b"))))},
		{" 1.#A x", blocks(ol(ast.Numeric, "1", item(text("#A x"))))},
		{" * {{{a\nb}}}\n * c", blocks(ul(item(para(&ast.Raw{Text: "a\nb"})), item(text("c"))))},
	}...)
	runBlockTests(t, tests)
}

func TestParagraph(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "namumark.block")
	defer teardown()
	//
	runBlockTests(t, []blockTest{
		{"a\nb", blocks(para(inline("a"), linebreak, inline("b")))},
		{"a\n", blocks(text("a"))},
		{"a\n> b", blocks(text("a"), &ast.Blockquote{Blocks: []ast.Multiline{text("b")}})},
		{"a\n----", blocks(text("a"), &ast.HorizontalRule{})},
		{"a\n * b", blocks(text("a"), &ast.UnorderedList{Items: []ast.ListItem{item(text("b"))}})},
		{"a\n## c", blocks(text("a"), &ast.Comment{Text: " c"})},
		{"a\n= h =", blocks(text("a"), &ast.OpenHeading{Level: 1, Spans: []ast.Span{inline("h")}})},
		{"a\n==# h #==", blocks(para(inline("a"), linebreak, inline("==# h #==")))},
		{"a\n b", blocks(para(inline("a"), linebreak, inline(" b")))},
		{"{{{a\n> b}}}\nc", blocks(para(&ast.Raw{Text: "a\n> b"}, linebreak, inline("c")))},
		{"{{{#!folding  * a\n * b}}}", blocks(para(&ast.Folding{Blocks: []ast.Multiline{
			&ast.UnorderedList{Items: []ast.ListItem{item(text("a")), item(text("b"))}}}}))},
	})
}

func TestDocument(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "namumark.block")
	defer teardown()
	//
	doc := "= Title =\nText\n * a\n * b\n----\n>quote"
	runBlockTests(t, []blockTest{
		{doc, blocks(
			&ast.OpenHeading{Level: 1, Spans: []ast.Span{inline("Title")}},
			text("Text"),
			&ast.UnorderedList{Items: []ast.ListItem{item(text("a")), item(text("b"))}},
			&ast.HorizontalRule{},
			&ast.Blockquote{Blocks: []ast.Multiline{text("quote")}},
		)},
	})
}
