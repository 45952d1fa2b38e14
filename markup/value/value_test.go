package value

import (
	"testing"

	"github.com/npillmayer/namumark/core"
	"github.com/npillmayer/namumark/core/option"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "namumark.value")
	defer teardown()
	//
	for _, tc := range []struct {
		token string
		size  Size
	}{
		{"200", Size{Numeric, 200}},
		{"200px", Size{Pixel, 200}},
		{"1.5rem", Size{Rem, 1.5}},
		{"50%", Size{Percent, 50}},
		{"-3", Size{Numeric, -3}},
		{"+.5px", Size{Pixel, .5}},
		{"1e2", Size{Numeric, 100}},
		{"", AutoSize},
		{"auto", AutoSize},
		{"200em", AutoSize},
		{"px", AutoSize},
		{"20 px", AutoSize},
	} {
		assert.Equal(t, tc.size, ParseSize(tc.token), "token %q", tc.token)
	}
}

func TestParseSizeStrict(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "namumark.value")
	defer teardown()
	//
	_, err := ParseSizeStrict("wide")
	require.Error(t, err)
	assert.Equal(t, core.EINVALID, core.Code(err))
	s, err := ParseSizeStrict("12px")
	require.NoError(t, err)
	assert.Equal(t, "12px", s.String())
}

func TestSizeMatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "namumark.value")
	defer teardown()
	//
	choices := option.Of{
		option.None: "auto",
		Pixel:       "pixels",
		option.Some: "other",
	}
	x, err := ParseSize("10px").Match(choices)
	require.NoError(t, err)
	assert.Equal(t, "pixels", x)
	x, _ = ParseSize("10%").Match(choices)
	assert.Equal(t, "other", x)
	x, _ = ParseSize("").Match(choices)
	assert.Equal(t, "auto", x)
}

func TestParseColor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "namumark.value")
	defer teardown()
	//
	for _, tc := range []struct {
		token string
		color Color
	}{
		{"#000000", HexColor(0, 0, 0)},
		{"#ff8000", HexColor(255, 128, 0)},
		{"#FF8000", HexColor(255, 128, 0)},
		{"#10a0B0", HexColor(16, 160, 176)},
		{"#fff", Black},
		{"ff8000", Black},
		{"#ff80001", Black},
		{"#gg0000", Black},
		{"rgb(1,2,3)", Black},
		{"", Black},
	} {
		assert.Equal(t, tc.color, ParseColor(tc.token), "token %q", tc.token)
	}
	assert.Equal(t, "#ff8000", HexColor(255, 128, 0).String())
	assert.True(t, HexColor(255, 128, 0).Equals("#FF8000"))
	assert.Equal(t, "rgb(1,2,3)", RGBColor(1, 2, 3).String())
	assert.Equal(t, "red", RawColor("red").String())
}

func TestParseAlignment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "namumark.value")
	defer teardown()
	//
	for token, a := range map[string]Alignment{
		"start":  AlignStart,
		"end":    AlignEnd,
		"left":   AlignLeft,
		"center": AlignCenter,
		"right":  AlignRight,
		"Center": AlignAuto,
		"middle": AlignAuto,
		"":       AlignAuto,
	} {
		assert.Equal(t, a, ParseAlignment(token), "token %q", token)
	}
	x, err := AlignCenter.Match(option.Of{"center": 1, option.Some: 2})
	require.NoError(t, err)
	assert.Equal(t, 1, x)
	assert.True(t, AlignAuto.IsNone())
}
