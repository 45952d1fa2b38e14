package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/namumark"
	"github.com/npillmayer/namumark/core"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDumpFormats(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "namumark")
	defer teardown()
	//
	doc := "= Title =\n--gone-- text"
	for _, tc := range []struct {
		format, want string
	}{
		{formatMarkup, "= Title =\n~~gone~~ text\n"},
		{formatText, "Title\ngone text\n"},
	} {
		var out bytes.Buffer
		d := &dumper{parser: namumark.New(), format: tc.format, out: &out}
		require.NoError(t, d.dump(strings.NewReader(doc), "test"))
		assert.Equal(t, tc.want, out.String())
	}
	var out bytes.Buffer
	d := &dumper{parser: namumark.New(), format: formatTree, out: &out}
	require.NoError(t, d.dump(strings.NewReader(doc), "test"))
	assert.Contains(t, out.String(), "OpenHeading")
}

func TestMissingFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "namumark")
	defer teardown()
	//
	d := &dumper{parser: namumark.New(), format: formatTree, out: &bytes.Buffer{}}
	err := d.dumpFile("does/not/exist.namu")
	require.Error(t, err)
	assert.Equal(t, core.EMISSING, core.Code(err))
}

func TestIsFormat(t *testing.T) {
	assert.True(t, isFormat("pp"))
	assert.False(t, isFormat("html"))
}
