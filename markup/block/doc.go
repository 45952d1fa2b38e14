/*
Package block implements the block grammar of namumark and the document
driver.

A document is a sequence of blocks. At document level, singleline blocks
are tried first:

    = open heading =        ==# closed heading #==        ## comment

If none of them matches, a multiline block is parsed. Multiline blocks are
tried in the order list, indent, horizontal rule, blockquote, paragraph.
Paragraph is the universal fallback, which makes parsing total: every input
results in a list of blocks.

Multiline blocks nest. Indents, list items, blockquote lines and the bodies
of folding brackets are parsed as multiline block lists themselves.
The block grammar creates a span parser with itself as its block lister, so
both grammars share their configuration.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package block

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'namumark.block'.
func tracer() tracing.Trace {
	return tracing.Select("namumark.block")
}
