/*
Package span implements the inline grammar of namumark.

At every position of a span list the productions are tried in a fixed order,
the first one to succeed wins:

    1. semantic   '''strong'''  ''emphasis''  ~~delete~~  --delete--
                  __underline__  ^^sup^^  ,,sub,,  and line breaks
    2. bracket    {{{#RRGGBB …}}}  {{{+N …}}}  {{{-N …}}}  {{{#!folding …}}}
                  {{{#!syntax lang …}}}  {{{raw}}}
    3. command    [[파일:…]]  [[youtube(…)]]  [[분류:…]]  [[target|text]]
    4. macro      [date]  [br]  [include(…)]  [ruby(…)]  [*label text] …
    5. inline     literal text

Inline text runs until the next position where a semantic or bracket span
would succeed. Command and macro markers do not end an inline run.

The grammar is mutually recursive with the block grammar: the body of a
folding bracket is a list of blocks. Package span does not import the block
grammar but receives it as a BlockLister.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package span

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'namumark.span'.
func tracer() tracing.Trace {
	return tracing.Select("namumark.span")
}
