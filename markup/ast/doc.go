/*
Package ast defines the document tree produced by the namumark parser.

A document is a sequence of blocks. Blocks are either singleline blocks
(headings and comments, which may appear at document level only) or
multiline blocks (paragraphs, lists, blockquotes, indents and rules), which
may nest. Blocks with text content hold sequences of spans; spans may nest
as well, and folding brackets hold multiline blocks again.

All nodes are plain values. They are created once by the parser, bottom-up,
and never changed afterwards; parents own their children exclusively.
Clients usually walk a tree with a type switch:

    for _, b := range blocks {
        switch b := b.(type) {
        case *ast.OpenHeading:
            …
        case *ast.Paragraph:
            …
        }
    }

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ast
