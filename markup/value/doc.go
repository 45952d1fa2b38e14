/*
Package value implements the primitive attribute values of namumark:
sizes, colors and alignments.

Values are parsed from option tokens of commands and macros, e.g.

    [[파일:a.jpg|width=200px&align=center]]
    [ruby(漢字, ruby=한자, color=#ff0000)]

Parsing never fails: a token which is not understood results in the
default value of the respective type (`auto` for sizes and alignments,
black for colors). All value types implement option.Type.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package value

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'namumark.value'.
func tracer() tracing.Trace {
	return tracing.Select("namumark.value")
}
