/*
Package option implements matching on optional values.

Markup attributes are optional by nature: an image may or may not carry a
width, a video may or may not start at an offset. Value types of package
markup/value implement interface Type, so that clients (renderers) may write

    w, err := img.Width.Match(option.Of{
        option.None: "auto",
        value.Pixel: func(x interface{}) (interface{}, error) { … },
        option.Some: …,
    })

instead of cascades of type switches. Package markup/format writes option
values back to markup with Attribute, which omits unset and default values.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package option

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'namumark.option'.
func tracer() tracing.Trace {
	return tracing.Select("namumark.option")
}
