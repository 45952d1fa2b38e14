package value

import (
	"strings"

	"github.com/npillmayer/namumark/core/option"
)

// VideoPlatform is the hosting platform of an embedded video.
type VideoPlatform uint8

// Video platforms. Youtube is the default.
const (
	Youtube VideoPlatform = iota
	KakaoTv
	NicoVideo
)

// VideoPlatforms lists the platforms in the order a command's prefix is
// checked against them.
var VideoPlatforms = []VideoPlatform{Youtube, KakaoTv, NicoVideo}

var platformNames = map[VideoPlatform]string{
	Youtube:   "youtube",
	KakaoTv:   "kakaotv",
	NicoVideo: "nicovideo",
}

// Keyword is the name a platform is written with in markup, e.g. "kakaotv".
func (p VideoPlatform) Keyword() string {
	return platformNames[p]
}

func (p VideoPlatform) String() string {
	switch p {
	case Youtube:
		return "Youtube"
	case KakaoTv:
		return "KakaoTv"
	case NicoVideo:
		return "NicoVideo"
	}
	return "<unknown platform>"
}

// ParsePlatform finds the platform keyword at the start of token. It returns
// the platform and the length of the keyword, or false if token does not start
// with a platform keyword.
func ParsePlatform(token string) (VideoPlatform, int, bool) {
	for _, p := range VideoPlatforms {
		if kw := p.Keyword(); strings.HasPrefix(token, kw) {
			return p, len(kw), true
		}
	}
	return Youtube, 0, false
}

// Match is part of interface option.Type.
func (p VideoPlatform) Match(choices interface{}) (interface{}, error) {
	return option.Match(p, choices)
}

// Equals is part of interface option.Type.
func (p VideoPlatform) Equals(other interface{}) bool {
	switch x := other.(type) {
	case VideoPlatform:
		return p == x
	case string:
		return p.Keyword() == x
	}
	return false
}

// IsNone is part of interface option.Type. Youtube is a valid platform,
// not an unset one.
func (p VideoPlatform) IsNone() bool {
	return false
}
