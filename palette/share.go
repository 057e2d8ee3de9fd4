package palette

import (
	"math/rand"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/watzon/huebloom/color"
)

// EncodeFragment serializes a base color and scheme into the URL
// fragment form "rrggbb/scheme" (no leading #).
func EncodeFragment(baseColor string, scheme Scheme) string {
	hex := strings.TrimPrefix(color.StandardizeHex(baseColor), "#")
	return hex + "/" + scheme.String()
}

// DecodeFragment parses a URL fragment produced by EncodeFragment.
// An invalid or missing color yields a fresh random base color; an
// unknown scheme name falls back to Monochromatic.
func DecodeFragment(frag string) (string, Scheme) {
	frag = strings.TrimPrefix(frag, "#")
	parts := strings.SplitN(frag, "/", 2)

	baseColor := ""
	if len(parts) > 0 {
		baseColor = parts[0]
	}
	if !color.IsValidHex(baseColor) {
		baseColor = RandomHex()
	} else {
		baseColor = color.StandardizeHex(baseColor)
	}

	scheme := Monochromatic
	if len(parts) == 2 {
		scheme = ParseScheme(parts[1])
	}
	return baseColor, scheme
}

// RandomHex returns a random base color. Hue is uniform; saturation
// and lightness are kept in a pleasant mid range so the derived
// palettes have room for tints and shades.
func RandomHex() string {
	c := colorful.Hsv(
		rand.Float64()*360,
		0.4+rand.Float64()*0.5,
		0.5+rand.Float64()*0.4,
	)
	return c.Hex()
}
