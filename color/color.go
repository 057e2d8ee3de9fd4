// Package color implements the hex and HSL color math used by the
// palette generators: parsing, validation, conversion, and the textual
// formats offered for copying.
package color

import (
	"fmt"
	stdcolor "image/color"
	"math"
	"regexp"
	"strings"
)

// RGB represents an RGB color
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// HSL represents a color in HSL space. H is in degrees [0, 360),
// S and L are in [0, 1].
type HSL struct {
	H float64
	S float64
	L float64
}

var hexPattern = regexp.MustCompile(`^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// IsValidHex reports whether s is a 3- or 6-digit hex color with an
// optional leading #.
func IsValidHex(s string) bool {
	return hexPattern.MatchString(s)
}

// StandardizeHex ensures a leading # and expands 3-digit shorthand by
// doubling each digit (#abc -> #aabbcc). Output is lowercase.
// Input must already have passed IsValidHex; behavior on malformed
// input is unspecified.
func StandardizeHex(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, "#"))
	if len(s) == 3 {
		var b strings.Builder
		for _, r := range s {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		s = b.String()
	}
	return "#" + s
}

// HexToRGB parses a 6-digit hex color. Malformed input yields a zero
// color rather than an error; callers are expected to validate with
// IsValidHex first.
func HexToRGB(hex string) RGB {
	hex = strings.TrimPrefix(hex, "#")
	var r, g, b uint8
	fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
	return RGB{R: r, G: g, B: b}
}

// Hex returns the color as a lowercase hex string (e.g. "#1a2b3c").
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ToRGBA converts the color to a color.RGBA with full opacity.
func (c RGB) ToRGBA() stdcolor.RGBA {
	return stdcolor.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// HexToHSL converts a 6-digit hex color to HSL. Grays come back with
// hue 0 and saturation 0. Like HexToRGB it does not validate.
func HexToHSL(hex string) HSL {
	return RGBToHSL(HexToRGB(hex))
}

// RGBToHSL converts an RGB color to HSL.
func RGBToHSL(rgb RGB) HSL {
	r := float64(rgb.R) / 255
	g := float64(rgb.G) / 255
	b := float64(rgb.B) / 255

	max := math.Max(math.Max(r, g), b)
	min := math.Min(math.Min(r, g), b)
	h, s, l := 0.0, 0.0, (max+min)/2

	if max != min {
		d := max - min
		if l > 0.5 {
			s = d / (2 - max - min)
		} else {
			s = d / (max + min)
		}

		switch max {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/d + 2
		case b:
			h = (r-g)/d + 4
		}
		h *= 60
	}

	return HSL{H: h, S: s, L: l}
}

// HSLToRGB converts an HSL color to RGB. Saturation and lightness
// outside [0, 1] produce garbage; generators clamp before calling.
func HSLToRGB(hsl HSL) RGB {
	h := hsl.H / 360
	s := hsl.S
	l := hsl.L

	var r, g, b float64

	if s == 0 {
		r = l
		g = l
		b = l
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - l*s
		}
		p := 2*l - q

		r = hueToRGB(p, q, h+1.0/3.0)
		g = hueToRGB(p, q, h)
		b = hueToRGB(p, q, h-1.0/3.0)
	}

	return RGB{
		R: uint8(math.Round(r * 255)),
		G: uint8(math.Round(g * 255)),
		B: uint8(math.Round(b * 255)),
	}
}

// HSLToHex converts an HSL color straight to its hex string form.
func HSLToHex(hsl HSL) string {
	return HSLToRGB(hsl).Hex()
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t += 1
	}
	if t > 1 {
		t -= 1
	}
	if t < 1.0/6.0 {
		return p + (q-p)*6*t
	}
	if t < 1.0/2.0 {
		return q
	}
	if t < 2.0/3.0 {
		return p + (q-p)*(2.0/3.0-t)*6
	}
	return p
}

// RotateHue rotates the hue by the given number of degrees, wrapping
// at the 0/360 boundary.
func (hsl HSL) RotateHue(degrees float64) HSL {
	hsl.H = math.Mod(hsl.H+degrees, 360)
	if hsl.H < 0 {
		hsl.H += 360
	}
	return hsl
}

// ContrastColor returns "#000000" or "#ffffff", whichever reads better
// on top of the given color. It uses the YIQ luminance formula with a
// fixed threshold of 128; this is not a WCAG contrast computation.
func ContrastColor(hex string) string {
	c := HexToRGB(hex)
	yiq := (299*int(c.R) + 587*int(c.G) + 114*int(c.B)) / 1000
	if yiq >= 128 {
		return "#000000"
	}
	return "#ffffff"
}
