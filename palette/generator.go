// Package palette derives harmonious color palettes from a single base
// color. Each scheme spreads a requested number of swatches across its
// hue anchors with closed-form lightness and saturation offsets, so
// generation is O(count) and fully deterministic: identical inputs
// always reproduce the same palette byte for byte.
package palette

import (
	"github.com/watzon/huebloom/color"
)

// Palette is a generated set of swatches. Swatches are ordered so that
// lighter or earlier-hue variants precede the base color and darker or
// later-hue variants follow it.
type Palette struct {
	Base     string
	Scheme   Scheme
	HexCodes []string
	Contrast []string
}

// New generates a palette and the per-swatch contrast text colors.
func New(baseColor string, scheme Scheme, count int) *Palette {
	base := color.StandardizeHex(baseColor)
	hexes := Generate(base, scheme, count)

	contrast := make([]string, len(hexes))
	for i, hex := range hexes {
		contrast[i] = color.ContrastColor(hex)
	}

	return &Palette{
		Base:     base,
		Scheme:   scheme,
		HexCodes: hexes,
		Contrast: contrast,
	}
}

// Generate derives a palette from a base color. The count is raised to
// the scheme minimum and capped at MaxCount, both silently. The base
// color must already have passed color.IsValidHex; garbage in produces
// garbage out, never a panic.
func Generate(baseColor string, scheme Scheme, count int) []string {
	base := color.StandardizeHex(baseColor)
	hsl := color.HexToHSL(base)
	count = scheme.clampCount(count)

	switch scheme {
	case Analogous:
		return analogous(base, hsl, count)
	case Complementary:
		return complementary(base, hsl, count)
	case Triadic:
		return triadic(base, hsl, count)
	case Tetradic:
		return tetradic(base, hsl, count)
	case SplitComplementary:
		return splitComplementary(base, hsl, count)
	default:
		return monochromatic(base, hsl, count)
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// monochromatic builds a tint/shade ladder around the base color. The
// base sits at the middle index, tints fill the indices before it and
// shades the indices after, stepping lightness only.
func monochromatic(base string, hsl color.HSL, count int) []string {
	out := make([]string, count)
	baseIdx := (count - 1) / 2

	step := 0.2
	if count > 5 {
		step = 0.8 / float64(count/2)
	}

	out[baseIdx] = base
	for i := baseIdx - 1; i >= 0; i-- {
		steps := float64(baseIdx - i)
		out[i] = color.HSLToHex(color.HSL{
			H: hsl.H,
			S: hsl.S,
			L: clamp(hsl.L+steps*step, 0, 0.97),
		})
	}
	for i := baseIdx + 1; i < count; i++ {
		steps := float64(i - baseIdx)
		out[i] = color.HSLToHex(color.HSL{
			H: hsl.H,
			S: hsl.S,
			L: clamp(hsl.L-steps*step, 0.05, 1),
		})
	}
	return out
}

// analogous rotates hue only. Half the swatches sit at decreasing hue
// offsets before the base, half at increasing offsets after it; the
// base itself appears only when the count is odd, in the middle.
func analogous(base string, hsl color.HSL, count int) []string {
	step := 20.0
	if count > 5 {
		step = 80.0 / float64(count/2)
	}
	half := count / 2

	out := make([]string, 0, count)
	for i := half; i >= 1; i-- {
		out = append(out, color.HSLToHex(hsl.RotateHue(-step*float64(i))))
	}
	if count%2 == 1 {
		out = append(out, base)
	}
	for i := 1; i <= half; i++ {
		out = append(out, color.HSLToHex(hsl.RotateHue(step*float64(i))))
	}
	return out
}

// complementary splits the swatches between the base hue and its 180
// degree complement. Within each arm, index 0 is a lightened variant,
// index 1 the pure anchor, and later indices drift toward saturated
// shades.
func complementary(base string, hsl color.HSL, count int) []string {
	baseArm := (count + 1) / 2
	compArm := count / 2
	comp := hsl.RotateHue(180)

	out := make([]string, 0, count)
	out = append(out, driftArm(hsl, base, baseArm)...)
	out = append(out, driftArm(comp, color.HSLToHex(comp), compArm)...)
	return out
}

// driftArm lays out one anchor's swatches: a lightened, desaturated
// lead-in, the pure anchor, then a linear drift of saturation up and
// lightness down by 0.3/(n-1) per step.
func driftArm(anchor color.HSL, anchorHex string, n int) []string {
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		switch {
		case i == 0 && n > 1:
			out = append(out, color.HSLToHex(color.HSL{
				H: anchor.H,
				S: clamp(anchor.S-0.2, 0.1, 1),
				L: clamp(anchor.L+0.2, 0.1, 0.9),
			}))
		case i <= 1:
			out = append(out, anchorHex)
		default:
			d := 0.3 / float64(n-1) * float64(i-1)
			out = append(out, color.HSLToHex(color.HSL{
				H: anchor.H,
				S: clamp(anchor.S+d, 0.1, 1),
				L: clamp(anchor.L-d, 0.1, 0.9),
			}))
		}
	}
	return out
}

// splitThirds divides count across three arms: the first takes the
// ceiling third, and of the remainder the second arm takes any odd
// swatch.
func splitThirds(count int) (int, int, int) {
	a0 := (count + 2) / 3
	rem := count - a0
	a1 := (rem + 1) / 2
	return a0, a1, rem - a1
}

// triadic spreads the swatches over anchors at 0, 120, and 240
// degrees. Each arm leads with its pure anchor and then drifts
// saturation and lightness by an i/armCount fraction of (0.05, 0.1).
func triadic(base string, hsl color.HSL, count int) []string {
	a0, a1, a2 := splitThirds(count)

	out := make([]string, 0, count)
	out = append(out, fractionArm(hsl, base, a0)...)
	for i, n := range []int{a1, a2} {
		anchor := hsl.RotateHue(120 * float64(i+1))
		out = append(out, fractionArm(anchor, color.HSLToHex(anchor), n)...)
	}
	return out
}

// fractionArm lays out one anchor's swatches: the pure anchor first,
// then variants whose saturation rises and lightness falls by a
// position-scaled fraction.
func fractionArm(anchor color.HSL, anchorHex string, n int) []string {
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		if i == 0 {
			out = append(out, anchorHex)
			continue
		}
		step := float64(i) / float64(n)
		out = append(out, color.HSLToHex(color.HSL{
			H: anchor.H,
			S: clamp(anchor.S+step*0.05, 0, 1),
			L: clamp(anchor.L-step*0.1, 0, 1),
		}))
	}
	return out
}

// tetradic spreads the swatches over anchors at 0, 90, 180, and 270
// degrees, assigning counts by successive halving of the remainder.
// Only the base arm varies its members; the other arms repeat their
// pure anchor.
func tetradic(base string, hsl color.HSL, count int) []string {
	remaining := count
	a0 := (remaining + 3) / 4
	remaining -= a0
	a1 := (remaining + 2) / 3
	remaining -= a1
	a2 := (remaining + 1) / 2
	a3 := remaining - a2

	out := make([]string, 0, count)
	out = append(out, fractionArm(hsl, base, a0)...)
	for i, n := range []int{a1, a2, a3} {
		anchorHex := color.HSLToHex(hsl.RotateHue(90 * float64(i+1)))
		for j := 0; j < n; j++ {
			out = append(out, anchorHex)
		}
	}
	return out
}

// splitComplementary uses the base hue plus the two hues flanking its
// complement at 150 and 210 degrees. The base arm gets a lightened
// lead-in, the pure base, and a fixed saturated shade; the two split
// arms repeat their pure anchors.
func splitComplementary(base string, hsl color.HSL, count int) []string {
	a0, a1, a2 := splitThirds(count)

	out := make([]string, 0, count)
	for i := 0; i < a0; i++ {
		switch {
		case i == 0 && a0 > 1:
			out = append(out, color.HSLToHex(color.HSL{
				H: hsl.H,
				S: clamp(hsl.S-0.2, 0.1, 1),
				L: clamp(hsl.L+0.2, 0.1, 0.9),
			}))
		case i <= 1:
			out = append(out, base)
		default:
			out = append(out, color.HSLToHex(color.HSL{
				H: hsl.H,
				S: clamp(hsl.S+0.15, 0.1, 1),
				L: clamp(hsl.L-0.15, 0.1, 0.9),
			}))
		}
	}
	for i, n := range []int{a1, a2} {
		anchorHex := color.HSLToHex(hsl.RotateHue(150 + 60*float64(i)))
		for j := 0; j < n; j++ {
			out = append(out, anchorHex)
		}
	}
	return out
}
