package color

import (
	"fmt"
	"math"
)

// Format identifies one of the textual representations offered when
// copying a swatch.
type Format int

const (
	FormatHex Format = iota
	FormatHSL
	FormatOKLCH
)

// ParseFormat maps a format name to a Format. Unknown names fall back
// to FormatHex.
func ParseFormat(s string) Format {
	switch s {
	case "hsl":
		return FormatHSL
	case "oklch":
		return FormatOKLCH
	default:
		return FormatHex
	}
}

func (f Format) String() string {
	switch f {
	case FormatHSL:
		return "hsl"
	case FormatOKLCH:
		return "oklch"
	default:
		return "hex"
	}
}

// CSS returns the color as a CSS hsl() string with integer degrees and
// percentages, e.g. "hsl(217deg 91% 60%)".
func (hsl HSL) CSS() string {
	return fmt.Sprintf("hsl(%ddeg %d%% %d%%)",
		int(math.Round(hsl.H)),
		int(math.Round(hsl.S*100)),
		int(math.Round(hsl.L*100)))
}

// OKLCH returns an approximate oklch() string for display purposes.
// Chroma is derived as saturation x 0.4; this is not a true OKLCH
// conversion.
func (hsl HSL) OKLCH() string {
	return fmt.Sprintf("oklch(%d%% %.2f %ddeg)",
		int(math.Round(hsl.L*100)),
		hsl.S*0.4,
		int(math.Round(hsl.H)))
}

// FormatSwatch renders a hex color in the requested copy format.
func FormatSwatch(hex string, f Format) string {
	switch f {
	case FormatHSL:
		return HexToHSL(hex).CSS()
	case FormatOKLCH:
		return HexToHSL(hex).OKLCH()
	default:
		return StandardizeHex(hex)
	}
}
