package palette

// Scheme identifies a color harmony scheme. The set is closed; the
// dispatcher switches over it exhaustively.
type Scheme int

const (
	Monochromatic Scheme = iota
	Analogous
	Complementary
	Triadic
	Tetradic
	SplitComplementary
)

const (
	// MaxCount is the hard cap on swatches per palette. The engine
	// enforces it rather than trusting callers.
	MaxCount = 10

	// DefaultCount is the swatch count used when the caller does not
	// ask for one.
	DefaultCount = 5
)

// Schemes returns every scheme in display order.
func Schemes() []Scheme {
	return []Scheme{
		Monochromatic,
		Analogous,
		Complementary,
		Triadic,
		Tetradic,
		SplitComplementary,
	}
}

// ParseScheme maps a scheme name to a Scheme. Unknown names fall back
// to Monochromatic, which is what the share-link contract requires.
func ParseScheme(s string) Scheme {
	switch s {
	case "analogous":
		return Analogous
	case "complementary":
		return Complementary
	case "triadic":
		return Triadic
	case "tetradic":
		return Tetradic
	case "split-complementary":
		return SplitComplementary
	default:
		return Monochromatic
	}
}

func (s Scheme) String() string {
	switch s {
	case Analogous:
		return "analogous"
	case Complementary:
		return "complementary"
	case Triadic:
		return "triadic"
	case Tetradic:
		return "tetradic"
	case SplitComplementary:
		return "split-complementary"
	default:
		return "monochromatic"
	}
}

// DisplayName returns a human-readable name for the scheme.
func (s Scheme) DisplayName() string {
	switch s {
	case Analogous:
		return "Analogous Palette"
	case Complementary:
		return "Complementary Palette"
	case Triadic:
		return "Triadic Palette"
	case Tetradic:
		return "Tetradic Palette"
	case SplitComplementary:
		return "Split Complementary Palette"
	default:
		return "Monochromatic Palette"
	}
}

// MinCount returns the smallest swatch count the scheme can produce.
// Complementary and tetradic need at least two swatches per anchor
// pair; the rest work from three.
func (s Scheme) MinCount() int {
	switch s {
	case Complementary, Tetradic:
		return 4
	default:
		return 3
	}
}

// clampCount raises counts below the scheme minimum and lowers counts
// above MaxCount, both silently.
func (s Scheme) clampCount(count int) int {
	if min := s.MinCount(); count < min {
		return min
	}
	if count > MaxCount {
		return MaxCount
	}
	return count
}
