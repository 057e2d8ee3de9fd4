package palette

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/watzon/huebloom/color"
)

// hueDiff is the wrap-aware angular distance between two hues.
func hueDiff(a, b float64) float64 {
	d := math.Abs(a - b)
	if d > 180 {
		d = 360 - d
	}
	return d
}

func TestGenerateCountInvariant(t *testing.T) {
	for _, scheme := range Schemes() {
		for count := scheme.MinCount(); count <= MaxCount; count++ {
			got := Generate("#3b82f6", scheme, count)
			if len(got) != count {
				t.Errorf("%s count %d produced %d colors", scheme, count, len(got))
			}
		}
	}
}

func TestGenerateCountFloor(t *testing.T) {
	tests := []struct {
		scheme Scheme
		want   int
	}{
		{scheme: Monochromatic, want: 3},
		{scheme: Analogous, want: 3},
		{scheme: Complementary, want: 4},
		{scheme: Triadic, want: 3},
		{scheme: Tetradic, want: 4},
		{scheme: SplitComplementary, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.scheme.String(), func(t *testing.T) {
			if got := Generate("#3b82f6", tt.scheme, 1); len(got) != tt.want {
				t.Errorf("count 1 produced %d colors, want floor %d", len(got), tt.want)
			}
		})
	}
}

func TestGenerateCountCap(t *testing.T) {
	for _, scheme := range Schemes() {
		if got := Generate("#3b82f6", scheme, 25); len(got) != MaxCount {
			t.Errorf("%s count 25 produced %d colors, want cap %d", scheme, len(got), MaxCount)
		}
	}
}

func TestGenerateDeterminism(t *testing.T) {
	for _, scheme := range Schemes() {
		a := Generate("#3b82f6", scheme, 7)
		b := Generate("#3b82f6", scheme, 7)
		if diff := cmp.Diff(a, b); diff != "" {
			t.Errorf("%s not deterministic (-first +second):\n%s", scheme, diff)
		}
	}
}

func TestMonochromatic(t *testing.T) {
	t.Run("shorthand standardizes before math", func(t *testing.T) {
		got := Generate("abc", Monochromatic, 3)
		if got[1] != "#aabbcc" {
			t.Errorf("base at middle index = %s, want #aabbcc", got[1])
		}
	})

	t.Run("base at middle, tints before, shades after", func(t *testing.T) {
		got := Generate("#3b82f6", Monochromatic, 5)
		baseIdx := 2
		if got[baseIdx] != "#3b82f6" {
			t.Fatalf("base at index %d = %s, want #3b82f6", baseIdx, got[baseIdx])
		}

		baseL := color.HexToHSL(got[baseIdx]).L
		for i := 0; i < baseIdx; i++ {
			if l := color.HexToHSL(got[i]).L; l <= baseL {
				t.Errorf("index %d lightness %v not lighter than base %v", i, l, baseL)
			}
		}
		for i := baseIdx + 1; i < len(got); i++ {
			if l := color.HexToHSL(got[i]).L; l >= baseL {
				t.Errorf("index %d lightness %v not darker than base %v", i, l, baseL)
			}
		}
	})

	t.Run("hue and saturation unchanged", func(t *testing.T) {
		base := color.HexToHSL("#3b82f6")
		// Rounding error grows near the lightness extremes, so allow a
		// few degrees of quantization drift.
		for _, hex := range Generate("#3b82f6", Monochromatic, 7) {
			hsl := color.HexToHSL(hex)
			if hueDiff(hsl.H, base.H) > 4 {
				t.Errorf("%s hue %v drifted from base %v", hex, hsl.H, base.H)
			}
		}
	})

	t.Run("lightness clamps hold at extremes", func(t *testing.T) {
		for _, hex := range Generate("#f0f0f0", Monochromatic, 9) {
			l := color.HexToHSL(hex).L
			if l > 0.975 {
				t.Errorf("%s lightness %v above tint clamp", hex, l)
			}
		}
		// Only the derived shades are clamped; the base keeps its own
		// lightness, so check the indices after it.
		shades := Generate("#0a0a0a", Monochromatic, 9)
		for _, hex := range shades[5:] {
			l := color.HexToHSL(hex).L
			if l < 0.045 {
				t.Errorf("%s lightness %v below shade clamp", hex, l)
			}
		}
	})
}

func TestAnalogous(t *testing.T) {
	t.Run("odd count includes base in the middle", func(t *testing.T) {
		got := Generate("#3b82f6", Analogous, 5)
		if got[2] != "#3b82f6" {
			t.Errorf("middle swatch = %s, want #3b82f6", got[2])
		}
	})

	t.Run("even count omits the base", func(t *testing.T) {
		got := Generate("#3b82f6", Analogous, 4)
		for i, hex := range got {
			if hex == "#3b82f6" {
				t.Errorf("index %d is the base color; even counts should omit it", i)
			}
		}
	})

	t.Run("hue offsets are symmetric 20 degree steps", func(t *testing.T) {
		base := color.HexToHSL("#3b82f6")
		got := Generate("#3b82f6", Analogous, 5)
		wantOffsets := []float64{-40, -20, 0, 20, 40}
		for i, hex := range got {
			wantHue := math.Mod(base.H+wantOffsets[i]+360, 360)
			if gotHue := color.HexToHSL(hex).H; hueDiff(gotHue, wantHue) > 2 {
				t.Errorf("index %d hue %v, want ~%v", i, gotHue, wantHue)
			}
		}
	})

	t.Run("offsets wrap at the hue boundary", func(t *testing.T) {
		// Hue 350: the +40 arm must land at 30, not 390.
		base := color.HSLToHex(color.HSL{H: 350, S: 0.8, L: 0.5})
		got := Generate(base, Analogous, 5)
		last := color.HexToHSL(got[len(got)-1])
		if hueDiff(last.H, 30) > 2 {
			t.Errorf("wrapped hue = %v, want ~30", last.H)
		}
	})

	t.Run("wide counts tighten the step", func(t *testing.T) {
		base := color.HexToHSL("#3b82f6")
		got := Generate("#3b82f6", Analogous, 9)
		// step = 80/4 = 20 at count 9; extremes sit at +-80.
		first := color.HexToHSL(got[0])
		if hueDiff(first.H, math.Mod(base.H-80+360, 360)) > 2 {
			t.Errorf("first hue %v, want ~%v", first.H, math.Mod(base.H-80+360, 360))
		}
	})
}

func TestComplementary(t *testing.T) {
	got := Generate("#3b82f6", Complementary, 4)
	if len(got) != 4 {
		t.Fatalf("got %d colors, want 4", len(got))
	}

	if got[1] != "#3b82f6" {
		t.Errorf("pure base at index 1 = %s, want #3b82f6", got[1])
	}

	base := color.HexToHSL("#3b82f6")
	wantComp := math.Mod(base.H+180, 360)
	compHue := color.HexToHSL(got[3]).H
	if hueDiff(compHue, wantComp) > 2 {
		t.Errorf("complement arm hue = %v, want ~%v", compHue, wantComp)
	}

	// Index 0 is the lightened, desaturated lead-in for the base arm.
	lead := color.HexToHSL(got[0])
	if lead.L <= base.L {
		t.Errorf("lead-in lightness %v not lighter than base %v", lead.L, base.L)
	}
	if hueDiff(lead.H, base.H) > 2 {
		t.Errorf("lead-in hue %v drifted from base %v", lead.H, base.H)
	}
}

func TestComplementaryArmSplit(t *testing.T) {
	// Odd counts give the base arm the extra swatch: ceil(7/2) = 4.
	got := Generate("#3b82f6", Complementary, 7)
	base := color.HexToHSL("#3b82f6")
	comp := math.Mod(base.H+180, 360)

	for i, hex := range got {
		hue := color.HexToHSL(hex).H
		wantHue := base.H
		if i >= 4 {
			wantHue = comp
		}
		if hueDiff(hue, wantHue) > 2 {
			t.Errorf("index %d hue %v, want ~%v", i, hue, wantHue)
		}
	}
}

func TestTriadic(t *testing.T) {
	got := Generate("#3b82f6", Triadic, 6)
	base := color.HexToHSL("#3b82f6")

	// Count 6 splits 2/2/2 across anchors at +0, +120, +240.
	wantAnchors := []float64{0, 0, 120, 120, 240, 240}
	for i, hex := range got {
		want := math.Mod(base.H+wantAnchors[i], 360)
		if hue := color.HexToHSL(hex).H; hueDiff(hue, want) > 2 {
			t.Errorf("index %d hue %v, want ~%v", i, hue, want)
		}
	}

	if got[0] != "#3b82f6" {
		t.Errorf("base anchor = %s, want #3b82f6", got[0])
	}
}

func TestTriadicArmSplit(t *testing.T) {
	// Count 5: base arm ceil(5/3)=2, then the odd remainder goes to
	// the first split arm: 2/2/1.
	got := Generate("#3b82f6", Triadic, 5)
	base := color.HexToHSL("#3b82f6")

	wantAnchors := []float64{0, 0, 120, 120, 240}
	for i, hex := range got {
		want := math.Mod(base.H+wantAnchors[i], 360)
		if hue := color.HexToHSL(hex).H; hueDiff(hue, want) > 2 {
			t.Errorf("index %d hue %v, want ~%v", i, hue, want)
		}
	}
}

func TestTetradic(t *testing.T) {
	got := Generate("#3b82f6", Tetradic, 8)

	if got[0] != "#3b82f6" {
		t.Errorf("base anchor = %s, want #3b82f6", got[0])
	}

	// Count 8 splits 2/2/2/2; the non-base arms repeat their pure
	// anchor verbatim.
	for _, pair := range [][2]int{{2, 3}, {4, 5}, {6, 7}} {
		if got[pair[0]] != got[pair[1]] {
			t.Errorf("arm members %d and %d differ: %s vs %s",
				pair[0], pair[1], got[pair[0]], got[pair[1]])
		}
	}

	base := color.HexToHSL("#3b82f6")
	wantAnchors := []float64{0, 0, 90, 90, 180, 180, 270, 270}
	for i, hex := range got {
		want := math.Mod(base.H+wantAnchors[i], 360)
		if hue := color.HexToHSL(hex).H; hueDiff(hue, want) > 2 {
			t.Errorf("index %d hue %v, want ~%v", i, hue, want)
		}
	}
}

func TestSplitComplementary(t *testing.T) {
	// Count 6 splits 2/2/2 over anchors at +0, +150, +210.
	got := Generate("#3b82f6", SplitComplementary, 6)
	base := color.HexToHSL("#3b82f6")

	if got[1] != "#3b82f6" {
		t.Errorf("pure base at index 1 = %s, want #3b82f6", got[1])
	}

	wantAnchors := []float64{0, 0, 150, 150, 210, 210}
	for i, hex := range got {
		want := math.Mod(base.H+wantAnchors[i], 360)
		if hue := color.HexToHSL(hex).H; hueDiff(hue, want) > 2 {
			t.Errorf("index %d hue %v, want ~%v", i, hue, want)
		}
	}

	// Split arms repeat their pure anchors.
	if got[2] != got[3] || got[4] != got[5] {
		t.Errorf("split arms should repeat their anchors: %v", got)
	}

	// Base arm lead-in is lighter than the base.
	if lead := color.HexToHSL(got[0]); lead.L <= base.L {
		t.Errorf("lead-in lightness %v not lighter than base %v", lead.L, base.L)
	}
}

func TestSplitComplementaryMinimum(t *testing.T) {
	// Count 3 gives one swatch per arm; the base arm is the pure base.
	got := Generate("#3b82f6", SplitComplementary, 3)
	if got[0] != "#3b82f6" {
		t.Errorf("single-member base arm = %s, want #3b82f6", got[0])
	}
}

func TestGeneratorsClampToUnitRange(t *testing.T) {
	// Near-white and near-black bases push every drift formula into
	// its clamps; the results must stay convertible.
	for _, base := range []string{"#fefefe", "#010101", "#ff0000", "#00ff00"} {
		for _, scheme := range Schemes() {
			for _, hex := range Generate(base, scheme, 10) {
				hsl := color.HexToHSL(hex)
				if hsl.S < 0 || hsl.S > 1 || hsl.L < 0 || hsl.L > 1 {
					t.Errorf("%s/%s produced out-of-range %v", base, scheme, hsl)
				}
				if !color.IsValidHex(hex) {
					t.Errorf("%s/%s produced invalid hex %q", base, scheme, hex)
				}
			}
		}
	}
}

func TestNewComputesContrast(t *testing.T) {
	p := New("#3b82f6", Complementary, 4)
	if len(p.Contrast) != len(p.HexCodes) {
		t.Fatalf("contrast length %d, hex length %d", len(p.Contrast), len(p.HexCodes))
	}
	for i, c := range p.Contrast {
		if want := color.ContrastColor(p.HexCodes[i]); c != want {
			t.Errorf("contrast[%d] = %s, want %s", i, c, want)
		}
	}
	if p.Base != "#3b82f6" {
		t.Errorf("Base = %s, want #3b82f6", p.Base)
	}
}
