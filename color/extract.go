package color

import (
	"image"
	"math"
	"sort"
)

// Box is a region of RGB space used by the median-cut extraction.
type Box struct {
	rMin, rMax, gMin, gMax, bMin, bMax int
	colors                             []RGB
}

func (b *Box) volume() int {
	return (b.rMax - b.rMin + 1) * (b.gMax - b.gMin + 1) * (b.bMax - b.bMin + 1)
}

// ExtractPalette picks the numColors most prominent colors from an
// image using median-cut quantization. It is used to seed a base color
// from an uploaded picture.
func ExtractPalette(img image.Image, numColors int) []RGB {
	if numColors < 1 {
		numColors = 1
	}
	if numColors > 256 {
		numColors = 256
	}

	var colors []RGB
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			if a > 0 {
				colors = append(colors, RGB{
					R: uint8(r >> 8),
					G: uint8(g >> 8),
					B: uint8(b >> 8),
				})
			}
		}
	}
	if len(colors) == 0 {
		return nil
	}

	boxes := []*Box{createBox(colors)}

	// Overshoot so that similar-color filtering still leaves enough.
	targetColors := numColors * 2

	for len(boxes) < targetColors {
		boxToSplit := findBoxToSplit(boxes)
		if boxToSplit == nil {
			break
		}
		box1, box2 := splitBox(boxToSplit)
		boxes = append(boxes[:len(boxes)-1], box1, box2)
	}

	palette := make([]RGB, len(boxes))
	for i, box := range boxes {
		palette[i] = averageColor(box.colors)
	}

	palette = filterSimilarColors(palette, 60.0)

	if len(palette) > numColors {
		palette = palette[:numColors]
	}

	return palette
}

// colorDistance is the Euclidean distance between two colors in RGB space.
func colorDistance(c1, c2 RGB) float64 {
	rDiff := float64(c1.R) - float64(c2.R)
	gDiff := float64(c1.G) - float64(c2.G)
	bDiff := float64(c1.B) - float64(c2.B)
	return math.Sqrt(rDiff*rDiff + gDiff*gDiff + bDiff*bDiff)
}

func filterSimilarColors(colors []RGB, threshold float64) []RGB {
	if len(colors) <= 1 {
		return colors
	}

	result := []RGB{colors[0]}
	for i := 1; i < len(colors); i++ {
		isDistinct := true
		for _, existing := range result {
			if colorDistance(colors[i], existing) < threshold {
				isDistinct = false
				break
			}
		}
		if isDistinct {
			result = append(result, colors[i])
		}
	}
	return result
}

func createBox(colors []RGB) *Box {
	if len(colors) == 0 {
		return &Box{}
	}

	box := &Box{
		rMin: 255, rMax: 0,
		gMin: 255, gMax: 0,
		bMin: 255, bMax: 0,
		colors: colors,
	}

	for _, c := range colors {
		box.rMin = min(box.rMin, int(c.R))
		box.rMax = max(box.rMax, int(c.R))
		box.gMin = min(box.gMin, int(c.G))
		box.gMax = max(box.gMax, int(c.G))
		box.bMin = min(box.bMin, int(c.B))
		box.bMax = max(box.bMax, int(c.B))
	}

	return box
}

func findBoxToSplit(boxes []*Box) *Box {
	var maxBox *Box
	maxVolume := 1

	for _, box := range boxes {
		if len(box.colors) < 2 {
			continue
		}
		if volume := box.volume(); volume > maxVolume {
			maxVolume = volume
			maxBox = box
		}
	}

	return maxBox
}

func splitBox(box *Box) (*Box, *Box) {
	rRange := box.rMax - box.rMin
	gRange := box.gMax - box.gMin
	bRange := box.bMax - box.bMin

	var dim byte
	switch {
	case rRange >= gRange && rRange >= bRange:
		dim = 'r'
	case gRange >= rRange && gRange >= bRange:
		dim = 'g'
	default:
		dim = 'b'
	}

	sort.Slice(box.colors, func(i, j int) bool {
		switch dim {
		case 'r':
			return box.colors[i].R < box.colors[j].R
		case 'g':
			return box.colors[i].G < box.colors[j].G
		default:
			return box.colors[i].B < box.colors[j].B
		}
	})

	median := len(box.colors) / 2
	return createBox(box.colors[:median]), createBox(box.colors[median:])
}

func averageColor(colors []RGB) RGB {
	if len(colors) == 0 {
		return RGB{}
	}

	var rSum, gSum, bSum int
	for _, c := range colors {
		rSum += int(c.R)
		gSum += int(c.G)
		bSum += int(c.B)
	}

	count := len(colors)
	return RGB{
		R: uint8(rSum / count),
		G: uint8(gSum / count),
		B: uint8(bSum / count),
	}
}
