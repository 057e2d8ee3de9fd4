package palette

import (
	"fmt"
	"image"
	stdcolor "image/color"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/gobold"

	"github.com/watzon/huebloom/color"
)

const (
	cardSize     = 1400
	baseFontSize = 42
)

// ToImage renders the palette as a square card: one vertical bar per
// swatch with its hex code drawn in the swatch's contrast color.
func (p *Palette) ToImage() (image.Image, error) {
	numColors := len(p.HexCodes)
	if numColors == 0 {
		return nil, fmt.Errorf("no colors to render")
	}

	dc := gg.NewContext(cardSize, cardSize)
	dc.SetColor(stdcolor.White)
	dc.Clear()

	font, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}

	// Shrink the caption as the palette gets wider.
	fontSize := baseFontSize
	if numColors > 5 {
		fontSize = baseFontSize * 5 / numColors
		if fontSize < 24 {
			fontSize = 24
		}
	}
	dc.SetFontFace(truetype.NewFace(font, &truetype.Options{
		Size: float64(fontSize),
	}))

	barWidth := float64(cardSize) / float64(numColors)
	for i, hex := range p.HexCodes {
		x := float64(i) * barWidth

		dc.SetColor(color.HexToRGB(hex).ToRGBA())
		dc.DrawRectangle(x, 0, barWidth, cardSize)
		dc.Fill()

		dc.SetColor(color.HexToRGB(p.Contrast[i]).ToRGBA())
		caption := strings.TrimPrefix(hex, "#")
		textWidth, _ := dc.MeasureString(caption)
		dc.DrawString(caption, x+(barWidth-textWidth)/2, float64(cardSize)/3)
	}

	return dc.Image(), nil
}
