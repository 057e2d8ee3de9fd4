package server

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"math"
	"net/http"
	"strconv"

	"github.com/nfnt/resize"

	"github.com/watzon/huebloom/color"
	"github.com/watzon/huebloom/palette"
)

const (
	maxExtractDim     = 1600
	defaultExtractLen = 5
)

type swatchResponse struct {
	Hex      string `json:"hex"`
	Contrast string `json:"contrast"`
	HSL      string `json:"hsl"`
	OKLCH    string `json:"oklch"`
}

type paletteResponse struct {
	Base     string           `json:"base"`
	Scheme   string           `json:"scheme"`
	Name     string           `json:"name"`
	Count    int              `json:"count"`
	Fragment string           `json:"fragment"`
	Colors   []swatchResponse `json:"colors"`
}

func toResponse(p *palette.Palette) paletteResponse {
	colors := make([]swatchResponse, len(p.HexCodes))
	for i, hex := range p.HexCodes {
		hsl := color.HexToHSL(hex)
		colors[i] = swatchResponse{
			Hex:      hex,
			Contrast: p.Contrast[i],
			HSL:      hsl.CSS(),
			OKLCH:    hsl.OKLCH(),
		}
	}
	return paletteResponse{
		Base:     p.Base,
		Scheme:   p.Scheme.String(),
		Name:     p.Scheme.DisplayName(),
		Count:    len(p.HexCodes),
		Fragment: palette.EncodeFragment(p.Base, p.Scheme),
		Colors:   colors,
	}
}

// paletteParams reads and validates the color/scheme/count query
// parameters shared by the palette endpoints.
func (app *Application) paletteParams(r *http.Request) (string, palette.Scheme, int, error) {
	baseColor := r.URL.Query().Get("color")
	if !color.IsValidHex(baseColor) {
		return "", 0, 0, fmt.Errorf("invalid color %q", baseColor)
	}

	scheme := palette.ParseScheme(r.URL.Query().Get("scheme"))

	count := palette.DefaultCount
	if v := r.URL.Query().Get("count"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return "", 0, 0, fmt.Errorf("invalid count %q", v)
		}
		count = n
	}

	return baseColor, scheme, count, nil
}

// GET /api/palette
func (app *Application) getPalette(w http.ResponseWriter, r *http.Request) {
	baseColor, scheme, count, err := app.paletteParams(r)
	if err != nil {
		app.badRequest(w, err.Error())
		return
	}

	p := app.Cache.Generate(baseColor, scheme, count)
	app.writeJSON(w, http.StatusOK, toResponse(p))
}

// GET /api/palette/image
func (app *Application) getPaletteImage(w http.ResponseWriter, r *http.Request) {
	baseColor, scheme, count, err := app.paletteParams(r)
	if err != nil {
		app.badRequest(w, err.Error())
		return
	}

	p := app.Cache.Generate(baseColor, scheme, count)
	img, err := p.ToImage()
	if err != nil {
		app.internalServerError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, img); err != nil {
		app.Logger.Error("failed to encode palette image", "error", err)
	}
}

// GET /api/random
func (app *Application) getRandom(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, http.StatusOK, map[string]string{"color": palette.RandomHex()})
}

// GET /api/featured
func (app *Application) getFeatured(w http.ResponseWriter, r *http.Request) {
	p := app.Featured()
	if p == nil {
		app.internalServerError(w, fmt.Errorf("featured palette not yet generated"))
		return
	}
	app.writeJSON(w, http.StatusOK, toResponse(p))
}

// POST /api/extract
func (app *Application) extractColors(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, app.Config.MaxUploadBytes)

	img, _, err := image.Decode(r.Body)
	if err != nil {
		app.badRequest(w, "could not decode image")
		return
	}
	img = fitImage(img)

	n := defaultExtractLen
	if v := r.URL.Query().Get("count"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 && parsed <= palette.MaxCount {
			n = parsed
		}
	}

	extracted := color.ExtractPalette(img, n)
	if len(extracted) == 0 {
		app.badRequest(w, "image has no opaque pixels")
		return
	}

	hexes := make([]string, len(extracted))
	for i, c := range extracted {
		hexes[i] = c.Hex()
	}
	app.writeJSON(w, http.StatusOK, map[string]any{
		"colors": hexes,
		"base":   hexes[0],
	})
}

// fitImage downscales an image so extraction does not walk millions of
// pixels, keeping aspect ratio. Small images pass through untouched.
func fitImage(img image.Image) image.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width <= maxExtractDim && height <= maxExtractDim {
		return img
	}

	widthRatio := float64(maxExtractDim) / float64(width)
	heightRatio := float64(maxExtractDim) / float64(height)
	ratio := math.Min(widthRatio, heightRatio)

	newWidth := uint(float64(width) * ratio)
	newHeight := uint(float64(height) * ratio)

	return resize.Resize(newWidth, newHeight, img, resize.Lanczos3)
}
