package server

import (
	"math/rand"

	"github.com/watzon/huebloom/palette"
)

// rotateFeatured replaces the featured palette with a freshly
// generated random one.
func (app *Application) rotateFeatured() {
	schemes := palette.Schemes()
	scheme := schemes[rand.Intn(len(schemes))]

	p := app.Cache.Generate(palette.RandomHex(), scheme, palette.DefaultCount)

	app.mu.Lock()
	app.featured = p
	app.mu.Unlock()

	if app.Logger != nil {
		app.Logger.Info("rotated featured palette",
			"color", p.Base, "scheme", scheme.String())
	}
}

// Featured returns the current featured palette.
func (app *Application) Featured() *palette.Palette {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return app.featured
}
