package server

import (
	"embed"
	"net/http"
)

//go:embed static/index.html
var staticFS embed.FS

// Routes builds the server's route table.
func (app *Application) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/palette", app.getPalette)
	mux.HandleFunc("GET /api/palette/image", app.getPaletteImage)
	mux.HandleFunc("GET /api/random", app.getRandom)
	mux.HandleFunc("GET /api/featured", app.getFeatured)
	mux.HandleFunc("POST /api/extract", app.extractColors)
	mux.HandleFunc("GET /", app.home)

	return mux
}

// GET /
func (app *Application) home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	page, err := staticFS.ReadFile("static/index.html")
	if err != nil {
		app.internalServerError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}
