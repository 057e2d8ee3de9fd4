package server

import (
	"encoding/json"
	"net/http"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (app *Application) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		app.Logger.Error("failed to encode response", "error", err)
	}
}

func (app *Application) badRequest(w http.ResponseWriter, msg string) {
	app.writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}

func (app *Application) internalServerError(w http.ResponseWriter, err error) {
	app.Logger.Error("internal server error", "error", err)
	app.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
}
