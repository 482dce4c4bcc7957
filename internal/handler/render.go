package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
)

// renderComponent writes c with the given status. Rendering is buffered by
// templ, so a failed render still produces a clean 500.
func renderComponent(w http.ResponseWriter, r *http.Request, c templ.Component, status int) {
	templ.Handler(c,
		templ.WithStatus(status),
		templ.WithErrorHandler(func(r *http.Request, err error) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				slog.ErrorContext(r.Context(), "render failed", "path", r.URL.Path, "error", err)
				http.Error(w, "internal error", http.StatusInternalServerError)
			})
		}),
	).ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}
