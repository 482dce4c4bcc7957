package handler

import (
	"net/http"
)

// Handler serves site-wide endpoints (health, CORS).
type Handler struct {
	siteName    string
	frontendURL string
}

func New(siteName, frontendURL string) *Handler {
	return &Handler{siteName: siteName, frontendURL: frontendURL}
}

// CORS allows the configured frontend origin to call the JSON API.
func (h *Handler) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", h.frontendURL)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		w.Header().Set("Access-Control-Allow-Credentials", "true")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
