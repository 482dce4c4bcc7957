package handler

import (
	"net/http"

	"github.com/givers/site/internal/view"
)

// RouterConfig bundles the handlers and middleware that make up the site.
type RouterConfig struct {
	Site        *Handler
	Pages       *PageHandler
	Contact     *ContactHandler
	RateLimiter *RateLimiter
	// FrameOrigins are allowed as <iframe> sources, e.g. the map embed.
	FrameOrigins []string
}

// NewRouter registers every route and wraps the mux in the shared middleware.
func NewRouter(cfg RouterConfig) http.Handler {
	limit := func(h http.HandlerFunc) http.Handler {
		if cfg.RateLimiter == nil {
			return h
		}
		return cfg.RateLimiter.Middleware(h)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", cfg.Pages.Home)
	mux.HandleFunc("GET /contact", cfg.Pages.Contact)
	mux.Handle("POST /contact", limit(cfg.Contact.Submit))
	mux.HandleFunc("GET /support", cfg.Pages.Support)
	mux.HandleFunc("GET /faqs", cfg.Pages.FAQ)
	mux.Handle("GET /static/", view.Static())

	// JSON API for clients that render the form themselves
	api := http.NewServeMux()
	api.HandleFunc("GET /api/health", cfg.Site.Health)
	api.Handle("POST /api/contact", limit(cfg.Contact.SubmitJSON))
	mux.Handle("/api/", cfg.Site.CORS(api))

	var frameOrigins []string
	for _, o := range cfg.FrameOrigins {
		if o != "" {
			frameOrigins = append(frameOrigins, o)
		}
	}
	return RequestLogger(SecurityHeaders(frameOrigins...)(mux))
}
