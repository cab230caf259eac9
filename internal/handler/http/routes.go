package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Init builds the router. Account routes are mounted under the configured
// base path; liveness, version and metrics routes always live at the root.
// A trailing slash is ignored on every route.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.StripSlashes)
	router.Use(h.withCORS())
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/", h.root)
	router.Get("/health", h.healthCheck)
	router.Get("/version", h.getServerVersion)
	if h.registry != nil {
		router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(h.registry, promhttp.HandlerOpts{}))
	}

	accountRoutes := func(r chi.Router) {
		// routes without authorization
		r.Post("/register", h.register)
		r.Post("/login", h.login)

		// routes with authorization
		r.With(h.auth).Get("/session", h.session)
	}
	if h.basePath == "" {
		router.Group(accountRoutes)
	} else {
		router.Route(h.basePath, accountRoutes)
	}

	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
