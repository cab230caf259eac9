package http

import (
	"net/http"

	"github.com/go-chi/cors"
)

func (h *Handler) withCORS() func(http.Handler) http.Handler {
	origins := h.corsOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         300,
	})
}
