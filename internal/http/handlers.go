package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/dsjohal14/citysearch/internal/scope/search"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// Handler contains HTTP handlers for the API
type Handler struct {
	svc    *search.Service
	logger zerolog.Logger
}

// NewHandler creates a new HTTP handler
func NewHandler(svc *search.Service, logger zerolog.Logger) *Handler {
	return &Handler{
		svc:    svc,
		logger: logger,
	}
}

// Routes mounts every endpoint on a new router, after any extra middleware
func (h *Handler) Routes(extra ...func(http.Handler) http.Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(extra...)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)

	// Routes
	r.Get("/health", h.HandleHealth)
	r.Post("/search", h.HandleSearch)
	r.Get("/metrics", h.HandleMetrics)

	return r
}

// Helper functions used across all handlers

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes an error response with the given status code
func writeError(w http.ResponseWriter, status int, message, code string) {
	writeJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}
