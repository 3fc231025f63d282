// Package periodhttp serves the period calculator endpoints.
package periodhttp

import "github.com/go-chi/chi/v5"

// MountRoutes registers the period endpoints under /periods.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Route("/periods", func(r chi.Router) {
		r.Get("/inspect", h.handleInspect)
		r.Post("/compare", h.handleCompare)
		r.Post("/convert", h.handleConvert)
		r.Post("/offset", h.handleOffset)
	})
}
