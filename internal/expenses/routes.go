package expenses

import (
	"github.com/go-chi/chi/v5"
)

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/categories", h.Catalog)
	r.Get("/categories/summary", h.CategorySummary)
	r.Get("/reimbursable", h.Reimbursable)
	r.Get("/range", h.DateRange)
	r.Post("/suggest-category", h.SuggestCategory)
	r.Get("/{id}", h.Show)
	r.Patch("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}
