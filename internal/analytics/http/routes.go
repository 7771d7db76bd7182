package analytichttp

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
)

// MountRoutes registers the dashboard and report endpoints onto the router.
func (h *Handler) MountRoutes(r chi.Router) {
	if h == nil {
		return
	}
	r.Get("/dashboard", h.handleDashboard)
	r.Get("/reports", h.handleReport)
	r.Group(func(gr chi.Router) {
		if h.csvPerMinute > 0 {
			gr.Use(httprate.Limit(h.csvPerMinute, time.Minute,
				httprate.WithKeyFuncs(httprate.KeyByIP),
				httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
					http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				}),
			))
		}
		gr.Get("/reports/gst.csv", h.handleCSV)
	})
}
