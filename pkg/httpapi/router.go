package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/datavruti/formgate/pkg/requestid"
)

// NewRouter assembles the public HTTP surface: the two submission routes
// plus a liveness probe. Extra middleware (rate limiting, client IP
// resolution) is supplied by the caller so tests can run the bare pipeline.
func NewRouter(h *Handler, mws ...func(http.Handler) http.Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(requestid.Middleware)
	for _, mw := range mws {
		r.Use(mw)
	}

	r.Post("/api/contact", h.Submit)
	r.Post("/api/talent-pool", h.SubmitTalentPool)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return r
}
