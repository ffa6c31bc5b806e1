package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, withLogging, withGZip)

	router.Group(func(r chi.Router) {
		if h.requestTimeout > 0 {
			r.Use(withRequestTimeout(h.requestTimeout))
		}
		r.Get("/merge", h.merge)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
