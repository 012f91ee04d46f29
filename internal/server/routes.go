package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"charity_token/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/", func(r chi.Router) {
		r.Route("/v1", func(r chi.Router) {
			// Caller identity comes from the X-Account-Id header; handlers
			// gate administrator operations through the domain service.
			r.Route("/orders", func(r chi.Router) {
				r.Get("/", handler(s.getV1Orders))
				r.Get("/id", handler(s.getV1OrderID))
				r.Get("/archive", handler(s.getV1OrdersArchive))
				r.Delete("/{id}", handler(s.deleteV1Order))
			})

			r.Put("/rate", handler(s.putV1Rate))

			r.Route("/gifts", func(r chi.Router) {
				r.Put("/{id}", handler(s.putV1Gift))
				r.Delete("/{id}", handler(s.deleteV1Gift))
			})

			r.Route("/tokens", func(r chi.Router) {
				r.Post("/send", handler(s.postV1TokensSend))
				r.Post("/redeem", handler(s.postV1TokensRedeem))
			})

			r.Get("/balance", handler(s.getV1Balance))
		})
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
