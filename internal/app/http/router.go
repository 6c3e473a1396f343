// Package http wires the HTTP surface: routing, middleware and handlers.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"brasilup/salesflow/internal/app/config"
	"brasilup/salesflow/internal/app/http/handlers"
	"brasilup/salesflow/internal/app/http/middleware"
)

func NewRouter(cfg config.Config, h *handlers.Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSAllowOrigin))

	r.Get("/health", h.Health)

	r.Route("/v1", func(r chi.Router) {
		if cfg.InternalToken != "" {
			r.Use(middleware.InternalAuth(cfg.InternalToken))
		}

		r.Post("/quotes", h.CreateQuote)
		r.Get("/quotes", h.ListQuotes)
		r.Get("/quotes/{number}", h.GetQuote)
		r.Put("/quotes/{number}", h.UpdateQuote)
		r.Get("/quotes/{number}/pdf", h.QuotePDF)

		r.Get("/catalog", h.GetCatalog)
		r.Post("/products", h.CreateProduct)

		r.Get("/clients", h.ListClients)
		r.Post("/clients/companies", h.CreateCompany)
		r.Post("/clients/individuals", h.CreateIndividual)

		r.Get("/lookup/cnpj/{cnpj}", h.LookupCNPJ)
		r.Get("/lookup/cep/{cep}", h.LookupCEP)
	})

	return r
}
