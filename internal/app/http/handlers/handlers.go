package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"brasilup/salesflow/internal/apperrors"
	"brasilup/salesflow/internal/domain/quote/pdf"
	"brasilup/salesflow/internal/infra/lookup"
	"brasilup/salesflow/internal/infra/storage/jsonstore"
	"brasilup/salesflow/internal/registry"
)

type Handlers struct {
	Registry *registry.Registry
	Catalog  *jsonstore.CatalogStore
	Clients  *jsonstore.ClientStore
	PDF      pdf.Generator
	Lookup   *lookup.Client
}

func New(reg *registry.Registry, catalog *jsonstore.CatalogStore, clients *jsonstore.ClientStore, gen pdf.Generator, lk *lookup.Client) *Handlers {
	return &Handlers{
		Registry: reg,
		Catalog:  catalog,
		Clients:  clients,
		PDF:      gen,
		Lookup:   lk,
	}
}

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("http: encode response failed err=%v", err)
	}
}

func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, apperrors.ErrInvalidQuote), errors.Is(err, apperrors.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Printf("http: internal error err=%v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
