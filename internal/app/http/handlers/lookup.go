package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"brasilup/salesflow/internal/apperrors"
)

// LookupCNPJ proxies a company lookup so the form can prefill client fields.
func (h *Handlers) LookupCNPJ(w http.ResponseWriter, r *http.Request) {
	rec, err := h.Lookup.CompanyByCNPJ(r.Context(), chi.URLParam(r, "cnpj"))
	if err != nil {
		respondLookupError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rec)
}

// LookupCEP proxies a postal-code lookup for address prefill.
func (h *Handlers) LookupCEP(w http.ResponseWriter, r *http.Request) {
	rec, err := h.Lookup.AddressByCEP(r.Context(), chi.URLParam(r, "cep"))
	if err != nil {
		respondLookupError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rec)
}

// Upstream failures map to 502; the caller did nothing wrong.
func respondLookupError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, apperrors.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Printf("lookup: upstream failure error=%v", err)
		http.Error(w, "lookup failed", http.StatusBadGateway)
	}
}
