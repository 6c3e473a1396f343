package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"brasilup/salesflow/internal/apperrors"
	"brasilup/salesflow/internal/domain/catalog"
)

// GetCatalog returns the full catalog: products, salespeople, validity and
// the company profile.
func (h *Handlers) GetCatalog(w http.ResponseWriter, r *http.Request) {
	cat, err := h.Catalog.Load()
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, cat)
}

// CreateProduct appends a product to the catalog. Names are stored uppercase
// so catalog lookups and the printed document agree.
func (h *Handlers) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var p catalog.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	p.Name = strings.ToUpper(strings.TrimSpace(p.Name))
	p.Category = strings.TrimSpace(p.Category)
	if p.Category == "" || p.Name == "" {
		respondError(w, fmt.Errorf("%w: category and name are required", apperrors.ErrValidation))
		return
	}

	if err := h.Catalog.AddProduct(p); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, p)
}
