package handlers

import (
	"encoding/json"
	"net/http"

	"brasilup/salesflow/internal/domain/client"
)

func (h *Handlers) ListClients(w http.ResponseWriter, r *http.Request) {
	book, err := h.Clients.Load()
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, book)
}

func (h *Handlers) CreateCompany(w http.ResponseWriter, r *http.Request) {
	var c client.Company
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if err := c.Validate(); err != nil {
		respondError(w, err)
		return
	}

	saved, err := h.Clients.AddCompany(c)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, saved)
}

func (h *Handlers) CreateIndividual(w http.ResponseWriter, r *http.Request) {
	var p client.Individual
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if err := p.Validate(); err != nil {
		respondError(w, err)
		return
	}

	saved, err := h.Clients.AddIndividual(p)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, saved)
}
