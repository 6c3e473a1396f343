package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"brasilup/salesflow/internal/domain/quote"
)

// QuoteDraft is the payload the form layer submits. The server owns the
// number, the company snapshot and all totals.
type QuoteDraft struct {
	Client       quote.ClientRef `json:"cliente"`
	Salesperson  string          `json:"vendedor"`
	IssueDate    quote.Date      `json:"data,omitempty"`
	ValidityDays int             `json:"validade_dias,omitempty"`
	Items        []DraftItem     `json:"itens"`
	Notes        string          `json:"observacoes,omitempty"`
}

type DraftItem struct {
	Description string          `json:"descricao"`
	Quantity    int             `json:"quantidade"`
	UnitPrice   decimal.Decimal `json:"preco_unitario"`
}

// CreateQuote finalizes a draft: assigns the next document number, snapshots
// the company profile, computes the expiration date and persists the quote.
func (h *Handlers) CreateQuote(w http.ResponseWriter, r *http.Request) {
	var draft QuoteDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	q, err := h.buildQuote(draft)
	if err != nil {
		respondError(w, err)
		return
	}

	number, err := h.Registry.NextNumber(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	q.Number = number

	if err := h.Registry.Save(r.Context(), q); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, q)
}

// UpdateQuote fully replaces the stored quote. The number in the path wins;
// editing never consumes a new sequence number.
func (h *Handlers) UpdateQuote(w http.ResponseWriter, r *http.Request) {
	number := quoteNumber(r)
	if _, err := h.Registry.Find(r.Context(), number); err != nil {
		respondError(w, err)
		return
	}

	var draft QuoteDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	q, err := h.buildQuote(draft)
	if err != nil {
		respondError(w, err)
		return
	}
	q.Number = number

	if err := h.Registry.Save(r.Context(), q); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, q)
}

func (h *Handlers) GetQuote(w http.ResponseWriter, r *http.Request) {
	q, err := h.Registry.Find(r.Context(), quoteNumber(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, q)
}

func (h *Handlers) ListQuotes(w http.ResponseWriter, r *http.Request) {
	quotes, err := h.Registry.ListAll(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"orcamentos": quotes})
}

func (h *Handlers) QuotePDF(w http.ResponseWriter, r *http.Request) {
	q, err := h.Registry.Find(r.Context(), quoteNumber(r))
	if err != nil {
		respondError(w, err)
		return
	}

	data, err := h.PDF.Generate(q)
	if err != nil {
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="Cotacao_%s.pdf"`, q.Number))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// quoteNumber normalizes the path parameter; stored numbers are uppercase.
func quoteNumber(r *http.Request) string {
	return strings.ToUpper(strings.TrimSpace(chi.URLParam(r, "number")))
}

func (h *Handlers) buildQuote(draft QuoteDraft) (quote.Quote, error) {
	cat, err := h.Catalog.Load()
	if err != nil {
		return quote.Quote{}, err
	}

	issue := draft.IssueDate
	if issue.IsZero() {
		issue = quote.DateOf(time.Now())
	}
	validity := draft.ValidityDays
	if validity <= 0 {
		validity = cat.ValidityDays
	}

	q := quote.Quote{
		IssueDate:   issue,
		Expiration:  issue.AddDays(validity),
		Salesperson: draft.Salesperson,
		Client:      draft.Client,
		Notes:       draft.Notes,
		Company: quote.CompanyInfo{
			Name:    cat.Company.Name,
			Address: cat.Company.Address,
			Slogan:  cat.Company.Slogan,
			Site:    cat.Company.Site,
			Email:   cat.Company.Email,
		},
	}
	for _, it := range draft.Items {
		q.Items = append(q.Items, quote.LineItem{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}
	q.Recalculate()
	return q, nil
}
