package quote

import (
	"fmt"

	"github.com/shopspring/decimal"

	"brasilup/salesflow/internal/apperrors"
)

// LineItem is one priced entry in a quote. LineTotal is always derived from
// Quantity and UnitPrice; Recalculate overwrites whatever a caller set.
type LineItem struct {
	Description string          `json:"descricao"`
	Quantity    int             `json:"quantidade"`
	UnitPrice   decimal.Decimal `json:"preco_unitario"`
	LineTotal   decimal.Decimal `json:"valor_total"`
}

// ClientRef is a snapshot of the client taken when the quote is created.
// Later edits to the client book do not touch existing quotes.
type ClientRef struct {
	Name       string `json:"nome"`
	Contact    string `json:"contato,omitempty"`
	Address    string `json:"endereco"`
	City       string `json:"cidade"`
	State      string `json:"estado"`
	PostalCode string `json:"cep"`
	TaxID      string `json:"cnpj"`
}

// CompanyInfo is the issuing company profile snapshotted from the catalog.
type CompanyInfo struct {
	Name    string `json:"nome"`
	Address string `json:"endereco"`
	Slogan  string `json:"slogan"`
	Site    string `json:"site"`
	Email   string `json:"email,omitempty"`
}

type Quote struct {
	Number      string          `json:"numero"`
	IssueDate   Date            `json:"data"`
	Expiration  Date            `json:"expiracao"`
	Salesperson string          `json:"vendedor"`
	Client      ClientRef       `json:"cliente"`
	Items       []LineItem      `json:"itens"`
	Total       decimal.Decimal `json:"total"`
	Company     CompanyInfo     `json:"empresa"`
	Notes       string          `json:"observacoes,omitempty"`
}

// Recalculate rederives every line total and the quote total. Callers must run
// it after any item change; stored totals are never trusted.
func (q *Quote) Recalculate() {
	total := decimal.Zero
	for i := range q.Items {
		q.Items[i].LineTotal = q.Items[i].UnitPrice.Mul(decimal.NewFromInt(int64(q.Items[i].Quantity)))
		total = total.Add(q.Items[i].LineTotal)
	}
	q.Total = total
}

// Validate checks that the quote is complete enough to persist or render.
func (q Quote) Validate() error {
	if q.Number == "" {
		return fmt.Errorf("%w: missing number", apperrors.ErrInvalidQuote)
	}
	if q.Client.Name == "" {
		return fmt.Errorf("%w: missing client name", apperrors.ErrInvalidQuote)
	}
	if len(q.Items) == 0 {
		return fmt.Errorf("%w: no items", apperrors.ErrInvalidQuote)
	}
	for i, it := range q.Items {
		if it.Description == "" {
			return fmt.Errorf("%w: item %d has no description", apperrors.ErrInvalidQuote, i)
		}
		if it.Quantity <= 0 {
			return fmt.Errorf("%w: item %d quantity must be positive", apperrors.ErrInvalidQuote, i)
		}
		if it.UnitPrice.IsNegative() {
			return fmt.Errorf("%w: item %d unit price is negative", apperrors.ErrInvalidQuote, i)
		}
	}
	return nil
}
