package gofpdf

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brasilup/salesflow/internal/apperrors"
	"brasilup/salesflow/internal/domain/quote"
)

func renderableQuote(itemCount int) quote.Quote {
	q := quote.Quote{
		Number:      "ORS01100",
		IssueDate:   quote.NewDate(2026, time.January, 28),
		Expiration:  quote.NewDate(2026, time.February, 27),
		Salesperson: "Elidy Izidio",
		Client: quote.ClientRef{
			Name:       "EMPRESA TESTE LTDA",
			Address:    "Rua Teste, 123",
			City:       "Belo Horizonte",
			State:      "MG",
			PostalCode: "30000-000",
			TaxID:      "12.345.678/0001-90",
		},
		Company: quote.CompanyInfo{
			Name:    "BRASIL UP UNIFORMES PROFISSIONAIS LTDA",
			Address: "Av. DOIS 108 | BETIM MG",
			Slogan:  "UNIFORMES QUE MOVEM O BRASIL",
			Site:    "www.brasiluniformesprofissionais.com",
		},
	}
	for i := 0; i < itemCount; i++ {
		q.Items = append(q.Items, quote.LineItem{
			Description: fmt.Sprintf("CAMISA OPERACIONAL G %02d", i+1),
			Quantity:    10,
			UnitPrice:   decimal.RequireFromString("67.90"),
		})
	}
	q.Recalculate()
	return q
}

// pageCount counts page objects in the produced document.
func pageCount(data []byte) int {
	return bytes.Count(data, []byte("/Type /Page")) - bytes.Count(data, []byte("/Type /Pages"))
}

func TestGenerateSinglePage(t *testing.T) {
	g := New("")

	data, err := g.Generate(renderableQuote(2))
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	assert.Equal(t, 1, pageCount(data))
}

func TestGenerateIsDeterministic(t *testing.T) {
	g := New("")
	q := renderableQuote(3)

	first, err := g.Generate(q)
	require.NoError(t, err)
	second, err := g.Generate(q)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(first, second), "identical input must produce byte-identical output")
}

func TestGeneratePaginatesLongItemLists(t *testing.T) {
	g := New("")

	data, err := g.Generate(renderableQuote(55))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, pageCount(data), 2, "55 items must not fit on one page")
}

func TestGenerateMissingLogoFallsBackToText(t *testing.T) {
	g := New("does/not/exist/logo.png")

	data, err := g.Generate(renderableQuote(2))
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestGenerateRejectsInvalidQuote(t *testing.T) {
	g := New("")

	q := renderableQuote(2)
	q.Client.Name = ""
	_, err := g.Generate(q)
	assert.ErrorIs(t, err, apperrors.ErrInvalidQuote)

	q = renderableQuote(0)
	_, err = g.Generate(q)
	assert.ErrorIs(t, err, apperrors.ErrInvalidQuote)
}

func TestGenerateNotesBlock(t *testing.T) {
	g := New("")

	plain := renderableQuote(2)
	withNotes := renderableQuote(2)
	withNotes.Notes = "Frete por conta do cliente. Prazo de entrega: 15 dias uteis."

	a, err := g.Generate(plain)
	require.NoError(t, err)
	b, err := g.Generate(withNotes)
	require.NoError(t, err)
	assert.False(t, bytes.Equal(a, b), "notes block must change the document")
}

func TestGenerateDoesNotMutateInput(t *testing.T) {
	g := New("")
	q := renderableQuote(2)

	before, err := json.Marshal(q)
	require.NoError(t, err)
	_, err = g.Generate(q)
	require.NoError(t, err)
	after, err := json.Marshal(q)
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}
