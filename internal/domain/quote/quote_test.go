package quote

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brasilup/salesflow/internal/apperrors"
)

func validQuote() Quote {
	q := Quote{
		Number:      "ORS01100",
		IssueDate:   NewDate(2026, time.January, 28),
		Expiration:  NewDate(2026, time.February, 27),
		Salesperson: "Elidy Izidio",
		Client: ClientRef{
			Name:       "EMPRESA TESTE LTDA",
			Address:    "Rua Teste, 123",
			City:       "Belo Horizonte",
			State:      "MG",
			PostalCode: "30000-000",
			TaxID:      "12.345.678/0001-90",
		},
		Items: []LineItem{
			{Description: "CAMISA OPERACIONAL G", Quantity: 10, UnitPrice: decimal.RequireFromString("67.90")},
			{Description: "CALCA OPERACIONAL 42", Quantity: 10, UnitPrice: decimal.RequireFromString("63.90")},
		},
	}
	q.Recalculate()
	return q
}

func TestRecalculate(t *testing.T) {
	q := validQuote()
	assert.True(t, q.Items[0].LineTotal.Equal(decimal.RequireFromString("679.00")))
	assert.True(t, q.Items[1].LineTotal.Equal(decimal.RequireFromString("639.00")))
	assert.True(t, q.Total.Equal(decimal.RequireFromString("1318.00")))
}

func TestRecalculateOverwritesStaleTotals(t *testing.T) {
	q := validQuote()
	q.Total = decimal.NewFromInt(1)
	q.Items[0].LineTotal = decimal.NewFromInt(5)
	q.Recalculate()
	assert.True(t, q.Items[0].LineTotal.Equal(decimal.RequireFromString("679.00")))
	assert.True(t, q.Total.Equal(decimal.RequireFromString("1318.00")))
}

func TestValidate(t *testing.T) {
	require.NoError(t, validQuote().Validate())

	q := validQuote()
	q.Number = ""
	assert.ErrorIs(t, q.Validate(), apperrors.ErrInvalidQuote)

	q = validQuote()
	q.Client.Name = ""
	assert.ErrorIs(t, q.Validate(), apperrors.ErrInvalidQuote)

	q = validQuote()
	q.Items = nil
	assert.ErrorIs(t, q.Validate(), apperrors.ErrInvalidQuote)

	q = validQuote()
	q.Items[0].Quantity = 0
	assert.ErrorIs(t, q.Validate(), apperrors.ErrInvalidQuote)

	q = validQuote()
	q.Items[0].UnitPrice = decimal.NewFromInt(-1)
	assert.ErrorIs(t, q.Validate(), apperrors.ErrInvalidQuote)

	q = validQuote()
	q.Items[0].Description = ""
	assert.ErrorIs(t, q.Validate(), apperrors.ErrInvalidQuote)
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2026, time.January, 28)

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"28/01/2026"`, string(raw))

	var back Date
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, d, back)
}

func TestDateAddDays(t *testing.T) {
	issue := NewDate(2026, time.January, 28)
	assert.Equal(t, "27/02/2026", issue.AddDays(30).String())
}
