package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brasilup/salesflow/internal/apperrors"
	"brasilup/salesflow/internal/domain/quote"
	"brasilup/salesflow/internal/infra/storage/jsonstore"
)

func newTestRegistry(t *testing.T, at time.Time) *Registry {
	t.Helper()
	r := New(jsonstore.NewQuoteStore(t.TempDir()), "ORS")
	r.now = func() time.Time { return at }
	return r
}

func testQuote(number string) quote.Quote {
	q := quote.Quote{
		Number:      number,
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
		Items: []quote.LineItem{
			{Description: "CAMISA OPERACIONAL G", Quantity: 10, UnitPrice: decimal.RequireFromString("67.90")},
			{Description: "CALCA OPERACIONAL 42", Quantity: 10, UnitPrice: decimal.RequireFromString("63.90")},
		},
		Company: quote.CompanyInfo{
			Name:    "BRASIL UP UNIFORMES PROFISSIONAIS LTDA",
			Address: "Av. DOIS 108 | BETIM MG",
			Slogan:  "UNIFORMES QUE MOVEM O BRASIL",
			Site:    "www.brasiluniformesprofissionais.com",
		},
	}
	q.Recalculate()
	return q
}

func TestNextNumberFirstOfJanuary(t *testing.T) {
	r := newTestRegistry(t, time.Date(2026, time.January, 5, 10, 0, 0, 0, time.UTC))

	n, err := r.NextNumber(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ORS01100", n)
}

func TestNextNumberStrictlyIncreasing(t *testing.T) {
	r := newTestRegistry(t, time.Date(2026, time.March, 5, 10, 0, 0, 0, time.UTC))
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		n, err := r.NextNumber(ctx)
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("ORS03%03d", 100+i), n)
	}
}

func TestPeriodBoundaryResetsSequence(t *testing.T) {
	store := jsonstore.NewQuoteStore(t.TempDir())
	r := New(store, "ORS")
	ctx := context.Background()

	r.now = func() time.Time { return time.Date(2026, time.January, 31, 23, 0, 0, 0, time.UTC) }
	n, err := r.NextNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ORS01100", n)
	n, err = r.NextNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ORS01101", n)

	r.now = func() time.Time { return time.Date(2026, time.February, 1, 0, 5, 0, 0, time.UTC) }
	n, err = r.NextNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ORS02100", n)

	// previous period's counter is untouched
	r.now = func() time.Time { return time.Date(2026, time.January, 31, 23, 59, 0, 0, time.UTC) }
	n, err = r.NextNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ORS01102", n)
}

func TestCustomPrefix(t *testing.T) {
	r := New(jsonstore.NewQuoteStore(t.TempDir()), "QTD")
	r.now = func() time.Time { return time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC) }

	n, err := r.NextNumber(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "QTD07100", n)
}

func TestSaveThenFindRoundTrips(t *testing.T) {
	r := newTestRegistry(t, time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC))
	ctx := context.Background()

	q := testQuote("ORS01100")
	require.NoError(t, r.Save(ctx, q))

	got, err := r.Find(ctx, "ORS01100")
	require.NoError(t, err)

	wantJSON, err := json.Marshal(q)
	require.NoError(t, err)
	gotJSON, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, string(wantJSON), string(gotJSON))
	assert.True(t, got.Total.Equal(decimal.RequireFromString("1318.00")))
}

func TestSaveExistingNumberReplacesWithoutConsumingSequence(t *testing.T) {
	r := newTestRegistry(t, time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC))
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, testQuote("ORS01100")))

	edited := testQuote("ORS01100")
	edited.Items = edited.Items[:1]
	require.NoError(t, r.Save(ctx, edited))

	quotes, err := r.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	assert.Len(t, quotes[0].Items, 1)
	assert.True(t, quotes[0].Total.Equal(decimal.RequireFromString("679.00")))

	// edits never touched the counter: the first issued number is still 100
	n, err := r.NextNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ORS01100", n)
}

func TestSaveRecomputesStaleTotals(t *testing.T) {
	r := newTestRegistry(t, time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC))
	ctx := context.Background()

	q := testQuote("ORS01100")
	q.Total = decimal.NewFromInt(1)
	q.Items[0].LineTotal = decimal.NewFromInt(5)
	require.NoError(t, r.Save(ctx, q))

	got, err := r.Find(ctx, "ORS01100")
	require.NoError(t, err)
	assert.True(t, got.Items[0].LineTotal.Equal(decimal.RequireFromString("679.00")))
	assert.True(t, got.Total.Equal(decimal.RequireFromString("1318.00")))
}

func TestSaveRejectsIncompleteQuote(t *testing.T) {
	r := newTestRegistry(t, time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC))
	ctx := context.Background()

	q := testQuote("ORS01100")
	q.Items = nil
	assert.ErrorIs(t, r.Save(ctx, q), apperrors.ErrInvalidQuote)

	q = testQuote("")
	assert.ErrorIs(t, r.Save(ctx, q), apperrors.ErrInvalidQuote)
}

func TestFindUnknownNumber(t *testing.T) {
	r := newTestRegistry(t, time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC))

	_, err := r.Find(context.Background(), "ORS09999")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestListAllKeepsInsertionOrder(t *testing.T) {
	r := newTestRegistry(t, time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC))
	ctx := context.Background()

	for _, n := range []string{"ORS01100", "ORS01101", "ORS01102"} {
		require.NoError(t, r.Save(ctx, testQuote(n)))
	}

	quotes, err := r.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, quotes, 3)
	for i, want := range []string{"ORS01100", "ORS01101", "ORS01102"} {
		assert.Equal(t, want, quotes[i].Number)
	}
}
