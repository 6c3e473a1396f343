// Package registry owns the persisted quote collection and the per-period
// sequence counters behind document numbering.
package registry

import (
	"context"
	"fmt"
	"time"

	"brasilup/salesflow/internal/domain/quote"
)

// Store is the persistence port for quotes and sequence counters.
type Store interface {
	ListQuotes(ctx context.Context) ([]quote.Quote, error)
	FindQuote(ctx context.Context, number string) (*quote.Quote, error)
	// SaveQuote replaces the stored quote with the same number, or appends
	// when the number is new.
	SaveQuote(ctx context.Context, q quote.Quote) error
	// NextSequence increments and persists the counter for periodKey and
	// returns the new value. The first value for a fresh period is 100.
	NextSequence(ctx context.Context, periodKey string) (int, error)
}

const DefaultPrefix = "ORS"

type Registry struct {
	store  Store
	prefix string
	now    func() time.Time
}

func New(store Store, prefix string) *Registry {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Registry{store: store, prefix: prefix, now: time.Now}
}

// NextNumber issues the next document number for the current period, e.g.
// ORS01100 for the first quote of January. The counter is persisted before
// returning, so an abandoned quote leaves a gap rather than a reused number.
func (r *Registry) NextNumber(ctx context.Context) (string, error) {
	period := r.now().Format("01")
	seq, err := r.store.NextSequence(ctx, period)
	if err != nil {
		return "", fmt.Errorf("next sequence for period %s: %w", period, err)
	}
	return fmt.Sprintf("%s%s%03d", r.prefix, period, seq), nil
}

// Save persists the quote, replacing any stored quote with the same number.
// Totals are recomputed before writing; stale totals are never stored.
// Editing never consumes a new sequence number.
func (r *Registry) Save(ctx context.Context, q quote.Quote) error {
	q.Recalculate()
	if err := q.Validate(); err != nil {
		return err
	}
	return r.store.SaveQuote(ctx, q)
}

// Find looks a quote up by its exact number.
func (r *Registry) Find(ctx context.Context, number string) (quote.Quote, error) {
	q, err := r.store.FindQuote(ctx, number)
	if err != nil {
		return quote.Quote{}, err
	}
	return *q, nil
}

// ListAll returns quotes in insertion order; callers wanting most-recent-first
// must reverse explicitly.
func (r *Registry) ListAll(ctx context.Context) ([]quote.Quote, error) {
	return r.store.ListQuotes(ctx)
}
