// Package postgres backs the quote registry with PostgreSQL for installs that
// outgrow the JSON file store. Selected when DATABASE_URL is set.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"brasilup/salesflow/internal/apperrors"
	"brasilup/salesflow/internal/domain/quote"
)

type QuoteStore struct {
	pool *pgxpool.Pool
}

func Open(ctx context.Context, dsn string) (*QuoteStore, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	cfg.MaxConns = 10
	cfg.MinConns = 2
	cfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	s := &QuoteStore{pool: pool}
	if err := s.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

func (s *QuoteStore) Close() { s.pool.Close() }

func (s *QuoteStore) ensureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS quotes (
    number   text PRIMARY KEY,
    payload  jsonb NOT NULL,
    position bigserial
);
CREATE TABLE IF NOT EXISTS quote_sequences (
    period_key text PRIMARY KEY,
    last_value integer NOT NULL
);
`)
	return err
}

func (s *QuoteStore) ListQuotes(ctx context.Context) ([]quote.Quote, error) {
	rows, err := s.pool.Query(ctx, `SELECT payload FROM quotes ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	quotes := []quote.Quote{}
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var q quote.Quote
		if err := json.Unmarshal(raw, &q); err != nil {
			return nil, fmt.Errorf("decode stored quote: %w", err)
		}
		quotes = append(quotes, q)
	}
	return quotes, rows.Err()
}

func (s *QuoteStore) FindQuote(ctx context.Context, number string) (*quote.Quote, error) {
	var raw []byte
	err := s.pool.QueryRow(ctx, `SELECT payload FROM quotes WHERE number = $1`, number).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("quote %s: %w", number, apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	var q quote.Quote
	if err := json.Unmarshal(raw, &q); err != nil {
		return nil, fmt.Errorf("decode stored quote: %w", err)
	}
	return &q, nil
}

func (s *QuoteStore) SaveQuote(ctx context.Context, q quote.Quote) error {
	raw, err := json.Marshal(q)
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx, `
INSERT INTO quotes (number, payload) VALUES ($1, $2)
ON CONFLICT (number) DO UPDATE SET payload = EXCLUDED.payload`, q.Number, raw)
	return err
}

// NextSequence is a single atomic upsert, so concurrent callers cannot be
// handed the same value (unlike the file store).
func (s *QuoteStore) NextSequence(ctx context.Context, periodKey string) (int, error) {
	var seq int
	err := s.pool.QueryRow(ctx, `
INSERT INTO quote_sequences (period_key, last_value) VALUES ($1, 100)
ON CONFLICT (period_key) DO UPDATE SET last_value = quote_sequences.last_value + 1
RETURNING last_value`, periodKey).Scan(&seq)
	return seq, err
}
