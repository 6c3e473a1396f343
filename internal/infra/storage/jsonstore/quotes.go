// Package jsonstore persists the application's collections as human-readable
// JSON files, the default backend for a single-operator install.
package jsonstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"brasilup/salesflow/internal/apperrors"
	"brasilup/salesflow/internal/domain/quote"
)

const quotesFile = "orcamentos.json"

// QuoteStore is a file-backed registry store. Access within one process is
// serialized by a mutex; there is no cross-process locking, so two processes
// can race NextSequence and issue the same number.
type QuoteStore struct {
	mu   sync.Mutex
	path string
}

func NewQuoteStore(dir string) *QuoteStore {
	return &QuoteStore{path: filepath.Join(dir, quotesFile)}
}

type quoteDocument struct {
	Quotes   []quote.Quote  `json:"orcamentos"`
	Sequence map[string]int `json:"sequencia"`
}

func emptyDocument() quoteDocument {
	return quoteDocument{Quotes: []quote.Quote{}, Sequence: map[string]int{}}
}

// load reads the store, recovering to an empty document when the file is
// missing or damaged. A damaged file is renamed aside so data is never
// silently destroyed.
func (s *QuoteStore) load() quoteDocument {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return emptyDocument()
	}
	if err != nil {
		log.Printf("jsonstore: read failed path=%s err=%v, starting empty", s.path, err)
		return emptyDocument()
	}

	var doc quoteDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		backup := s.path + ".corrupt"
		log.Printf("jsonstore: quote store damaged path=%s err=%v, keeping copy at %s", s.path, err, backup)
		if renameErr := os.Rename(s.path, backup); renameErr != nil {
			log.Printf("jsonstore: backup failed path=%s err=%v", s.path, renameErr)
		}
		return emptyDocument()
	}
	if doc.Quotes == nil {
		doc.Quotes = []quote.Quote{}
	}
	if doc.Sequence == nil {
		doc.Sequence = map[string]int{}
	}
	return doc
}

func (s *QuoteStore) write(doc quoteDocument) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o644)
}

func (s *QuoteStore) ListQuotes(ctx context.Context) ([]quote.Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load().Quotes, nil
}

func (s *QuoteStore) FindQuote(ctx context.Context, number string) (*quote.Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, q := range s.load().Quotes {
		if q.Number == number {
			return &q, nil
		}
	}
	return nil, fmt.Errorf("quote %s: %w", number, apperrors.ErrNotFound)
}

func (s *QuoteStore) SaveQuote(ctx context.Context, q quote.Quote) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.load()
	replaced := false
	for i := range doc.Quotes {
		if doc.Quotes[i].Number == q.Number {
			doc.Quotes[i] = q
			replaced = true
			break
		}
	}
	if !replaced {
		doc.Quotes = append(doc.Quotes, q)
	}
	return s.write(doc)
}

func (s *QuoteStore) NextSequence(ctx context.Context, periodKey string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.load()
	seq, ok := doc.Sequence[periodKey]
	if !ok {
		seq = 99
	}
	seq++
	doc.Sequence[periodKey] = seq
	if err := s.write(doc); err != nil {
		return 0, err
	}
	return seq, nil
}
