package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"brasilup/salesflow/internal/domain/client"
)

const clientsFile = "clientes.json"

const registeredAtLayout = "2006-01-02 15:04"

// ClientStore reads and writes the client book file. Records are validated
// when the book is loaded, so a malformed entry surfaces immediately instead
// of at quote time.
type ClientStore struct {
	mu   sync.Mutex
	path string
}

func NewClientStore(dir string) *ClientStore {
	return &ClientStore{path: filepath.Join(dir, clientsFile)}
}

func (s *ClientStore) Load() (client.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *ClientStore) load() (client.Book, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return client.Book{Companies: []client.Company{}, Individuals: []client.Individual{}}, nil
	}
	if err != nil {
		return client.Book{}, err
	}

	var b client.Book
	if err := json.Unmarshal(raw, &b); err != nil {
		return client.Book{}, fmt.Errorf("parse %s: %w", s.path, err)
	}
	if b.Companies == nil {
		b.Companies = []client.Company{}
	}
	if b.Individuals == nil {
		b.Individuals = []client.Individual{}
	}
	if err := b.Validate(); err != nil {
		return client.Book{}, fmt.Errorf("%s: %w", s.path, err)
	}
	return b, nil
}

func (s *ClientStore) write(b client.Book) error {
	raw, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o644)
}

func (s *ClientStore) AddCompany(c client.Company) (client.Company, error) {
	if err := c.Validate(); err != nil {
		return client.Company{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := s.load()
	if err != nil {
		return client.Company{}, err
	}
	c.ID = len(b.Companies) + 1
	c.Kind = client.KindCompany
	if c.RegisteredAt == "" {
		c.RegisteredAt = time.Now().Format(registeredAtLayout)
	}
	b.Companies = append(b.Companies, c)
	if err := s.write(b); err != nil {
		return client.Company{}, err
	}
	return c, nil
}

func (s *ClientStore) AddIndividual(p client.Individual) (client.Individual, error) {
	if err := p.Validate(); err != nil {
		return client.Individual{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := s.load()
	if err != nil {
		return client.Individual{}, err
	}
	p.ID = len(b.Individuals) + 1
	p.Kind = client.KindIndividual
	if p.RegisteredAt == "" {
		p.RegisteredAt = time.Now().Format(registeredAtLayout)
	}
	b.Individuals = append(b.Individuals, p)
	if err := s.write(b); err != nil {
		return client.Individual{}, err
	}
	return p, nil
}
