package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"brasilup/salesflow/internal/domain/catalog"
)

const catalogFile = "catalogo.json"

const defaultValidityDays = 30

// CatalogStore reads and writes the product catalog file.
type CatalogStore struct {
	mu   sync.Mutex
	path string
}

func NewCatalogStore(dir string) *CatalogStore {
	return &CatalogStore{path: filepath.Join(dir, catalogFile)}
}

func (s *CatalogStore) Load() (catalog.Catalog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *CatalogStore) load() (catalog.Catalog, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return catalog.Catalog{Products: []catalog.Product{}, ValidityDays: defaultValidityDays}, nil
	}
	if err != nil {
		return catalog.Catalog{}, err
	}

	var c catalog.Catalog
	if err := json.Unmarshal(raw, &c); err != nil {
		return catalog.Catalog{}, fmt.Errorf("parse %s: %w", s.path, err)
	}
	if c.Products == nil {
		c.Products = []catalog.Product{}
	}
	if c.ValidityDays <= 0 {
		c.ValidityDays = defaultValidityDays
	}
	return c, nil
}

func (s *CatalogStore) Save(c catalog.Catalog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(c)
}

func (s *CatalogStore) write(c catalog.Catalog) error {
	raw, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o644)
}

func (s *CatalogStore) AddProduct(p catalog.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.load()
	if err != nil {
		return err
	}
	c.Products = append(c.Products, p)
	return s.write(c)
}
