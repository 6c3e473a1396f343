// Package catalog holds the product catalog and company profile shapes read
// from the catalog store.
package catalog

import "github.com/shopspring/decimal"

// Product is one catalog entry. Names are stored uppercase, matching the
// printed document.
type Product struct {
	Category string          `json:"categoria"`
	Name     string          `json:"nome"`
	Price    decimal.Decimal `json:"preco"`
}

// Company is the issuing company profile kept alongside the catalog.
type Company struct {
	Name    string `json:"nome"`
	Address string `json:"endereco"`
	Slogan  string `json:"slogan"`
	Site    string `json:"site"`
	Email   string `json:"email,omitempty"`
}

// Catalog is the full catalog store shape.
type Catalog struct {
	Products     []Product `json:"produtos"`
	Salespeople  []string  `json:"vendedores"`
	ValidityDays int       `json:"validade_dias"`
	Company      Company   `json:"empresa"`
}
