// Package client models the two supported client variants: companies ("PJ")
// and individuals ("PF"), sharing a common address shape.
package client

import (
	"fmt"
	"strings"

	"brasilup/salesflow/internal/apperrors"
)

const (
	KindCompany    = "PJ"
	KindIndividual = "PF"
)

// Address is the shared address shape for both client variants.
type Address struct {
	Street     string `json:"logradouro"`
	Number     string `json:"numero"`
	Complement string `json:"complemento,omitempty"`
	District   string `json:"bairro"`
	City       string `json:"cidade"`
	State      string `json:"uf"`
	PostalCode string `json:"cep"`
}

// Line renders the street line the way quotes display it ("Rua X, 123").
func (a Address) Line() string {
	return strings.Trim(a.Street+", "+a.Number, ", ")
}

type Contact struct {
	Name  string `json:"nome"`
	Role  string `json:"cargo,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"telefone,omitempty"`
}

// Company is a legal-entity client.
type Company struct {
	ID                int       `json:"id"`
	Kind              string    `json:"tipo"`
	LegalName         string    `json:"razao_social"`
	TradeName         string    `json:"nome_fantasia,omitempty"`
	CNPJ              string    `json:"cnpj"`
	StateRegistration string    `json:"ie,omitempty"`
	Email             string    `json:"email,omitempty"`
	Phone             string    `json:"telefone,omitempty"`
	Address           Address   `json:"endereco"`
	Contacts          []Contact `json:"contatos,omitempty"`
	RegisteredAt      string    `json:"data_cadastro,omitempty"`
}

func (c Company) Validate() error {
	if strings.TrimSpace(c.LegalName) == "" {
		return fmt.Errorf("%w: company requires razao_social", apperrors.ErrValidation)
	}
	return nil
}

// Individual is a natural-person client.
type Individual struct {
	ID           int     `json:"id"`
	Kind         string  `json:"tipo"`
	Name         string  `json:"nome"`
	CPF          string  `json:"cpf,omitempty"`
	RG           string  `json:"rg,omitempty"`
	Email        string  `json:"email,omitempty"`
	Phone        string  `json:"telefone"`
	WhatsApp     string  `json:"whatsapp,omitempty"`
	Address      Address `json:"endereco"`
	RegisteredAt string  `json:"data_cadastro,omitempty"`
}

func (p Individual) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: individual requires nome", apperrors.ErrValidation)
	}
	if strings.TrimSpace(p.Phone) == "" {
		return fmt.Errorf("%w: individual requires telefone", apperrors.ErrValidation)
	}
	return nil
}

// Book is the client store shape.
type Book struct {
	Companies   []Company    `json:"empresas"`
	Individuals []Individual `json:"pessoas"`
}

// Validate checks every record; run when the book is loaded.
func (b Book) Validate() error {
	for i, c := range b.Companies {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("empresas[%d]: %w", i, err)
		}
	}
	for i, p := range b.Individuals {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("pessoas[%d]: %w", i, err)
		}
	}
	return nil
}
