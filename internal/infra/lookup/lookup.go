// Package lookup wraps the public Brazilian registries used to prefill client
// forms: BrasilAPI for CNPJ and ViaCEP for postal codes.
package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"brasilup/salesflow/internal/apperrors"
)

const (
	DefaultBrasilAPIURL = "https://brasilapi.com.br"
	DefaultViaCEPURL    = "https://viacep.com.br"
)

type Client struct {
	http         *http.Client
	brasilAPIURL string
	viaCEPURL    string
}

// New builds a lookup client. Empty base URLs fall back to the public
// services; tests point them at local servers.
func New(brasilAPIURL, viaCEPURL string) *Client {
	if brasilAPIURL == "" {
		brasilAPIURL = DefaultBrasilAPIURL
	}
	if viaCEPURL == "" {
		viaCEPURL = DefaultViaCEPURL
	}
	return &Client{
		http:         &http.Client{Timeout: 10 * time.Second},
		brasilAPIURL: strings.TrimRight(brasilAPIURL, "/"),
		viaCEPURL:    strings.TrimRight(viaCEPURL, "/"),
	}
}

// CompanyRecord is the slice of the federal registry payload the form needs.
type CompanyRecord struct {
	CNPJ       string `json:"cnpj"`
	LegalName  string `json:"razao_social"`
	TradeName  string `json:"nome_fantasia"`
	Email      string `json:"email"`
	Phone      string `json:"ddd_telefone_1"`
	StreetType string `json:"descricao_tipo_de_logradouro"`
	Street     string `json:"logradouro"`
	Number     string `json:"numero"`
	Complement string `json:"complemento"`
	District   string `json:"bairro"`
	City       string `json:"municipio"`
	State      string `json:"uf"`
	PostalCode string `json:"cep"`
}

// StreetLine joins the registry's split street type and name.
func (r CompanyRecord) StreetLine() string {
	return strings.TrimSpace(r.StreetType + " " + r.Street)
}

// AddressRecord is a ViaCEP hit.
type AddressRecord struct {
	Street     string `json:"logradouro"`
	District   string `json:"bairro"`
	City       string `json:"localidade"`
	State      string `json:"uf"`
	PostalCode string `json:"cep"`
}

// Digits strips everything but 0-9 from s.
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatCNPJ pretty-prints a 14-digit CNPJ as 00.000.000/0000-00. Anything
// else is returned unchanged.
func FormatCNPJ(cnpj string) string {
	d := Digits(cnpj)
	if len(d) != 14 {
		return cnpj
	}
	return fmt.Sprintf("%s.%s.%s/%s-%s", d[:2], d[2:5], d[5:8], d[8:12], d[12:])
}

func (c *Client) CompanyByCNPJ(ctx context.Context, cnpj string) (*CompanyRecord, error) {
	d := Digits(cnpj)
	if len(d) != 14 {
		return nil, fmt.Errorf("%w: cnpj must have 14 digits, got %d", apperrors.ErrValidation, len(d))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.brasilAPIURL+"/api/cnpj/v1/"+d, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("cnpj %s: %w", FormatCNPJ(d), apperrors.ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("brasilapi status %d", resp.StatusCode)
	}

	var rec CompanyRecord
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		return nil, err
	}
	rec.CNPJ = FormatCNPJ(d)
	return &rec, nil
}

func (c *Client) AddressByCEP(ctx context.Context, cep string) (*AddressRecord, error) {
	d := Digits(cep)
	if len(d) != 8 {
		return nil, fmt.Errorf("%w: cep must have 8 digits, got %d", apperrors.ErrValidation, len(d))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.viaCEPURL+"/ws/"+d+"/json/", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("viacep status %d", resp.StatusCode)
	}

	// ViaCEP signals a miss with 200 and {"erro": true}
	var payload struct {
		AddressRecord
		Erro json.RawMessage `json:"erro"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}
	if len(payload.Erro) > 0 {
		return nil, fmt.Errorf("cep %s: %w", d, apperrors.ErrNotFound)
	}
	rec := payload.AddressRecord
	return &rec, nil
}
