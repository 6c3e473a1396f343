package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatBRL(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1318.00", "R$ 1.318,00"},
		{"0", "R$ 0,00"},
		{"1000000.5", "R$ 1.000.000,50"},
		{"67.90", "R$ 67,90"},
		{"999", "R$ 999,00"},
		{"1000", "R$ 1.000,00"},
		{"123456789.99", "R$ 123.456.789,99"},
		{"-1318", "-R$ 1.318,00"},
		{"0.05", "R$ 0,05"},
	}
	for _, tc := range cases {
		got := FormatBRL(decimal.RequireFromString(tc.in))
		assert.Equal(t, tc.want, got, "input %s", tc.in)
	}
}
