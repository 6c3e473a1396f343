package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatBRL formats an amount as Brazilian currency: "R$ 1.318,00".
// Dot as thousands separator, comma as decimal separator, always two decimals.
func FormatBRL(amount decimal.Decimal) string {
	neg := amount.IsNegative()
	if neg {
		amount = amount.Neg()
	}

	fixed := amount.StringFixed(2)
	intPart := fixed[:len(fixed)-3]
	fracPart := fixed[len(fixed)-2:]

	var b strings.Builder
	b.Grow(len(fixed) + len(intPart)/3 + 4)
	if neg {
		b.WriteByte('-')
	}
	b.WriteString("R$ ")

	rem := len(intPart) % 3
	if rem == 0 {
		rem = 3
	}
	b.WriteString(intPart[:rem])
	for i := rem; i < len(intPart); i += 3 {
		b.WriteByte('.')
		b.WriteString(intPart[i : i+3])
	}
	b.WriteByte(',')
	b.WriteString(fracPart)
	return b.String()
}
