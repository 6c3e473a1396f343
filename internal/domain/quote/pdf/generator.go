package pdf

import "brasilup/salesflow/internal/domain/quote"

type Generator interface {
	Generate(q quote.Quote) ([]byte, error)
}
