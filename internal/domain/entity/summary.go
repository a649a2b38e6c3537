package entity

import (
	"github.com/shopspring/decimal"
)

// SummaryRow una fila del resumen: concepto fiscal y su importe agregado.
type SummaryRow struct {
	Concept string
	Amount  decimal.Decimal
}

// Summary resultado de la extracción. Las filas respetan siempre el orden del catálogo.
type Summary struct {
	Rows []SummaryRow
}

// Amount devuelve el importe del concepto indicado, o cero si no existe.
func (s *Summary) Amount(concept string) decimal.Decimal {
	if s == nil {
		return decimal.Zero
	}
	for _, r := range s.Rows {
		if r.Concept == concept {
			return r.Amount
		}
	}
	return decimal.Zero
}

// Concepts devuelve las etiquetas en orden.
func (s *Summary) Concepts() []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s.Rows))
	for _, r := range s.Rows {
		out = append(out, r.Concept)
	}
	return out
}
