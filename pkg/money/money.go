// Package money: conversión entre literales monetarios con formato
// latinoamericano ("1.234,56": miles con punto, decimales con coma) y
// decimal.Decimal. Format es la única función de presentación de importes;
// la usan la vista previa JSON y todos los informes.
package money

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// LiteralPattern literal con miles agrupados y exactamente dos decimales.
const LiteralPattern = `\d{1,3}(?:\.\d{3})*,\d{2}`

var literalRe = regexp.MustCompile(LiteralPattern)

// FindLiterals devuelve las posiciones [inicio, fin) de los literales #.###,##
// de s que son números completos: no siguen a un dígito (ni a un "." o ","
// pegado a un dígito) y no los sigue un dígito. En "1234,56" no hay literal
// (no se toma "234,56"); en "....1.050,00" sí.
func FindLiterals(s string) [][]int {
	var out [][]int
	for _, loc := range literalRe.FindAllStringIndex(s, -1) {
		if i := loc[0]; i > 0 {
			prev := s[i-1]
			if isDigit(prev) || ((prev == '.' || prev == ',') && i > 1 && isDigit(s[i-2])) {
				continue
			}
		}
		if loc[1] < len(s) && isDigit(s[loc[1]]) {
			continue
		}
		out = append(out, loc)
	}
	return out
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// Parse convierte un literal "1.234,56" en decimal quitando los puntos de miles
// y reemplazando la coma decimal. No exige agrupación estricta; para eso está FindLiterals.
func Parse(s string) (decimal.Decimal, error) {
	clean := strings.TrimSpace(s)
	if clean == "" {
		return decimal.Zero, fmt.Errorf("money: literal vacío")
	}
	clean = strings.ReplaceAll(clean, ".", "")
	clean = strings.Replace(clean, ",", ".", 1)
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, fmt.Errorf("money: literal inválido %q: %w", s, err)
	}
	return d, nil
}

// Round redondea a dos decimales (half-up, alejándose del cero).
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Format devuelve el importe con separador de miles "." y decimales ",".
// Ej: 1234.5 → "1.234,50", -0.5 → "-0,50".
func Format(d decimal.Decimal) string {
	sign := ""
	if d.Round(2).IsNegative() {
		sign = "-"
	}
	fixed := d.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")
	return sign + groupThousands(intPart) + "," + frac
}

// groupThousands inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
