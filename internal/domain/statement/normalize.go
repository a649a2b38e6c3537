package statement

import (
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// minusGlyph reemplaza los guiones tipográficos y el signo menos Unicode por "-".
func minusGlyph(r rune) rune {
	switch r {
	case '\u2212', // signo menos
		'\u2010', '\u2011', '\u2012', '\u2013':
		return '-'
	}
	return r
}

// NormalizeText aplica NFKC (espacios duros y formas de ancho completo pasan a
// su forma ASCII) y unifica los signos menos antes de buscar anclas.
func NormalizeText(s string) string {
	t := transform.Chain(norm.NFKC, runes.Map(minusGlyph))
	out, _, err := transform.String(t, s)
	if err != nil {
		return strings.Map(minusGlyph, s)
	}
	return out
}
