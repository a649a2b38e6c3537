package statement

import (
	"cmp"
	"regexp"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/control-tarjeta/internal/domain/entity"
	"github.com/jhoicas/control-tarjeta/pkg/money"
)

// Extraction resultado del escaneo: el resumen y la cantidad de importes
// encontrados por ancla (para logs y diagnóstico).
type Extraction struct {
	Summary *entity.Summary
	Matches map[string]int
	Pages   int
}

type compiledAnchor struct {
	Anchor
	phrase *regexp.Regexp
}

// occurrence aparición de una frase ancla en una línea.
type occurrence struct {
	anchor     int
	start, end int
}

// Scanner recorre el texto de las páginas con el catálogo de anclas.
// Es inmutable después de construido y puede compartirse entre requests.
type Scanner struct {
	anchors  []compiledAnchor
	concepts []Concept
}

// NewScanner compila el catálogo por defecto.
func NewScanner() *Scanner {
	return NewScannerWithCatalog(Anchors, Concepts)
}

// NewScannerWithCatalog compila un catálogo arbitrario. Panics si una frase no compila.
func NewScannerWithCatalog(anchors []Anchor, concepts []Concept) *Scanner {
	s := &Scanner{concepts: concepts}
	for _, a := range anchors {
		s.anchors = append(s.anchors, compiledAnchor{Anchor: a, phrase: a.PhrasePattern()})
	}
	return s
}

// Scan suma los importes de cada ancla en todas las páginas y arma el resumen
// en el orden del catálogo. Un ancla sin coincidencias aporta cero.
func (s *Scanner) Scan(pages []string) *Extraction {
	totals := make(map[Bucket]decimal.Decimal)
	matches := make(map[string]int, len(s.anchors))
	for _, a := range s.anchors {
		matches[a.Name] = 0
	}

	for _, page := range pages {
		text := NormalizeText(page)
		for _, line := range strings.Split(text, "\n") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			for _, f := range s.amountsIn(line) {
				a := s.anchors[f.anchor]
				totals[a.Bucket] = totals[a.Bucket].Add(f.amount)
				matches[a.Name]++
			}
		}
	}

	return &Extraction{
		Summary: s.summarize(totals),
		Matches: matches,
		Pages:   len(pages),
	}
}

type found struct {
	anchor int
	amount decimal.Decimal
}

// amountsIn ubica todas las frases ancla de la línea y busca el importe de
// cada una sólo en su tramo: desde el fin de la frase hasta la próxima frase
// (o el fin de la línea). Cada aparición aporta a lo sumo un importe.
func (s *Scanner) amountsIn(line string) []found {
	var occ []occurrence
	for i, a := range s.anchors {
		for _, loc := range a.phrase.FindAllStringIndex(line, -1) {
			occ = append(occ, occurrence{anchor: i, start: loc[0], end: loc[1]})
		}
	}
	slices.SortStableFunc(occ, func(a, b occurrence) int { return cmp.Compare(a.start, b.start) })

	var out []found
	for k, o := range occ {
		stop := len(line)
		for _, next := range occ[k+1:] {
			if next.start >= o.end {
				stop = next.start
				break
			}
		}
		if amt, ok := s.anchors[o.anchor].pick(line[o.end:stop]); ok {
			out = append(out, found{anchor: o.anchor, amount: amt})
		}
	}
	return out
}

// pick aplica las reglas del ancla en orden; gana la primera que da un importe.
func (a compiledAnchor) pick(tail string) (decimal.Decimal, bool) {
	for _, adj := range a.Rules {
		lit, ok := adj.Pick(tail)
		if !ok {
			continue
		}
		d, err := money.Parse(lit)
		if err != nil {
			continue
		}
		return d, true
	}
	return decimal.Zero, false
}

func (s *Scanner) summarize(totals map[Bucket]decimal.Decimal) *entity.Summary {
	sum := &entity.Summary{Rows: make([]entity.SummaryRow, 0, len(s.concepts))}
	for _, c := range s.concepts {
		sum.Rows = append(sum.Rows, entity.SummaryRow{
			Concept: c.Label,
			Amount:  c.amount(totals[c.Bucket]),
		})
	}
	return sum
}

// amount redondea el total; para las bases divide por la alícuota salvo que el IVA sea cero.
func (c Concept) amount(total decimal.Decimal) decimal.Decimal {
	if c.Rate.IsZero() {
		return money.Round(total)
	}
	if total.IsZero() {
		return decimal.Zero
	}
	return money.Round(total.Div(c.Rate))
}
