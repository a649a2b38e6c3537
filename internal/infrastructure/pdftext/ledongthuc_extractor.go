// Package pdftext extrae el texto de un PDF página por página con
// github.com/ledongthuc/pdf. El documento se lee desde memoria: no se escribe
// ningún archivo temporal.
package pdftext

import (
	"bytes"
	"cmp"
	"context"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/ledongthuc/pdf"

	appreport "github.com/jhoicas/control-tarjeta/internal/application/report"
	"github.com/jhoicas/control-tarjeta/internal/domain"
)

// Verificar en tiempo de compilación que Extractor implementa PageTextExtractor.
var _ appreport.PageTextExtractor = (*Extractor)(nil)

const (
	// rowTolerance diferencia máxima de Y (en puntos) para considerar dos glifos en la misma fila.
	rowTolerance = 2.0
	// gapRatio separación horizontal, relativa al tamaño de fuente, que se lee como espacio.
	gapRatio = 0.25
)

// Extractor agrupa los glifos de cada página por coordenada Y y los ordena por
// X, de modo que una línea del resumen impreso queda en una sola línea de
// texto, sin importar cómo posiciona el texto el generador del PDF.
type Extractor struct{}

// NewExtractor construye el extractor.
func NewExtractor() *Extractor { return &Extractor{} }

// ExtractPages devuelve un string por página, con "\n" entre filas.
// Las páginas sin contenido devuelven "".
func (e *Extractor) ExtractPages(ctx context.Context, data []byte) (pages []string, err error) {
	// ledongthuc/pdf hace panic con algunos streams corruptos.
	defer func() {
		if r := recover(); r != nil {
			pages = nil
			err = fmt.Errorf("%w: %v", domain.ErrUnreadableDocument, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: abrir: %w", domain.ErrUnreadableDocument, err)
	}

	n := reader.NumPage()
	pages = make([]string, 0, n)
	for i := 1; i <= n; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		pages = append(pages, pageText(reader.Page(i)))
	}
	return pages, nil
}

func pageText(p pdf.Page) string {
	if p.V.IsNull() {
		return ""
	}
	var sb strings.Builder
	for _, r := range groupTextsIntoRows(p.Content().Text) {
		if line := r.String(); line != "" {
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// row glifos con la misma línea base.
type row struct {
	y     float64
	texts []pdf.Text
}

// groupTextsIntoRows asigna cada glifo a la primera fila cuya Y esté dentro de
// la tolerancia y devuelve las filas de arriba hacia abajo.
func groupTextsIntoRows(texts []pdf.Text) []row {
	var rows []row
	for _, t := range texts {
		if t.S == "" {
			continue
		}
		placed := false
		for i := range rows {
			if math.Abs(rows[i].y-t.Y) < rowTolerance {
				rows[i].texts = append(rows[i].texts, t)
				placed = true
				break
			}
		}
		if !placed {
			rows = append(rows, row{y: t.Y, texts: []pdf.Text{t}})
		}
	}
	// Y crece de abajo hacia arriba.
	slices.SortStableFunc(rows, func(a, b row) int { return cmp.Compare(b.y, a.y) })
	return rows
}

// String ordena los glifos por X (estable: sin anchos de fuente todos los
// glifos de un mismo string comparten X) y los une. Un hueco horizontal mayor
// que gapRatio*FontSize se escribe como un espacio.
func (r row) String() string {
	texts := slices.Clone(r.texts)
	slices.SortStableFunc(texts, func(a, b pdf.Text) int { return cmp.Compare(a.X, b.X) })

	var sb strings.Builder
	var prev *pdf.Text
	for i := range texts {
		t := &texts[i]
		if prev != nil {
			gap := t.X - (prev.X + prev.W)
			if gap > gapRatio*math.Max(t.FontSize, 1) && !strings.HasSuffix(sb.String(), " ") {
				sb.WriteString(" ")
			}
		}
		sb.WriteString(t.S)
		prev = t
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}
