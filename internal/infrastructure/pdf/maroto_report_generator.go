// Package pdf genera el informe "Resumen de importes" de una liquidación
// Cabal / Credicoop.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│                 TÍTULO DEL INFORME                          │
//	│  Generado: DD/MM/YYYY HH:MM                                  │
//	│                                                             │
//	│  Resumen de importes                                        │
//	│  ┌───────────────────────────────────────┬───────────────┐  │
//	│  │ Concepto                              │     Monto ($) │  │
//	│  ├───────────────────────────────────────┼───────────────┤  │
//	│  │ Base Neto Arancel (21%)               │      5.238,10 │  │
//	│  │ ... una fila por concepto, sombreado alternado          │  │
//	│  └───────────────────────────────────────┴───────────────┘  │
//	│                                                             │
//	│  Pie: crédito del informe                                   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appreport "github.com/jhoicas/control-tarjeta/internal/application/report"
	"github.com/jhoicas/control-tarjeta/internal/domain/entity"
	"github.com/jhoicas/control-tarjeta/pkg/money"
)

// Verificar en tiempo de compilación que MarotoReportGenerator implementa Renderer.
var _ appreport.Renderer = (*MarotoReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorHeaderBg = &props.Color{Red: 34, Green: 34, Blue: 34}    // #222
	colorHeaderFg = &props.Color{Red: 245, Green: 245, Blue: 245} // whitesmoke
	colorStripe   = &props.Color{Red: 247, Green: 247, Blue: 247} // #f7f7f7
	colorWhite    = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorGrid     = &props.Color{Red: 128, Green: 128, Blue: 128}
	colorGray     = &props.Color{Red: 100, Green: 100, Blue: 100}
)

const (
	conceptCols = 9
	amountCols  = 3
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa report.Renderer usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// Render genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) Render(_ context.Context, r entity.Report) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(20).WithRightMargin(20).
		WithTopMargin(20).WithBottomMargin(20).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle(r.Title, true).
		WithAuthor("AIE", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRows(r)...)
	m.AddRows(row.New(6))
	m.AddRows(sectionRow("Resumen de importes"))
	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(r.Summary)...)

	if r.Footer != "" {
		m.AddRows(row.New(12))
		m.AddRows(row.New(6).Add(col.New(12).Add(
			text.New(r.Footer, props.Text{Size: 10, Color: colorGray}),
		)))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// titleRows: título centrado + línea "Generado:".
func titleRows(r entity.Report) []core.Row {
	return []core.Row{
		row.New(12).Add(col.New(12).Add(
			text.New(r.Title, props.Text{
				Style: fontstyle.Bold, Size: 18, Align: align.Center, Top: 2,
			}),
		)),
		row.New(7).Add(col.New(12).Add(
			text.New("Generado: "+r.GeneratedAtText(), props.Text{Size: 10, Top: 2}),
		)),
	}
}

func sectionRow(label string) core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New(label, props.Text{Style: fontstyle.Bold, Size: 14, Top: 2}),
	))
}

func cellStyle(bg *props.Color) *props.Cell {
	return &props.Cell{
		BackgroundColor: bg,
		BorderType:      border.Full,
		BorderColor:     colorGrid,
		BorderThickness: 0.1,
	}
}

// tableHeaderRow: cabecera oscura con texto claro en negrita.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: a,
			Color: colorHeaderFg, Top: 2.5, Left: 2, Right: 2,
		})).WithStyle(cellStyle(colorHeaderBg))
	}
	return row.New(9).Add(
		h("Concepto", conceptCols, align.Left),
		h("Monto ($)", amountCols, align.Right),
	)
}

// tableRows: una fila por concepto en orden de catálogo, sombreado alternado.
func tableRows(s *entity.Summary) []core.Row {
	if s == nil {
		return nil
	}
	result := make([]core.Row, 0, len(s.Rows))
	for i, r := range s.Rows {
		bg := colorStripe
		if i%2 == 1 {
			bg = colorWhite
		}
		result = append(result, row.New(7).Add(
			col.New(conceptCols).Add(text.New(r.Concept, props.Text{
				Size: 10, Align: align.Left, Top: 1.5, Left: 2,
			})).WithStyle(cellStyle(bg)),
			col.New(amountCols).Add(text.New(money.Format(r.Amount), props.Text{
				Size: 10, Align: align.Right, Top: 1.5, Right: 2,
			})).WithStyle(cellStyle(bg)),
		))
	}
	return result
}
