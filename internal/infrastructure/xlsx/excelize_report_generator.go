// Package xlsx exporta el resumen de importes como planilla Excel.
package xlsx

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	appreport "github.com/jhoicas/control-tarjeta/internal/application/report"
	"github.com/jhoicas/control-tarjeta/internal/domain/entity"
	"github.com/jhoicas/control-tarjeta/pkg/money"
)

var _ appreport.Renderer = (*ExcelizeReportGenerator)(nil)

// SheetName hoja única del libro.
const SheetName = "Resumen"

// Fila donde empieza la tabla (1-based); arriba van título y fecha.
const tableStartRow = 4

// ExcelizeReportGenerator implementa report.Renderer con excelize.
// Los importes se escriben con money.Format para coincidir con el PDF.
type ExcelizeReportGenerator struct{}

// NewExcelizeReportGenerator construye el generador.
func NewExcelizeReportGenerator() *ExcelizeReportGenerator { return &ExcelizeReportGenerator{} }

// Render genera el libro y devuelve sus bytes.
func (g *ExcelizeReportGenerator) Render(_ context.Context, r entity.Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}

	styles, err := newStyles(f)
	if err != nil {
		return nil, err
	}

	cells := []struct {
		cell  string
		value any
		style int
	}{
		{"A1", r.Title, styles.title},
		{"A2", "Generado: " + r.GeneratedAtText(), 0},
		{"A4", "Concepto", styles.header},
		{"B4", "Monto ($)", styles.header},
	}
	for _, c := range cells {
		if err := f.SetCellValue(SheetName, c.cell, c.value); err != nil {
			return nil, fmt.Errorf("xlsx: escribir %s: %w", c.cell, err)
		}
		if c.style != 0 {
			if err := f.SetCellStyle(SheetName, c.cell, c.cell, c.style); err != nil {
				return nil, fmt.Errorf("xlsx: estilo %s: %w", c.cell, err)
			}
		}
	}

	if r.Summary != nil {
		for i, row := range r.Summary.Rows {
			n := tableStartRow + 1 + i
			concept, _ := excelize.CoordinatesToCellName(1, n)
			amount, _ := excelize.CoordinatesToCellName(2, n)

			textStyle, amountStyle := styles.stripeText, styles.stripeAmount
			if i%2 == 1 {
				textStyle, amountStyle = styles.plainText, styles.plainAmount
			}

			if err := f.SetCellValue(SheetName, concept, row.Concept); err != nil {
				return nil, fmt.Errorf("xlsx: escribir %s: %w", concept, err)
			}
			if err := f.SetCellValue(SheetName, amount, money.Format(row.Amount)); err != nil {
				return nil, fmt.Errorf("xlsx: escribir %s: %w", amount, err)
			}
			if err := f.SetCellStyle(SheetName, concept, concept, textStyle); err != nil {
				return nil, fmt.Errorf("xlsx: estilo %s: %w", concept, err)
			}
			if err := f.SetCellStyle(SheetName, amount, amount, amountStyle); err != nil {
				return nil, fmt.Errorf("xlsx: estilo %s: %w", amount, err)
			}
		}
	}

	if err := f.SetColWidth(SheetName, "A", "A", 52); err != nil {
		return nil, fmt.Errorf("xlsx: ancho de columna: %w", err)
	}
	if err := f.SetColWidth(SheetName, "B", "B", 20); err != nil {
		return nil, fmt.Errorf("xlsx: ancho de columna: %w", err)
	}
	if r.Footer != "" {
		footerRow := tableStartRow + 2
		if r.Summary != nil {
			footerRow += len(r.Summary.Rows)
		}
		cell, _ := excelize.CoordinatesToCellName(1, footerRow)
		if err := f.SetCellValue(SheetName, cell, r.Footer); err != nil {
			return nil, fmt.Errorf("xlsx: escribir pie: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: serializar: %w", err)
	}
	return buf.Bytes(), nil
}

type styleSet struct {
	title        int
	header       int
	stripeText   int
	stripeAmount int
	plainText    int
	plainAmount  int
}

func newStyles(f *excelize.File) (styleSet, error) {
	grid := []excelize.Border{
		{Type: "left", Color: "808080", Style: 1},
		{Type: "right", Color: "808080", Style: 1},
		{Type: "top", Color: "808080", Style: 1},
		{Type: "bottom", Color: "808080", Style: 1},
	}
	stripe := excelize.Fill{Type: "pattern", Color: []string{"F7F7F7"}, Pattern: 1}

	defs := []*excelize.Style{
		{Font: &excelize.Font{Bold: true, Size: 16}},
		{
			Font:      &excelize.Font{Bold: true, Color: "F5F5F5"},
			Fill:      excelize.Fill{Type: "pattern", Color: []string{"222222"}, Pattern: 1},
			Border:    grid,
			Alignment: &excelize.Alignment{Horizontal: "left"},
		},
		{Fill: stripe, Border: grid},
		{Fill: stripe, Border: grid, Alignment: &excelize.Alignment{Horizontal: "right"}},
		{Border: grid},
		{Border: grid, Alignment: &excelize.Alignment{Horizontal: "right"}},
	}
	ids := make([]int, len(defs))
	for i, d := range defs {
		id, err := f.NewStyle(d)
		if err != nil {
			return styleSet{}, fmt.Errorf("xlsx: crear estilo: %w", err)
		}
		ids[i] = id
	}
	return styleSet{
		title:        ids[0],
		header:       ids[1],
		stripeText:   ids[2],
		stripeAmount: ids[3],
		plainText:    ids[4],
		plainAmount:  ids[5],
	}, nil
}
