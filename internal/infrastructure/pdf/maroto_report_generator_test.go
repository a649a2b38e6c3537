package pdf_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/control-tarjeta/internal/domain/entity"
	"github.com/jhoicas/control-tarjeta/internal/domain/statement"
	infrapdf "github.com/jhoicas/control-tarjeta/internal/infrastructure/pdf"
	"github.com/jhoicas/control-tarjeta/internal/infrastructure/pdftext"
)

func sampleReport() entity.Report {
	rows := make([]entity.SummaryRow, 0, len(statement.Concepts))
	for i, c := range statement.Concepts {
		rows = append(rows, entity.SummaryRow{Concept: c.Label, Amount: decimal.NewFromInt(int64(i * 1000))})
	}
	return entity.Report{
		ID:          "test",
		Title:       "IA AIE - Control Tarjeta Cabal Credicoop",
		GeneratedAt: time.Date(2026, 10, 16, 10, 45, 0, 0, time.UTC),
		Summary:     &entity.Summary{Rows: rows},
		Footer:      "AIE – Diseñado por Alfonso Alderete",
	}
}

func TestRender_GeneraPDFValido(t *testing.T) {
	out, err := infrapdf.NewMarotoReportGenerator().Render(context.Background(), sampleReport())

	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")), "debe empezar con la cabecera PDF")
}

// El informe generado vuelve a leerse con el extractor de texto: estructura mínima visible.
func TestRender_TextoLegible(t *testing.T) {
	out, err := infrapdf.NewMarotoReportGenerator().Render(context.Background(), sampleReport())
	require.NoError(t, err)

	pages, err := pdftext.NewExtractor().ExtractPages(context.Background(), out)
	require.NoError(t, err)
	require.NotEmpty(t, pages)

	text := strings.Join(pages, "\n")
	assert.Contains(t, text, "Resumen de importes")
	assert.Contains(t, text, "Concepto")
}

func TestRender_ResumenVacio(t *testing.T) {
	r := sampleReport()
	r.Summary = nil
	r.Footer = ""

	out, err := infrapdf.NewMarotoReportGenerator().Render(context.Background(), r)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}
