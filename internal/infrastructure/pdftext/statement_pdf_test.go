package pdftext_test

import (
	"context"
	"strings"
	"testing"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/page"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/control-tarjeta/internal/domain/statement"
	"github.com/jhoicas/control-tarjeta/internal/infrastructure/pdftext"
	"github.com/jhoicas/control-tarjeta/pkg/money"
)

// statementRow concepto a la izquierda e importe alineado a la derecha, en celdas separadas.
func statementRow(concept, amount string) core.Row {
	return row.New(8).Add(
		col.New(9).Add(text.New(concept, props.Text{Size: 10, Align: align.Left, Top: 1.5})),
		col.New(3).Add(text.New(amount, props.Text{Size: 10, Align: align.Right, Top: 1.5})),
	)
}

// buildStatementPDF liquidación de dos páginas con varias filas por página.
func buildStatementPDF(t *testing.T) []byte {
	t.Helper()
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		Build()
	m := maroto.New(cfg)

	m.AddPages(
		page.New().Add(
			row.New(10).Add(col.New(12).Add(text.New("LIQUIDACION DE COMERCIOS", props.Text{Size: 12}))),
			statementRow("IVA S/ARANCEL DE DESCUENTO 21,00%", "1.050,00"),
			statementRow("-IVA 21,00% EN DEBITOS AL COMERCIO", "50,00"),
			statementRow("IVA S/COSTO FINANCIERO 10,50%", "21,00"),
			statementRow("RETENCION DE INGRESOS BRUTOS", "100,00"),
		),
		page.New().Add(
			statementRow("RETENCION DE INGRESOS BRUTOS", "200,00"),
			statementRow("PERCEPCION DE IVA RG 333", "5,00-"),
		),
	)

	doc, err := m.Generate()
	require.NoError(t, err)
	return doc.GetBytes()
}

func pageLines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestExtractPages_UnaLineaPorFila(t *testing.T) {
	pages, err := pdftext.NewExtractor().ExtractPages(context.Background(), buildStatementPDF(t))
	require.NoError(t, err)
	require.Len(t, pages, 2)

	first := pageLines(pages[0])
	assert.Equal(t, []string{
		"LIQUIDACION DE COMERCIOS",
		"IVA S/ARANCEL DE DESCUENTO 21,00% 1.050,00",
		"-IVA 21,00% EN DEBITOS AL COMERCIO 50,00",
		"IVA S/COSTO FINANCIERO 10,50% 21,00",
		"RETENCION DE INGRESOS BRUTOS 100,00",
	}, first)

	second := pageLines(pages[1])
	assert.Equal(t, []string{
		"RETENCION DE INGRESOS BRUTOS 200,00",
		"PERCEPCION DE IVA RG 333 5,00-",
	}, second)
}

func TestExtractPages_LiquidacionCompleta(t *testing.T) {
	pages, err := pdftext.NewExtractor().ExtractPages(context.Background(), buildStatementPDF(t))
	require.NoError(t, err)

	ex := statement.NewScanner().Scan(pages)
	amount := func(label string) string { return money.Format(ex.Summary.Amount(label)) }

	assert.Equal(t, "1.100,00", amount(statement.LabelIVA21Arancel))
	assert.Equal(t, "5.238,10", amount(statement.LabelBaseArancel21))
	assert.Equal(t, "21,00", amount(statement.LabelIVA105CostoFinanc))
	assert.Equal(t, "200,00", amount(statement.LabelBaseCostoFinanc105))
	assert.Equal(t, "5,00", amount(statement.LabelPercepcionRG333))
	assert.Equal(t, "300,00", amount(statement.LabelRetencionIIBB), "suma entre páginas")
	assert.Equal(t, 2, ex.Matches["retencion_iibb"])
}
