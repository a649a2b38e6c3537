package xlsx_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/control-tarjeta/internal/domain/entity"
	"github.com/jhoicas/control-tarjeta/internal/infrastructure/xlsx"
)

func TestRender_Planilla(t *testing.T) {
	r := entity.Report{
		Title:       "Control Cabal",
		GeneratedAt: time.Date(2026, 10, 16, 9, 5, 0, 0, time.UTC),
		Summary: &entity.Summary{Rows: []entity.SummaryRow{
			{Concept: "Base Neto Arancel (21%)", Amount: decimal.RequireFromString("5238.1")},
			{Concept: "IVA 21% sobre Arancel (incluye -IVA)", Amount: decimal.RequireFromString("1100")},
		}},
		Footer: "pie",
	}

	out, err := xlsx.NewExcelizeReportGenerator().Render(context.Background(), r)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	get := func(cell string) string {
		v, err := f.GetCellValue(xlsx.SheetName, cell)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "Control Cabal", get("A1"))
	assert.Equal(t, "Generado: 16/10/2026 09:05", get("A2"))
	assert.Equal(t, "Concepto", get("A4"))
	assert.Equal(t, "Monto ($)", get("B4"))
	assert.Equal(t, "Base Neto Arancel (21%)", get("A5"))
	assert.Equal(t, "5.238,10", get("B5"))
	assert.Equal(t, "1.100,00", get("B6"))
	assert.Equal(t, "pie", get("A8"))
}
