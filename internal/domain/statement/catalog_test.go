package statement_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/control-tarjeta/internal/domain/statement"
)

func TestAnchors_FrasesSinDistinguirMayusculas(t *testing.T) {
	lines := map[string]string{
		"iva21_arancel":           "IVA S/ARANCEL DE DESCUENTO 21,00% $ 1.050,00",
		"iva21_reversion":         "- IVA 21,00% 50,00",
		"iva105_costo_financiero": "iva s/costo financiero 10,50% 12,60",
		"percepcion_iva_rg333":    "PERCEPCION DE IVA RG 333 3,00 % 1.500,00 -",
		"retencion_iibb":          "Retencion de Ingresos Brutos CABA 7,77",
	}

	require.Len(t, statement.Anchors, len(lines))
	for _, a := range statement.Anchors {
		t.Run(a.Name, func(t *testing.T) {
			line, ok := lines[a.Name]
			require.True(t, ok)
			assert.True(t, a.PhrasePattern().MatchString(line))
		})
	}
}

func TestAdjacency_Pick(t *testing.T) {
	cases := []struct {
		name string
		adj  statement.Adjacency
		tail string
		want string
		ok   bool
	}{
		{"after/relleno", statement.AmountAfter, " $ ........1.050,00", "1.050,00", true},
		{"after/con menos", statement.AmountAfter, " 12,34-", "12,34", true},
		{"after/digitos antes", statement.AmountAfter, " 01/09 1.050,00", "", false},
		{"after/alicuota", statement.AmountAfter, " 3,00 % 1.500,00 -", "", false},
		{"after/sin agrupar", statement.AmountAfter, " 1234,56", "", false},
		{"after/vacio", statement.AmountAfter, "", "", false},
		{"menos/fecha antes", statement.AmountBeforeMinus, " 01/09 1.050,00-", "1.050,00", true},
		{"menos/saltea alicuota", statement.AmountBeforeMinus, " 3,00 % 1.500,00 -", "1.500,00", true},
		{"menos/no saltea literal", statement.AmountBeforeMinus, " 200,00 SALDO ANTERIOR 15.000,00-", "", false},
		{"menos/numero parcial", statement.AmountBeforeMinus, " 1234,56-", "", false},
		{"menos/sin marca", statement.AmountBeforeMinus, " 1.050,00", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.adj.Pick(tc.tail)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestConcepts_OrdenYBases(t *testing.T) {
	require.Len(t, statement.Concepts, 6)
	assert.Equal(t, statement.LabelBaseArancel21, statement.Concepts[0].Label)
	assert.Equal(t, "0.21", statement.Concepts[0].Rate.String())
	assert.Equal(t, "0.105", statement.Concepts[2].Rate.String())
	assert.True(t, statement.Concepts[1].Rate.IsZero())
}

func TestNormalizeText(t *testing.T) {
	assert.Equal(t, "-IVA 21,00%", statement.NormalizeText("\u2212IVA 21,00%"))
	assert.Equal(t, "-IVA", statement.NormalizeText("\u2013IVA"))
	assert.Equal(t, "A B", statement.NormalizeText("A\u00a0B"), "espacio duro")
	assert.Equal(t, "-", statement.NormalizeText("\uff0d"), "guion de ancho completo")
}
