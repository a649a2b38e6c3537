package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/control-tarjeta/pkg/money"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "0,00"},
		{"1234.5", "1.234,50"},
		{"999.999", "1.000,00"},
		{"5238.095238", "5.238,10"},
		{"1000000", "1.000.000,00"},
		{"0.005", "0,01"},
		{"-1234.56", "-1.234,56"},
		{"-0.001", "0,00"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, money.Format(decimal.RequireFromString(tc.in)))
		})
	}
}

func TestParse(t *testing.T) {
	d, err := money.Parse("1.050,00")
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.RequireFromString("1050")), "got %s", d)

	d, err = money.Parse(" 50,00 ")
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.NewFromInt(50)))

	_, err = money.Parse("")
	assert.Error(t, err)
	_, err = money.Parse("abc")
	assert.Error(t, err)
}

// format(parse(x)) == x para todo literal #.###,## menor a 10.000.000.
func TestFormatParse_RoundTrip(t *testing.T) {
	literals := []string{
		"0,00", "0,01", "9,99", "10,00", "999,99", "1.000,00", "1.050,00",
		"12.345,67", "100.000,10", "999.999,99", "1.234.567,89", "9.999.999,99",
	}
	for _, lit := range literals {
		t.Run(lit, func(t *testing.T) {
			require.Equal(t, [][]int{{0, len(lit)}}, money.FindLiterals(lit))
			d, err := money.Parse(lit)
			require.NoError(t, err)
			assert.Equal(t, lit, money.Format(d))
		})
	}
}

func TestFindLiterals(t *testing.T) {
	assert.Equal(t, [][]int{{0, 8}}, money.FindLiterals("1.234,56"))
	assert.Equal(t, [][]int{{4, 8}, {9, 17}}, money.FindLiterals("ALC 3,00 1.500,00-"))
	assert.Equal(t, [][]int{{4, 12}}, money.FindLiterals("....1.050,00"), "puntos de relleno")
	assert.Empty(t, money.FindLiterals("1234,56"), "sin separador de miles")
	assert.Empty(t, money.FindLiterals("1.234,5"), "un solo decimal")
	assert.Empty(t, money.FindLiterals("1,234.56"), "formato anglosajón")
	assert.Empty(t, money.FindLiterals("12,345"), "tres decimales")
}

func TestRound_HalfUp(t *testing.T) {
	assert.Equal(t, "0.13", money.Round(decimal.RequireFromString("0.125")).StringFixed(2))
	assert.Equal(t, "5238.10", money.Round(decimal.RequireFromString("5238.0952")).StringFixed(2))
}
