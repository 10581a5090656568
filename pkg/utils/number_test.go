package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMoneyBR(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		expected float64
	}{
		{name: "formato completo", raw: "R$ 350.000,00", expected: 350000},
		{name: "sem prefixo", raw: "350.000,00", expected: 350000},
		{name: "inteiro puro", raw: "350000", expected: 350000},
		{name: "milhar sem centavos", raw: "350.000", expected: 350000},
		{name: "milhoes sem centavos", raw: "1.200.500", expected: 1200500},
		{name: "decimal com virgula", raw: "1250,50", expected: 1250.50},
		{name: "decimal com ponto nao e milhar", raw: "350.5", expected: 350.5},
		{name: "espacos em volta", raw: "  R$ 90.000,00  ", expected: 90000},
		{name: "vazio", raw: "", expected: 0},
		{name: "texto livre", raw: "a combinar", expected: 0},
		{name: "negativo vira zero", raw: "-500", expected: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParseMoneyBR(tc.raw))
		})
	}
}

func TestSafeRatio(t *testing.T) {
	assert.Equal(t, 0.5, SafeRatio(1, 2))
	assert.Equal(t, 0.0, SafeRatio(10, 0))
	assert.Equal(t, 0.0, SafeRatio(0, 0))
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 0.67, RoundWithTwoDecimalPlace(2.0/3.0))
	assert.Equal(t, 1.5, RoundWithTwoDecimalPlace(1.5))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
}
