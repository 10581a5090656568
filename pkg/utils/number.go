package utils

import (
	"math"
	"strconv"
	"strings"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// SafeRatio divide numerador por denominador protegendo contra zero.
// Métricas exibidas ao usuário nunca carregam NaN (política do painel).
func SafeRatio(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}

	return numerator / denominator
}

// ParseMoneyBR converte valores monetários digitados livremente na planilha
// ("R$ 350.000,00", "350000", "350.000") para float64. Valores não numéricos
// ou negativos viram 0.
func ParseMoneyBR(raw string) float64 {
	value := strings.TrimSpace(raw)
	if value == "" {
		return 0
	}

	value = strings.TrimPrefix(value, "R$")
	value = strings.TrimSpace(value)

	// Formato brasileiro: ponto como separador de milhar, vírgula decimal
	if strings.Contains(value, ",") {
		value = strings.ReplaceAll(value, ".", "")
		value = strings.ReplaceAll(value, ",", ".")
	} else if isThousandsGrouped(value) {
		value = strings.ReplaceAll(value, ".", "")
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil || parsed < 0 || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return 0
	}

	return parsed
}

// isThousandsGrouped reconhece valores sem vírgula cujos pontos agrupam
// milhares ("350.000", "1.200.500"): todo grupo após o primeiro tem três
// dígitos.
func isThousandsGrouped(value string) bool {
	if !strings.Contains(value, ".") {
		return false
	}

	groups := strings.Split(value, ".")
	for i, group := range groups {
		if group == "" {
			return false
		}
		if i > 0 && len(group) != 3 {
			return false
		}
	}

	return true
}
