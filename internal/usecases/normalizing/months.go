package normalizing

import (
	"strconv"
	"strings"
	"time"

	"github.com/intelimob/painel-comercial-api/pkg/utils"
)

// Nomes de mês em português já desacentuados ("marco" cobre "março").
var monthsByName = map[string]time.Month{
	"JANEIRO":   time.January,
	"FEVEREIRO": time.February,
	"MARCO":     time.March,
	"ABRIL":     time.April,
	"MAIO":      time.May,
	"JUNHO":     time.June,
	"JULHO":     time.July,
	"AGOSTO":    time.August,
	"SETEMBRO":  time.September,
	"OUTUBRO":   time.October,
	"NOVEMBRO":  time.November,
	"DEZEMBRO":  time.December,
}

// parseCommercialMonth interpreta rótulos como "novembro 2025" ou
// "Março de 2025", separando por espaços e procurando o nome do mês e um
// ano plausível. Retorna nil quando o rótulo não é reconhecível.
func parseCommercialMonth(label string) *time.Time {
	tokens := strings.Fields(utils.FoldAccents(utils.NormalizeUpper(label)))
	if len(tokens) == 0 {
		return nil
	}

	var month time.Month
	var year int

	for _, token := range tokens {
		if m, ok := monthsByName[token]; ok && month == 0 {
			month = m
			continue
		}
		if y, err := strconv.Atoi(token); err == nil && y >= 2000 && y <= 2100 {
			year = y
		}
	}

	if month == 0 || year == 0 {
		return nil
	}

	anchor := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return &anchor
}
