package utils

import (
	"strings"
	"time"
)

// Layouts aceitos para datas vindas da planilha (sempre dia primeiro).
var brDateLayouts = []string{
	"02/01/2006",
	"2/1/2006",
	"02/01/06",
	"02-01-2006",
}

// ParseDate interpreta datas no formato ISO (yyyy-mm-dd) usadas nos
// parâmetros de consulta da API.
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// ParseDateBR interpreta datas da planilha no formato dd/mm/yyyy.
// Retorna nil quando o valor não é uma data reconhecível; a linha segue
// no pipeline com a data ausente.
func ParseDateBR(raw string) *time.Time {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil
	}

	// Algumas exportações trazem data e hora juntas
	if idx := strings.IndexByte(value, ' '); idx > 0 {
		value = value[:idx]
	}

	for _, layout := range brDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}

	return nil
}

// TruncateToDay normaliza uma data para meia-noite, preservando a localização.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// MonthStart retorna o primeiro dia do mês de t.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// DaysBetween retorna a diferença inteira em dias entre duas datas,
// ignorando o horário.
func DaysBetween(from, to time.Time) int {
	return int(TruncateToDay(to).Sub(TruncateToDay(from)).Hours() / 24)
}
