package crmdomain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// LeadRecord é um registro do feed de captação com normalização permissiva:
// cada provedor troca os nomes de campo e o tipo do id, e campos
// desconhecidos são ignorados.
type LeadRecord struct {
	ID         string
	CapturedAt *time.Time
	Broker     string
	Team       string
}

var capturedAtLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02/01/2006 15:04:05",
	"02/01/2006",
}

// UnmarshalJSON aceita as variações de campo conhecidas do feed.
func (l *LeadRecord) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	l.ID = pickString(raw, "id", "lead_id", "codigo")
	l.Broker = pickString(raw, "corretor", "broker", "responsavel", "owner_name")
	l.Team = pickString(raw, "equipe", "team", "time")

	if captured := pickString(raw, "capturado_em", "captured_at", "criado_em", "created_at", "data_captura"); captured != "" {
		for _, layout := range capturedAtLayouts {
			if t, err := time.Parse(layout, captured); err == nil {
				l.CapturedAt = &t
				break
			}
		}
	}

	return nil
}

// pickString tenta as chaves em ordem e converte número para string quando
// o provedor manda o id numérico.
func pickString(raw map[string]json.RawMessage, keys ...string) string {
	for _, key := range keys {
		value, ok := raw[key]
		if !ok {
			continue
		}

		var s string
		if err := json.Unmarshal(value, &s); err == nil {
			if trimmed := strings.TrimSpace(s); trimmed != "" {
				return trimmed
			}
			continue
		}

		var n json.Number
		if err := json.Unmarshal(value, &n); err == nil {
			return n.String()
		}

		var f float64
		if err := json.Unmarshal(value, &f); err == nil {
			return fmt.Sprintf("%.0f", f)
		}
	}

	return ""
}

// Page é uma página do feed: ou um envelope {"data": [...]} com indicadores
// de paginação, ou uma lista nua de registros.
type Page struct {
	Records  []LeadRecord
	LastPage bool
}

func (p *Page) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		return json.Unmarshal(data, &p.Records)
	}

	var envelope struct {
		Data []LeadRecord `json:"data"`
		Meta struct {
			CurrentPage int `json:"current_page"`
			LastPage    int `json:"last_page"`
		} `json:"meta"`
		HasMore *bool `json:"has_more"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return err
	}

	p.Records = envelope.Data
	if envelope.HasMore != nil {
		p.LastPage = !*envelope.HasMore
	} else if envelope.Meta.LastPage > 0 {
		p.LastPage = envelope.Meta.CurrentPage >= envelope.Meta.LastPage
	}

	return nil
}
