package domain

import "time"

// Lead é um contato capturado no CRM, já deduplicado por ID.
type Lead struct {
	ID         string     `json:"id"`
	CapturedAt *time.Time `json:"captured_at"`
	Broker     string     `json:"broker"`
	Team       string     `json:"team"`
}

// OfertaAtivaList é a lista de ligação ativa derivada do feed de leads.
type OfertaAtivaList struct {
	Leads []Lead `json:"leads"`
	Total int    `json:"total"`

	// LeadsPerAnalysis usa analyses_base como denominador.
	LeadsPerAnalysis float64 `json:"leads_per_analysis"`

	Banner string `json:"banner,omitempty"`
	Stale  bool   `json:"stale,omitempty"`
}
