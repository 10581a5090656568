package domain

import "time"

// FunnelSnapshot é a fotografia diária do funil de um mês comercial,
// persistida para manter histórico independente da retenção da planilha.
type FunnelSnapshot struct {
	ID        string        `json:"id"`
	Month     time.Time     `json:"month"` // âncora mês comercial, dia 1
	Metrics   FunnelMetrics `json:"metrics"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
