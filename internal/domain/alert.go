package domain

import "time"

// BrokerAlert sinaliza corretor sem análise recente dentro do escopo de 30 dias.
type BrokerAlert struct {
	Broker                string    `json:"broker"`
	Team                  string    `json:"team"`
	LastAnalysisDay       time.Time `json:"last_analysis_day"`
	DaysSinceLastAnalysis int       `json:"days_since_last_analysis"`
}

// ClientAlert sinaliza cliente parado em pendência ou venda informada antiga.
type ClientAlert struct {
	ClientKey      string    `json:"client_key"`
	ClientName     string    `json:"client_name"`
	Broker         string    `json:"broker"`
	Team           string    `json:"team"`
	Status         Status    `json:"status"`
	LastEventDay   time.Time `json:"last_event_day"`
	DaysSinceEvent int       `json:"days_since_event"`
	VGV            float64   `json:"vgv,omitempty"`
}

// AlertReport reúne as três listas de alerta, já ranqueadas por dias.
type AlertReport struct {
	IdleBrokers         []BrokerAlert `json:"idle_brokers"`
	StuckPendencies     []ClientAlert `json:"stuck_pendencies"`
	StaleVendaInformada []ClientAlert `json:"stale_venda_informada"`

	Thresholds AlertThresholds `json:"thresholds"`
	Banner     string          `json:"banner,omitempty"`
	Stale      bool            `json:"stale,omitempty"`
}
