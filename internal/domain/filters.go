package domain

import "time"

// PeriodMode define como a janela de consulta é recortada.
type PeriodMode string

const (
	PeriodByDay             PeriodMode = "day"
	PeriodByCommercialMonth PeriodMode = "month"
)

// SalesMode define quais status contam como venda na consulta.
type SalesMode string

const (
	SalesGeradaOrInformada SalesMode = "gerada_informada"
	SalesGeradaOnly        SalesMode = "gerada"
	SalesInformadaOnly     SalesMode = "informada"
)

// ApprovalPolicy escolhe entre a regra permissiva (contém "APROV") e a
// estrita (texto exato "APROVAÇÃO"). As duas definições coexistem no painel.
type ApprovalPolicy string

const (
	ApprovalPermissive ApprovalPolicy = "permissive"
	ApprovalExact      ApprovalPolicy = "exact"
)

// FilterAll é o valor de equipe/corretor que desliga o filtro.
const FilterAll = "all"

// AlertThresholds são os limites (em dias) dos três alertas de inatividade.
type AlertThresholds struct {
	IdleBrokerDays     int `json:"idle_broker_days"`
	PendencyDays       int `json:"pendency_days"`
	VendaInformadaDays int `json:"venda_informada_days"`
}

// DefaultAlertThresholds retorna os limites canônicos 3/2/5.
func DefaultAlertThresholds() AlertThresholds {
	return AlertThresholds{
		IdleBrokerDays:     3,
		PendencyDays:       2,
		VendaInformadaDays: 5,
	}
}

// ReportFilters parametriza todas as consultas do painel.
type ReportFilters struct {
	PeriodMode PeriodMode

	// Janela por dia (PeriodByDay)
	StartDate *time.Time
	EndDate   *time.Time

	// Conjunto de meses comerciais, âncoras com dia 1 (PeriodByCommercialMonth)
	Months []time.Time

	Team   string
	Broker string

	SalesMode      SalesMode
	ApprovalPolicy ApprovalPolicy

	SalesTarget int

	Thresholds AlertThresholds
}

// MatchesScope aplica os filtros de equipe e corretor a um evento.
func (f ReportFilters) MatchesScope(e Event) bool {
	if f.Team != "" && f.Team != FilterAll && e.Team != f.Team {
		return false
	}
	if f.Broker != "" && f.Broker != FilterAll && e.Broker != f.Broker {
		return false
	}
	return true
}

// InPeriod verifica se um evento cai na janela configurada. Eventos sem
// data nunca entram em janelas por dia; em janelas por mês comercial conta
// a âncora, que sempre existe.
func (f ReportFilters) InPeriod(e Event) bool {
	switch f.PeriodMode {
	case PeriodByCommercialMonth:
		if len(f.Months) == 0 {
			return true
		}
		for _, m := range f.Months {
			if e.CommercialMonth.Equal(m) {
				return true
			}
		}
		return false
	default:
		if f.StartDate == nil && f.EndDate == nil {
			return true
		}
		if e.Day == nil {
			return false
		}
		if f.StartDate != nil && e.Day.Before(*f.StartDate) {
			return false
		}
		if f.EndDate != nil && e.Day.After(*f.EndDate) {
			return false
		}
		return true
	}
}
