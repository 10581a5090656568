package domain

import "time"

// Status é o conjunto fechado de situações canônicas derivadas do texto
// livre da planilha.
type Status string

const (
	StatusEmAnalise      Status = "EM_ANALISE"
	StatusReanalise      Status = "REANALISE"
	StatusAprovado       Status = "APROVADO"
	StatusReprovado      Status = "REPROVADO"
	StatusVendaGerada    Status = "VENDA_GERADA"
	StatusVendaInformada Status = "VENDA_INFORMADA"
	StatusPendencia      Status = "PENDENCIA"
	StatusDesistiu       Status = "DESISTIU"
	StatusOther          Status = "OTHER"
)

// NotInformed é o sentinela para corretor/equipe ausentes na planilha.
const NotInformed = "NÃO INFORMADO"

// Event é um registro imutável de movimentação de cliente, já normalizado.
type Event struct {
	// Day é a data do movimento; nil quando a célula não pôde ser interpretada.
	Day *time.Time `json:"day"`

	// CommercialMonth é a âncora mês-comercial (sempre dia 1).
	CommercialMonth time.Time `json:"commercial_month"`

	Broker     string `json:"broker"`
	Team       string `json:"team"`
	ClientName string `json:"client_name"`
	ClientCPF  string `json:"client_cpf"`

	// ClientKey é o identificador canônico do cliente: CPF quando existe em
	// alguma linha do cliente, senão o nome.
	ClientKey string `json:"client_key"`

	RawSituation string `json:"raw_situation"`
	Status       Status `json:"status"`

	VGV       float64 `json:"vgv"`
	Developer string  `json:"developer"`
	Project   string  `json:"project"`

	// Seq preserva a ordem original de entrada para desempate estável.
	Seq int `json:"-"`
}

// IsSale indica venda gerada ou informada.
func (e Event) IsSale() bool {
	return e.Status == StatusVendaGerada || e.Status == StatusVendaInformada
}

// IsAnalysis indica análise ou reanálise.
func (e Event) IsAnalysis() bool {
	return e.Status == StatusEmAnalise || e.Status == StatusReanalise
}

// Timeline é a sequência de eventos de um cliente, ordenada por dia.
type Timeline struct {
	ClientKey string
	Events    []Event
}

// Last retorna o último evento da timeline.
func (t Timeline) Last() Event {
	return t.Events[len(t.Events)-1]
}
