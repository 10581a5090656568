// Package normalizing transforma as linhas heterogêneas da planilha em uma
// sequência uniforme de eventos.
package normalizing

import (
	"time"

	planilhadomain "github.com/intelimob/painel-comercial-api/infrastructure/integrator/planilha/domain"
	"github.com/intelimob/painel-comercial-api/internal/domain"
	"github.com/intelimob/painel-comercial-api/internal/usecases/classifying"
	"github.com/intelimob/painel-comercial-api/pkg/utils"
)

// Campos canônicos descobertos no cabeçalho.
const (
	fieldDay       = "day"
	fieldMonth     = "commercial_month"
	fieldSituation = "situation"
	fieldName      = "client_name"
	fieldCPF       = "client_cpf"
	fieldTeam      = "team"
	fieldBroker    = "broker"
	fieldDeveloper = "developer"
	fieldProject   = "project"
	fieldObs       = "observations"
)

// headerSynonyms é o mapa declarativo de sinônimos de coluna, em ordem de
// prioridade. A comparação ignora caixa, espaços nas pontas e acentos.
var headerSynonyms = map[string][]string{
	fieldDay:       {"DATA", "DIA"},
	fieldMonth:     {"DATA BASE", "DATA_BASE", "DT BASE", "DATA REF", "DATA REFERÊNCIA"},
	fieldSituation: {"SITUAÇÃO", "SITUAÇÃO ATUAL", "STATUS", "SITUACAO"},
	fieldName:      {"NOME", "CLIENTE", "NOME CLIENTE", "NOME DO CLIENTE"},
	fieldCPF:       {"CPF", "CPF CLIENTE", "CPF DO CLIENTE"},
	fieldTeam:      {"EQUIPE"},
	fieldBroker:    {"CORRETOR"},
	fieldDeveloper: {"CONSTRUTORA", "INCORPORADORA"},
	fieldProject:   {"EMPREENDIMENTO", "PRODUTO", "IMÓVEL"},
	fieldObs:       {"OBSERVAÇÕES", "OBSERVACOES", "OBSERVAÇÃO", "OBS"},
}

// columnIndex resolve cada campo canônico para um índice de coluna, tentando
// os sinônimos em ordem. Campos sem coluna correspondente ficam com -1.
func columnIndex(headers []string) map[string]int {
	normalized := make([]string, len(headers))
	for i, h := range headers {
		normalized[i] = utils.FoldAccents(utils.NormalizeUpper(h))
	}

	index := make(map[string]int, len(headerSynonyms))
	for field, synonyms := range headerSynonyms {
		index[field] = -1
		for _, synonym := range synonyms {
			want := utils.FoldAccents(utils.NormalizeUpper(synonym))
			for i, have := range normalized {
				if have == want {
					index[field] = i
					break
				}
			}
			if index[field] >= 0 {
				break
			}
		}
	}

	return index
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// Normalize converte a tabela bruta em eventos. Linha ruim nunca derruba a
// carga: os campos mal formados ficam ausentes ou com o sentinela e a linha
// segue. Entrada vazia produz uma sequência vazia.
func Normalize(table *planilhadomain.RawTable) []domain.Event {
	if table.Empty() {
		return []domain.Event{}
	}

	index := columnIndex(table.Headers)
	events := make([]domain.Event, 0, len(table.Rows))

	for seq, row := range table.Rows {
		day := utils.ParseDateBR(cell(row, index[fieldDay]))

		var commercialMonth time.Time
		if anchor := parseCommercialMonth(cell(row, index[fieldMonth])); anchor != nil {
			commercialMonth = *anchor
		} else if day != nil {
			commercialMonth = utils.MonthStart(*day)
		}

		rawSituation := cell(row, index[fieldSituation])

		broker := utils.NormalizeUpper(cell(row, index[fieldBroker]))
		if broker == "" {
			broker = domain.NotInformed
		}

		team := utils.NormalizeUpper(cell(row, index[fieldTeam]))
		if team == "" {
			team = domain.NotInformed
		}

		developer := utils.NormalizeUpper(cell(row, index[fieldDeveloper]))
		if developer == "" {
			developer = domain.NotInformed
		}

		project := utils.NormalizeUpper(cell(row, index[fieldProject]))
		if project == "" {
			project = domain.NotInformed
		}

		events = append(events, domain.Event{
			Day:             day,
			CommercialMonth: commercialMonth,
			Broker:          broker,
			Team:            team,
			ClientName:      utils.NormalizeUpper(cell(row, index[fieldName])),
			ClientCPF:       utils.OnlyDigits(cell(row, index[fieldCPF])),
			RawSituation:    rawSituation,
			Status:          classifying.Classify(rawSituation),
			VGV:             utils.ParseMoneyBR(cell(row, index[fieldObs])),
			Developer:       developer,
			Project:         project,
			Seq:             seq,
		})
	}

	unifyClientKeys(events)

	return events
}

// unifyClientKeys calcula, sobre a base inteira, o primeiro CPF não vazio
// observado para cada nome e o aplica a todas as linhas, de modo que um
// cliente que aparece com e sem CPF fique sob uma única chave.
func unifyClientKeys(events []domain.Event) {
	cpfByName := make(map[string]string)
	for _, e := range events {
		if e.ClientName == "" || e.ClientCPF == "" {
			continue
		}
		if _, seen := cpfByName[e.ClientName]; !seen {
			cpfByName[e.ClientName] = e.ClientCPF
		}
	}

	for i := range events {
		e := &events[i]
		switch {
		case e.ClientName != "" && cpfByName[e.ClientName] != "":
			e.ClientKey = cpfByName[e.ClientName]
		case e.ClientCPF != "":
			e.ClientKey = e.ClientCPF
		default:
			e.ClientKey = e.ClientName
		}
	}
}
