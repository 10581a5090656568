// Package prospecting monta a lista de oferta ativa a partir do feed de
// leads do CRM.
package prospecting

import (
	"sort"

	"github.com/intelimob/painel-comercial-api/internal/domain"
	"github.com/intelimob/painel-comercial-api/pkg/utils"
)

// BrokerTeams deriva o mapa corretor→equipe da planilha, usado para
// enriquecer leads cujo CRM não informa a equipe. Vale o evento mais
// recente de cada corretor.
func BrokerTeams(events []domain.Event) map[string]string {
	type lastSeen struct {
		seq  int
		team string
	}
	latest := make(map[string]lastSeen)

	for _, e := range events {
		if e.Broker == "" || e.Broker == domain.NotInformed {
			continue
		}
		if e.Team == "" || e.Team == domain.NotInformed {
			continue
		}
		if current, ok := latest[e.Broker]; !ok || e.Seq > current.seq {
			latest[e.Broker] = lastSeen{seq: e.Seq, team: e.Team}
		}
	}

	teams := make(map[string]string, len(latest))
	for broker, seen := range latest {
		teams[broker] = seen.team
	}
	return teams
}

// Normalize deduplica os leads por ID (vale a primeira ocorrência), aplica
// caixa alta em corretor/equipe e completa a equipe pelo mapa da planilha
// quando o CRM não a informa. O resultado vem dos mais recentes para os
// mais antigos; leads sem data de captura ficam no final.
func Normalize(leads []domain.Lead, brokerTeams map[string]string) []domain.Lead {
	seen := make(map[string]struct{}, len(leads))
	deduped := make([]domain.Lead, 0, len(leads))

	for _, lead := range leads {
		if lead.ID == "" {
			continue
		}
		if _, dup := seen[lead.ID]; dup {
			continue
		}
		seen[lead.ID] = struct{}{}

		lead.Broker = utils.NormalizeUpper(lead.Broker)
		if lead.Broker == "" {
			lead.Broker = domain.NotInformed
		}
		lead.Team = utils.NormalizeUpper(lead.Team)
		if lead.Team == "" || lead.Team == domain.NotInformed {
			if team, ok := brokerTeams[lead.Broker]; ok {
				lead.Team = team
			} else {
				lead.Team = domain.NotInformed
			}
		}

		deduped = append(deduped, lead)
	}

	sort.SliceStable(deduped, func(i, j int) bool {
		a, b := deduped[i].CapturedAt, deduped[j].CapturedAt
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return a.After(*b)
	})

	return deduped
}

// FilterScope aplica o recorte de equipe/corretor da consulta.
func FilterScope(leads []domain.Lead, team, broker string) []domain.Lead {
	filtered := make([]domain.Lead, 0, len(leads))
	for _, lead := range leads {
		if team != "" && team != domain.FilterAll && lead.Team != team {
			continue
		}
		if broker != "" && broker != domain.FilterAll && lead.Broker != broker {
			continue
		}
		filtered = append(filtered, lead)
	}
	return filtered
}

// Assemble fecha a lista de oferta ativa. Leads por análise usa
// analyses_base como denominador (só EM_ANALISE abre boca de funil).
func Assemble(leads []domain.Lead, analysesBase int) domain.OfertaAtivaList {
	return domain.OfertaAtivaList{
		Leads:            leads,
		Total:            len(leads),
		LeadsPerAnalysis: utils.RoundWithTwoDecimalPlace(utils.SafeRatio(float64(len(leads)), float64(analysesBase))),
	}
}
