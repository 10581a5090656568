// Package resolving agrupa eventos por cliente e determina a situação atual
// de cada um sob a regra de reset (desistência) e ancoragem de venda.
package resolving

import (
	"sort"

	"github.com/intelimob/painel-comercial-api/internal/domain"
)

// BuildTimelines agrupa eventos por client_key e ordena cada timeline por
// dia, de forma estável: empates no mesmo dia mantêm a ordem de entrada e
// eventos sem data vão para o final. O resultado é ordenado por chave para
// que reexecuções produzam exatamente a mesma saída.
func BuildTimelines(events []domain.Event) []domain.Timeline {
	byClient := make(map[string][]domain.Event)
	for _, e := range events {
		byClient[e.ClientKey] = append(byClient[e.ClientKey], e)
	}

	keys := make([]string, 0, len(byClient))
	for key := range byClient {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	timelines := make([]domain.Timeline, 0, len(keys))
	for _, key := range keys {
		clientEvents := byClient[key]
		sort.SliceStable(clientEvents, func(i, j int) bool {
			a, b := clientEvents[i].Day, clientEvents[j].Day
			if a == nil {
				return false
			}
			if b == nil {
				return true
			}
			return a.Before(*b)
		})
		timelines = append(timelines, domain.Timeline{ClientKey: key, Events: clientEvents})
	}

	return timelines
}

// Resolve devolve o evento que dita a situação atual do cliente.
//
// Regra: o segmento vivo começa na última desistência (inclusive). Se o
// segmento contém venda, vale a última venda, com VENDA_GERADA acima de
// VENDA_INFORMADA quando caem no mesmo dia (geração anula informada). Senão
// vale o último evento do segmento; uma desistência final portanto cancela
// qualquer venda anterior e reabre o ciclo.
func Resolve(t domain.Timeline) domain.Event {
	segment := t.Events
	for i := len(segment) - 1; i >= 0; i-- {
		if segment[i].Status == domain.StatusDesistiu {
			segment = segment[i:]
			break
		}
	}

	var sale *domain.Event
	for i := range segment {
		e := segment[i]
		if !e.IsSale() {
			continue
		}
		if sale == nil || supersedes(e, *sale) {
			sale = &segment[i]
		}
	}

	if sale != nil {
		return *sale
	}

	return segment[len(segment)-1]
}

// supersedes decide se a venda candidata substitui a escolhida até agora.
// O candidato vem sempre depois na timeline ordenada, então ele ganha,
// exceto quando divide o dia com uma VENDA_GERADA e é apenas informada.
func supersedes(candidate, current domain.Event) bool {
	if sameDay(candidate, current) &&
		current.Status == domain.StatusVendaGerada &&
		candidate.Status == domain.StatusVendaInformada {
		return false
	}
	return true
}

func sameDay(a, b domain.Event) bool {
	return a.Day != nil && b.Day != nil && a.Day.Equal(*b.Day)
}

// CurrentSituations resolve a situação de todos os clientes da base. O mapa
// é global por construção: a deduplicação de vendas depende dele mesmo
// quando a janela consultada é menor que a base.
func CurrentSituations(timelines []domain.Timeline) map[string]domain.Event {
	situations := make(map[string]domain.Event, len(timelines))
	for _, t := range timelines {
		if len(t.Events) == 0 {
			continue
		}
		situations[t.ClientKey] = Resolve(t)
	}
	return situations
}
