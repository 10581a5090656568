// Package funneling deduplica vendas e agrega os contadores do funil.
package funneling

import (
	"sort"

	"github.com/intelimob/painel-comercial-api/internal/domain"
	"github.com/intelimob/painel-comercial-api/internal/usecases/classifying"
	"github.com/intelimob/painel-comercial-api/pkg/utils"
)

// inSalesSet filtra a janela para o conjunto de vendas solicitado. No modo
// informada o conjunto inclui as geradas: uma VENDA_GERADA posterior precisa
// participar da deduplicação para poder suprimir a informada (passo final).
func inSalesSet(e domain.Event, mode domain.SalesMode) bool {
	switch mode {
	case domain.SalesGeradaOnly:
		return e.Status == domain.StatusVendaGerada
	default:
		return e.IsSale()
	}
}

// DedupSales reduz a janela a no máximo uma venda real por cliente.
//
// situations é o mapa global de situação atual (base inteira, não a janela):
// cliente cuja situação resolvida é DESISTIU não contribui com venda nem VGV
// ("desistiu anula venda"). Entre as vendas de um cliente vale a de dia mais
// recente, com VENDA_GERADA acima de VENDA_INFORMADA em empate de dia.
func DedupSales(
	window []domain.Event,
	mode domain.SalesMode,
	situations map[string]domain.Event,
) []domain.Event {
	best := make(map[string]domain.Event)
	order := make([]string, 0)

	for _, e := range window {
		if !inSalesSet(e, mode) {
			continue
		}
		if current, ok := situations[e.ClientKey]; ok && current.Status == domain.StatusDesistiu {
			continue
		}

		chosen, seen := best[e.ClientKey]
		if !seen {
			best[e.ClientKey] = e
			order = append(order, e.ClientKey)
			continue
		}
		if salePrecedence(e, chosen) {
			best[e.ClientKey] = e
		}
	}

	sales := make([]domain.Event, 0, len(best))
	for _, key := range order {
		chosen := best[key]
		if mode == domain.SalesInformadaOnly && chosen.Status != domain.StatusVendaInformada {
			// Uma geração posterior supera a informada; o cliente sai do recorte.
			continue
		}
		sales = append(sales, chosen)
	}

	sort.SliceStable(sales, func(i, j int) bool {
		a, b := sales[i].Day, sales[j].Day
		if a == nil || b == nil {
			return b == nil && a != nil
		}
		if !a.Equal(*b) {
			return a.Before(*b)
		}
		return sales[i].ClientKey < sales[j].ClientKey
	})

	return sales
}

// salePrecedence decide se a venda candidata passa à frente da escolhida.
func salePrecedence(candidate, current domain.Event) bool {
	a, b := candidate.Day, current.Day
	switch {
	case a == nil && b == nil:
		return candidate.Seq > current.Seq
	case a == nil:
		return false
	case b == nil:
		return true
	case a.After(*b):
		return true
	case b.After(*a):
		return false
	}

	// Mesmo dia: geração anula informada; entre iguais vale a linha mais recente.
	if candidate.Status != current.Status {
		return candidate.Status == domain.StatusVendaGerada
	}
	return candidate.Seq > current.Seq
}

// Aggregate calcula os contadores do funil sobre a janela e as vendas já
// deduplicadas.
//
// analyses_base (só EM_ANALISE) é o denominador das conversões; o volume
// soma as reanálises apenas para leitura de atividade.
func Aggregate(
	window []domain.Event,
	sales []domain.Event,
	policy domain.ApprovalPolicy,
) domain.FunnelMetrics {
	m := domain.FunnelMetrics{}

	activeBrokers := make(map[string]struct{})
	for _, e := range window {
		activeBrokers[e.Broker] = struct{}{}

		switch e.Status {
		case domain.StatusEmAnalise:
			m.AnalysesBase++
			m.AnalysesVolume++
		case domain.StatusReanalise:
			m.Reanalyses++
			m.AnalysesVolume++
		case domain.StatusReprovado:
			m.Rejections++
		}

		if classifying.CountsAsApproval(e, policy) {
			m.Approvals++
		}
	}

	productiveBrokers := make(map[string]struct{})
	for _, sale := range sales {
		m.Sales++
		m.VGVTotal += sale.VGV
		if sale.VGV > m.MaxVGV {
			m.MaxVGV = sale.VGV
		}
		productiveBrokers[sale.Broker] = struct{}{}
	}

	m.VGVTotal = utils.RoundWithTwoDecimalPlace(m.VGVTotal)
	if m.Sales > 0 {
		m.TicketMean = utils.RoundWithTwoDecimalPlace(m.VGVTotal / float64(m.Sales))
	}

	m.RateApprovalAnalysis = utils.SafeRatio(float64(m.Approvals), float64(m.AnalysesBase))
	m.RateSaleAnalysis = utils.SafeRatio(float64(m.Sales), float64(m.AnalysesBase))
	m.RateSaleApproval = utils.SafeRatio(float64(m.Sales), float64(m.Approvals))

	m.ActiveBrokers = len(activeBrokers)
	m.ProductiveBrokers = len(productiveBrokers)
	m.ProductivityRatio = utils.SafeRatio(float64(m.ProductiveBrokers), float64(m.ActiveBrokers))

	return m
}
