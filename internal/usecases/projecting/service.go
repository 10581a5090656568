// Package projecting deriva o rendimento por venda dos últimos três meses e
// retro-calcula a atividade necessária para uma meta.
package projecting

import (
	"math"
	"time"

	"github.com/intelimob/painel-comercial-api/internal/domain"
	"github.com/intelimob/painel-comercial-api/internal/usecases/classifying"
	"github.com/intelimob/painel-comercial-api/internal/usecases/funneling"
	"github.com/intelimob/painel-comercial-api/pkg/utils"
)

// Window recorta a base para [último dia − 3 meses, último dia], com
// aritmética de meses. Devolve também os limites para o relatório.
func Window(events []domain.Event) (windowed []domain.Event, start, end time.Time) {
	var latest *time.Time
	for i := range events {
		d := events[i].Day
		if d == nil {
			continue
		}
		if latest == nil || d.After(*latest) {
			latest = d
		}
	}
	if latest == nil {
		return nil, time.Time{}, time.Time{}
	}

	end = utils.TruncateToDay(*latest)
	start = end.AddDate(0, -3, 0)

	for _, e := range events {
		if e.Day == nil {
			continue
		}
		d := utils.TruncateToDay(*e.Day)
		if !d.Before(start) && !d.After(end) {
			windowed = append(windowed, e)
		}
	}

	return windowed, start, end
}

// Compute monta a projeção sobre a base já restrita ao subconjunto desejado
// (imobiliária inteira, equipe ou corretor). situations é o mapa global de
// situação atual; target é a meta de vendas para o retro-cálculo.
//
// Sem vendas na janela a projeção é indefinida (Defined=false) e o painel
// exibe "—"; nunca propagamos NaN para a resposta.
func Compute(
	events []domain.Event,
	situations map[string]domain.Event,
	mode domain.SalesMode,
	policy domain.ApprovalPolicy,
	target int,
) domain.Projection {
	windowed, start, end := Window(events)

	p := domain.Projection{
		WindowStart: start,
		WindowEnd:   end,
		SalesTarget: target,
	}

	for _, e := range windowed {
		if e.Status == domain.StatusEmAnalise {
			p.AnalysesBase3M++
		}
		if classifying.CountsAsApproval(e, policy) {
			p.Approvals3M++
		}
	}

	p.Sales3M = len(funneling.DedupSales(windowed, mode, situations))
	if p.Sales3M == 0 {
		return p
	}

	p.Defined = true
	p.AnalysesPerSale = float64(p.AnalysesBase3M) / float64(p.Sales3M)
	p.ApprovalsPerSale = float64(p.Approvals3M) / float64(p.Sales3M)

	if target > 0 {
		p.RequiredAnalyses = int(math.Ceil(p.AnalysesPerSale * float64(target)))
		p.RequiredApprovals = int(math.Ceil(p.ApprovalsPerSale * float64(target)))
	}

	return p
}

// Pace produz as séries de ritmo de um gráfico: o acumulado real dia a dia
// (nil para dias futuros) contra a reta da meta de t0 a t1.
func Pace(eventDays []time.Time, target int, t0, t1, now time.Time) domain.PaceOverlay {
	t0 = utils.TruncateToDay(t0)
	t1 = utils.TruncateToDay(t1)
	now = utils.TruncateToDay(now)

	overlay := domain.PaceOverlay{Target: target}
	if t1.Before(t0) {
		return overlay
	}

	perDay := make(map[time.Time]int)
	for _, d := range eventDays {
		perDay[utils.TruncateToDay(d)]++
	}

	span := float64(utils.DaysBetween(t0, t1))
	cumulative := 0

	for day := t0; !day.After(t1); day = day.AddDate(0, 0, 1) {
		meta := float64(target)
		if span > 0 {
			meta = float64(target) * float64(utils.DaysBetween(t0, day)) / span
		}

		point := domain.PacePoint{Day: day, Meta: utils.RoundWithTwoDecimalPlace(meta)}
		if !day.After(now) {
			cumulative += perDay[day]
			real := float64(cumulative)
			point.Real = &real
		}

		overlay.Points = append(overlay.Points, point)
	}

	return overlay
}
