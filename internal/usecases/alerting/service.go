// Package alerting deriva as três listas de alerta de atividade parada.
package alerting

import (
	"sort"
	"time"

	"github.com/intelimob/painel-comercial-api/internal/domain"
	"github.com/intelimob/painel-comercial-api/internal/usecases/resolving"
	"github.com/intelimob/painel-comercial-api/pkg/utils"
)

// Service calcula alertas sobre uma base de eventos. O relógio é injetado
// para que os limiares por dias sejam testáveis.
type Service struct {
	now func() time.Time
}

func NewService(now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{now: now}
}

// Report monta as três listas sobre a base recebida (já restrita a equipe
// ou corretor quando for o caso).
func (s *Service) Report(events []domain.Event, thresholds domain.AlertThresholds) domain.AlertReport {
	timelines := resolving.BuildTimelines(events)

	return domain.AlertReport{
		IdleBrokers:         s.idleBrokers(events, thresholds.IdleBrokerDays),
		StuckPendencies:     s.lastEventAlerts(timelines, domain.StatusPendencia, thresholds.PendencyDays),
		StaleVendaInformada: s.lastEventAlerts(timelines, domain.StatusVendaInformada, thresholds.VendaInformadaDays),
		Thresholds:          thresholds,
	}
}

// idleBrokers olha apenas para análises/reanálises dos últimos 30 dias em
// relação ao dia mais recente desse escopo. Corretor sem análise nenhuma no
// escopo está fora do alerta; a referência de "parado" é a última análise do
// escopo, não o relógio de parede.
func (s *Service) idleBrokers(events []domain.Event, minDays int) []domain.BrokerAlert {
	var latest *time.Time
	for i := range events {
		e := events[i]
		if !e.IsAnalysis() || e.Day == nil {
			continue
		}
		if latest == nil || e.Day.After(*latest) {
			latest = e.Day
		}
	}
	if latest == nil {
		return []domain.BrokerAlert{}
	}

	scopeStart := utils.TruncateToDay(*latest).AddDate(0, 0, -30)

	type brokerActivity struct {
		lastDay time.Time
		team    string
	}
	byBroker := make(map[string]brokerActivity)

	for _, e := range events {
		if !e.IsAnalysis() || e.Day == nil {
			continue
		}
		day := utils.TruncateToDay(*e.Day)
		if day.Before(scopeStart) {
			continue
		}
		current, seen := byBroker[e.Broker]
		if !seen || day.After(current.lastDay) {
			byBroker[e.Broker] = brokerActivity{lastDay: day, team: e.Team}
		}
	}

	alerts := make([]domain.BrokerAlert, 0)
	for broker, activity := range byBroker {
		days := utils.DaysBetween(activity.lastDay, *latest)
		if days < minDays {
			continue
		}
		alerts = append(alerts, domain.BrokerAlert{
			Broker:                broker,
			Team:                  activity.team,
			LastAnalysisDay:       activity.lastDay,
			DaysSinceLastAnalysis: days,
		})
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		if alerts[i].DaysSinceLastAnalysis != alerts[j].DaysSinceLastAnalysis {
			return alerts[i].DaysSinceLastAnalysis > alerts[j].DaysSinceLastAnalysis
		}
		return alerts[i].Broker < alerts[j].Broker
	})

	return alerts
}

// lastEventAlerts atende aos alertas de pendência travada e venda informada
// antiga: último evento de cada cliente na base inteira, filtrado pelo
// status pedido, com dias contados até hoje.
func (s *Service) lastEventAlerts(
	timelines []domain.Timeline,
	status domain.Status,
	minDays int,
) []domain.ClientAlert {
	today := utils.TruncateToDay(s.now())

	alerts := make([]domain.ClientAlert, 0)
	for _, t := range timelines {
		if len(t.Events) == 0 {
			continue
		}
		last := t.Last()
		if last.Status != status || last.Day == nil {
			continue
		}

		days := utils.DaysBetween(*last.Day, today)
		if days < minDays {
			continue
		}

		alerts = append(alerts, domain.ClientAlert{
			ClientKey:      t.ClientKey,
			ClientName:     last.ClientName,
			Broker:         last.Broker,
			Team:           last.Team,
			Status:         last.Status,
			LastEventDay:   utils.TruncateToDay(*last.Day),
			DaysSinceEvent: days,
			VGV:            last.VGV,
		})
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		if alerts[i].DaysSinceEvent != alerts[j].DaysSinceEvent {
			return alerts[i].DaysSinceEvent > alerts[j].DaysSinceEvent
		}
		return alerts[i].ClientKey < alerts[j].ClientKey
	})

	return alerts
}
