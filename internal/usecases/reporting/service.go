package reporting

import (
	"context"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/intelimob/painel-comercial-api/infrastructure/integrator/crm"
	"github.com/intelimob/painel-comercial-api/infrastructure/integrator/planilha"
	"github.com/intelimob/painel-comercial-api/internal/config"
	"github.com/intelimob/painel-comercial-api/internal/domain"
	"github.com/intelimob/painel-comercial-api/internal/usecases/alerting"
	"github.com/intelimob/painel-comercial-api/internal/usecases/funneling"
	"github.com/intelimob/painel-comercial-api/internal/usecases/projecting"
	"github.com/intelimob/painel-comercial-api/internal/usecases/prospecting"
	"github.com/intelimob/painel-comercial-api/internal/usecases/resolving"
)

// BannerSourceUnavailable sinaliza fonte externa fora do ar e sem cache.
// A resposta segue com contadores zerados, nunca com erro HTTP.
const BannerSourceUnavailable = "source_unavailable"

// Service implementa Reporter sobre as duas fontes externas. Todo o resto é
// computação pura em memória, determinística por requisição.
type Service struct {
	cfg      *config.Config
	events   planilha.EventSource
	leads    crm.LeadSource
	alerting *alerting.Service
	now      func() time.Time
}

func NewService(cfg *config.Config, events planilha.EventSource, leads crm.LeadSource) Reporter {
	return &Service{
		cfg:      cfg,
		events:   events,
		leads:    leads,
		alerting: alerting.NewService(time.Now),
		now:      time.Now,
	}
}

// base busca a planilha normalizada tratando indisponibilidade: com cache
// serve a última base (stale), sem cache devolve base vazia com banner.
func (s *Service) base(ctx context.Context) (events []domain.Event, stale bool, banner string) {
	events, stale, err := s.events.Events(ctx)
	if err != nil {
		return []domain.Event{}, false, BannerSourceUnavailable
	}
	return events, stale, ""
}

// applyDefaults completa o modo de venda e a política de aprovação com os
// padrões de configuração.
func (s *Service) applyDefaults(filters domain.ReportFilters) domain.ReportFilters {
	if filters.SalesMode == "" {
		filters.SalesMode = domain.SalesGeradaOrInformada
	}
	if filters.ApprovalPolicy == "" {
		filters.ApprovalPolicy = domain.ApprovalPolicy(s.cfg.Funnel.ApprovalPolicy)
	}
	return filters
}

// windowAndScope recorta a base para a janela e o escopo da consulta.
func windowAndScope(events []domain.Event, filters domain.ReportFilters) []domain.Event {
	windowed := make([]domain.Event, 0, len(events))
	for _, e := range events {
		if !filters.MatchesScope(e) || !filters.InPeriod(e) {
			continue
		}
		windowed = append(windowed, e)
	}
	return windowed
}

// scopeOnly recorta apenas equipe/corretor, sem janela de período.
func scopeOnly(events []domain.Event, filters domain.ReportFilters) []domain.Event {
	scoped := make([]domain.Event, 0, len(events))
	for _, e := range events {
		if filters.MatchesScope(e) {
			scoped = append(scoped, e)
		}
	}
	return scoped
}

func (s *Service) Funnel(ctx context.Context, filters domain.ReportFilters) (*domain.FunnelResponse, error) {
	filters = s.applyDefaults(filters)

	events, stale, banner := s.base(ctx)

	// A situação atual é global por regra: calculada sobre a base inteira
	// antes de qualquer recorte de janela.
	situations := resolving.CurrentSituations(resolving.BuildTimelines(events))

	window := windowAndScope(events, filters)
	sales := funneling.DedupSales(window, filters.SalesMode, situations)
	metrics := funneling.Aggregate(window, sales, filters.ApprovalPolicy)

	logrus.WithFields(logrus.Fields{
		"window_events": len(window),
		"sales":         metrics.Sales,
		"vgv_total":     metrics.VGVTotal,
	}).Debug("Funil agregado")

	return &domain.FunnelResponse{
		Metrics: metrics,
		Sales:   sales,
		Banner:  banner,
		Stale:   stale,
	}, nil
}

func (s *Service) AvailablePeriods(ctx context.Context) (*domain.AvailablePeriods, error) {
	events, _, _ := s.base(ctx)

	periodMap := make(map[string]bool)
	yearMap := make(map[string]bool)
	monthMap := make(map[string]bool)

	for _, e := range events {
		if e.CommercialMonth.IsZero() {
			continue
		}
		period := e.CommercialMonth.Format("01-2006")
		periodMap[period] = true
		monthMap[period[:2]] = true
		yearMap[period[3:]] = true
	}

	periods := make([]string, 0, len(periodMap))
	for period := range periodMap {
		periods = append(periods, period)
	}
	years := make([]string, 0, len(yearMap))
	for year := range yearMap {
		years = append(years, year)
	}
	months := make([]string, 0, len(monthMap))
	for month := range monthMap {
		months = append(months, month)
	}

	sort.Strings(periods)
	sort.Strings(years)
	sort.Strings(months)

	return &domain.AvailablePeriods{
		Periods: periods,
		Years:   years,
		Months:  months,
	}, nil
}

func (s *Service) Projection(ctx context.Context, filters domain.ReportFilters, pace *PaceParams) (*domain.ProjectionResponse, error) {
	filters = s.applyDefaults(filters)

	events, stale, banner := s.base(ctx)

	situations := resolving.CurrentSituations(resolving.BuildTimelines(events))
	scoped := scopeOnly(events, filters)

	projection := projecting.Compute(scoped, situations, filters.SalesMode, filters.ApprovalPolicy, filters.SalesTarget)

	response := &domain.ProjectionResponse{
		Projection: projection,
		Banner:     banner,
		Stale:      stale,
	}

	if pace != nil && pace.Target > 0 {
		sales := funneling.DedupSales(scoped, filters.SalesMode, situations)
		days := make([]time.Time, 0, len(sales))
		for _, sale := range sales {
			if sale.Day != nil {
				days = append(days, *sale.Day)
			}
		}
		overlay := projecting.Pace(days, pace.Target, pace.Start, pace.End, s.now())
		response.Pace = &overlay
	}

	return response, nil
}

func (s *Service) Alerts(ctx context.Context, filters domain.ReportFilters) (*domain.AlertReport, error) {
	events, stale, banner := s.base(ctx)

	// Cada limite não informado cai no padrão da configuração,
	// independentemente dos demais.
	thresholds := filters.Thresholds
	if thresholds.IdleBrokerDays <= 0 {
		thresholds.IdleBrokerDays = s.cfg.Alerts.IdleBrokerDays
	}
	if thresholds.PendencyDays <= 0 {
		thresholds.PendencyDays = s.cfg.Alerts.PendencyDays
	}
	if thresholds.VendaInformadaDays <= 0 {
		thresholds.VendaInformadaDays = s.cfg.Alerts.VendaInformadaDays
	}

	report := s.alerting.Report(scopeOnly(events, filters), thresholds)
	report.Banner = banner
	report.Stale = stale

	return &report, nil
}

func (s *Service) OfertaAtiva(ctx context.Context, filters domain.ReportFilters) (*domain.OfertaAtivaList, error) {
	filters = s.applyDefaults(filters)

	events, eventsStale, eventsBanner := s.base(ctx)

	leads, leadsStale, err := s.leads.Leads(ctx)
	banner := eventsBanner
	if err != nil {
		banner = BannerSourceUnavailable
		leads = []domain.Lead{}
	}

	normalized := prospecting.Normalize(leads, prospecting.BrokerTeams(events))
	scoped := prospecting.FilterScope(normalized, filters.Team, filters.Broker)

	window := windowAndScope(events, filters)
	analysesBase := 0
	for _, e := range window {
		if e.Status == domain.StatusEmAnalise {
			analysesBase++
		}
	}

	list := prospecting.Assemble(scoped, analysesBase)
	list.Banner = banner
	list.Stale = eventsStale || leadsStale

	return &list, nil
}

func (s *Service) RefreshSources() {
	s.events.Invalidate()
	s.leads.Invalidate()
	logrus.Info("Caches da planilha e do CRM invalidados manualmente")
}
