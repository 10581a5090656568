package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/intelimob/painel-comercial-api/internal/domain"
	"github.com/intelimob/painel-comercial-api/internal/usecases/reporting"
	"github.com/intelimob/painel-comercial-api/pkg/middleware"
	"github.com/intelimob/painel-comercial-api/pkg/utils"
)

// parseReportFilters monta os filtros de consulta a partir da query string.
// A gramática aceita period=day com start_date/end_date ou period=month com
// months=mm-yyyy separados por vírgula. Equipe e corretor usam "all" para
// desligar o recorte.
func parseReportFilters(r *http.Request) (domain.ReportFilters, error) {
	q := r.URL.Query()
	filters := domain.ReportFilters{
		Team:   q.Get("team"),
		Broker: q.Get("broker"),
	}

	switch q.Get("period") {
	case "", string(domain.PeriodByDay):
		filters.PeriodMode = domain.PeriodByDay

		if raw := q.Get("start_date"); raw != "" {
			start, err := utils.ParseDate(raw)
			if err != nil {
				return filters, fmt.Errorf("start_date inválido: %s", raw)
			}
			filters.StartDate = start
		}

		if raw := q.Get("end_date"); raw != "" {
			end, err := utils.ParseDate(raw)
			if err != nil {
				return filters, fmt.Errorf("end_date inválido: %s", raw)
			}
			filters.EndDate = end
		}

		if filters.StartDate != nil && filters.EndDate != nil && filters.EndDate.Before(*filters.StartDate) {
			return filters, fmt.Errorf("end_date anterior a start_date")
		}

	case string(domain.PeriodByCommercialMonth):
		filters.PeriodMode = domain.PeriodByCommercialMonth

		months, err := parseMonths(q.Get("months"))
		if err != nil {
			return filters, err
		}
		filters.Months = months

	default:
		return filters, fmt.Errorf("period inválido: %s", q.Get("period"))
	}

	switch q.Get("sales_mode") {
	case "":
		// padrão aplicado pela camada de consulta
	case string(domain.SalesGeradaOrInformada):
		filters.SalesMode = domain.SalesGeradaOrInformada
	case string(domain.SalesGeradaOnly):
		filters.SalesMode = domain.SalesGeradaOnly
	case string(domain.SalesInformadaOnly):
		filters.SalesMode = domain.SalesInformadaOnly
	default:
		return filters, fmt.Errorf("sales_mode inválido: %s", q.Get("sales_mode"))
	}

	switch q.Get("approval_policy") {
	case "":
	case string(domain.ApprovalPermissive):
		filters.ApprovalPolicy = domain.ApprovalPermissive
	case string(domain.ApprovalExact):
		filters.ApprovalPolicy = domain.ApprovalExact
	default:
		return filters, fmt.Errorf("approval_policy inválido: %s", q.Get("approval_policy"))
	}

	if raw := q.Get("sales_target"); raw != "" {
		target, err := strconv.Atoi(raw)
		if err != nil || target < 0 {
			return filters, fmt.Errorf("sales_target inválido: %s", raw)
		}
		filters.SalesTarget = target
	}

	thresholds, err := parseThresholds(r)
	if err != nil {
		return filters, err
	}
	filters.Thresholds = thresholds

	applyRoleScope(r, &filters)

	return filters, nil
}

// parseMonths converte a lista mm-yyyy em âncoras de mês comercial (dia 1, UTC).
func parseMonths(raw string) ([]time.Time, error) {
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	months := make([]time.Time, 0, len(parts))
	seen := make(map[time.Time]bool)

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		anchor, err := time.Parse("01-2006", part)
		if err != nil {
			return nil, fmt.Errorf("mês inválido (esperado mm-yyyy): %s", part)
		}

		anchor = time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, time.UTC)
		if seen[anchor] {
			continue
		}
		seen[anchor] = true
		months = append(months, anchor)
	}

	if len(months) == 0 {
		return nil, fmt.Errorf("months é obrigatório para period=month")
	}

	return months, nil
}

// parseThresholds lê os limites dos alertas, quando sobrescritos na consulta.
func parseThresholds(r *http.Request) (domain.AlertThresholds, error) {
	q := r.URL.Query()
	var thresholds domain.AlertThresholds

	for _, field := range []struct {
		param string
		dst   *int
	}{
		{"idle_broker_days", &thresholds.IdleBrokerDays},
		{"pendency_days", &thresholds.PendencyDays},
		{"venda_informada_days", &thresholds.VendaInformadaDays},
	} {
		raw := q.Get(field.param)
		if raw == "" {
			continue
		}
		value, err := strconv.Atoi(raw)
		if err != nil || value < 1 {
			return thresholds, fmt.Errorf("%s inválido: %s", field.param, raw)
		}
		*field.dst = value
	}

	return thresholds, nil
}

// parsePaceParams lê os parâmetros da sobreposição de ritmo, quando pedida.
func parsePaceParams(r *http.Request) (*reporting.PaceParams, error) {
	q := r.URL.Query()
	if q.Get("pace_target") == "" {
		return nil, nil
	}

	target, err := strconv.Atoi(q.Get("pace_target"))
	if err != nil || target < 1 {
		return nil, fmt.Errorf("pace_target inválido: %s", q.Get("pace_target"))
	}

	if q.Get("pace_start") == "" || q.Get("pace_end") == "" {
		return nil, fmt.Errorf("pace_start e pace_end são obrigatórios com pace_target")
	}

	start, err := utils.ParseDate(q.Get("pace_start"))
	if err != nil {
		return nil, fmt.Errorf("pace_start inválido: %s", q.Get("pace_start"))
	}

	end, err := utils.ParseDate(q.Get("pace_end"))
	if err != nil {
		return nil, fmt.Errorf("pace_end inválido: %s", q.Get("pace_end"))
	}

	if end.Before(*start) {
		return nil, fmt.Errorf("pace_end anterior a pace_start")
	}

	return &reporting.PaceParams{
		Target: target,
		Start:  *start,
		End:    *end,
	}, nil
}

// applyRoleScope força o auto-filtro do perfil corretor: o usuário só enxerga
// os próprios eventos, independentemente do que pedir na query.
func applyRoleScope(r *http.Request, filters *domain.ReportFilters) {
	claims, ok := middleware.UserFromContext(r.Context())
	if !ok {
		return
	}

	if !claims.IsManager() && claims.Broker != "" {
		filters.Broker = claims.Broker
	}
}
