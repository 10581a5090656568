package handler

import (
	"net/http"

	"github.com/intelimob/painel-comercial-api/internal/api/handler/router"
	"github.com/intelimob/painel-comercial-api/internal/usecases/reporting"
	"github.com/intelimob/painel-comercial-api/internal/usecases/snapshotting"
	"github.com/intelimob/painel-comercial-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Funnel(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/funnel",
			Method:      http.MethodGet,
			Handler:     GetFunnel(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/funnel/periods",
			Method:      http.MethodGet,
			Handler:     GetAvailablePeriods(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func FunnelHistory(service snapshotting.Historian) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/funnel/history",
			Method:      http.MethodGet,
			Handler:     GetFunnelHistory(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Projection(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/projection",
			Method:      http.MethodGet,
			Handler:     GetProjection(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Alerts(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/alerts",
			Method:      http.MethodGet,
			Handler:     GetAlerts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.GestorOrAdmin()},
		},
	}
}

func Leads(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/leads/oferta-ativa",
			Method:      http.MethodGet,
			Handler:     GetOfertaAtiva(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Cache(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cache/refresh",
			Method:      http.MethodPost,
			Handler:     RefreshCache(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.GestorOrAdmin()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
