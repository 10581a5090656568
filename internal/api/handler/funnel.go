package handler

import (
	"net/http"

	"github.com/intelimob/painel-comercial-api/internal/usecases/reporting"
	"github.com/intelimob/painel-comercial-api/pkg/apiErrors"
	"github.com/intelimob/painel-comercial-api/pkg/log"
)

// GetFunnel agrega o funil comercial da janela pedida.
func GetFunnel(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseReportFilters(r)
		if err != nil {
			logger.WithError(err).Warn("funnel: parâmetros de consulta inválidos")
			apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, err.Error(), nil)
			return
		}

		response, err := service.Funnel(r.Context(), filters)
		if err != nil {
			logger.WithError(err).Error("funnel: falha ao agregar o funil")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar o funil", nil)
			return
		}

		logger.WithFields(log.Fields{
			"sales":  response.Metrics.Sales,
			"stale":  response.Stale,
			"banner": response.Banner,
		}).Info("funnel: funil agregado com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("funnel: falha ao serializar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// GetAvailablePeriods lista os meses comerciais presentes na base.
func GetAvailablePeriods(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		response, err := service.AvailablePeriods(r.Context())
		if err != nil {
			logger.WithError(err).Error("periods: falha ao listar períodos")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao listar períodos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("periods: falha ao serializar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
