package handler

import (
	"net/http"

	"github.com/intelimob/painel-comercial-api/internal/usecases/reporting"
	"github.com/intelimob/painel-comercial-api/pkg/apiErrors"
	"github.com/intelimob/painel-comercial-api/pkg/log"
)

// GetProjection devolve o rendimento trimestral com o retro-cálculo da meta
// e, quando pedida, a sobreposição de ritmo real x meta.
func GetProjection(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseReportFilters(r)
		if err != nil {
			logger.WithError(err).Warn("projection: parâmetros de consulta inválidos")
			apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, err.Error(), nil)
			return
		}

		pace, err := parsePaceParams(r)
		if err != nil {
			logger.WithError(err).Warn("projection: parâmetros de ritmo inválidos")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		response, err := service.Projection(r.Context(), filters, pace)
		if err != nil {
			logger.WithError(err).Error("projection: falha ao calcular projeção")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao calcular projeção", nil)
			return
		}

		logger.WithFields(log.Fields{
			"defined": response.Projection.Defined,
			"stale":   response.Stale,
		}).Info("projection: projeção calculada com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("projection: falha ao serializar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
