package handler

import (
	"net/http"

	"github.com/intelimob/painel-comercial-api/internal/usecases/reporting"
	"github.com/intelimob/painel-comercial-api/pkg/apiErrors"
	"github.com/intelimob/painel-comercial-api/pkg/log"
)

// GetOfertaAtiva lista os leads de ligação ativa enriquecidos com a equipe
// do corretor e a razão leads por análise.
func GetOfertaAtiva(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseReportFilters(r)
		if err != nil {
			logger.WithError(err).Warn("oferta-ativa: parâmetros de consulta inválidos")
			apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, err.Error(), nil)
			return
		}

		response, err := service.OfertaAtiva(r.Context(), filters)
		if err != nil {
			logger.WithError(err).Error("oferta-ativa: falha ao montar lista")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar lista de oferta ativa", nil)
			return
		}

		logger.WithFields(log.Fields{
			"total": response.Total,
			"stale": response.Stale,
		}).Info("oferta-ativa: lista montada com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("oferta-ativa: falha ao serializar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
