package handler

import (
	"net/http"

	"github.com/intelimob/painel-comercial-api/internal/usecases/reporting"
	"github.com/intelimob/painel-comercial-api/pkg/apiErrors"
	"github.com/intelimob/painel-comercial-api/pkg/log"
)

// GetAlerts monta as três listas de atividade parada (corretores sem análise,
// pendências e vendas informadas sem confirmação).
func GetAlerts(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseReportFilters(r)
		if err != nil {
			logger.WithError(err).Warn("alerts: parâmetros de consulta inválidos")
			apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, err.Error(), nil)
			return
		}

		response, err := service.Alerts(r.Context(), filters)
		if err != nil {
			logger.WithError(err).Error("alerts: falha ao montar alertas")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar alertas", nil)
			return
		}

		logger.WithFields(log.Fields{
			"idle_brokers":          len(response.IdleBrokers),
			"stuck_pendencies":      len(response.StuckPendencies),
			"stale_venda_informada": len(response.StaleVendaInformada),
		}).Info("alerts: alertas montados com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("alerts: falha ao serializar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
