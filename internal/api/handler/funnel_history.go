package handler

import (
	"net/http"
	"time"

	"github.com/intelimob/painel-comercial-api/internal/usecases/snapshotting"
	"github.com/intelimob/painel-comercial-api/pkg/apiErrors"
	"github.com/intelimob/painel-comercial-api/pkg/log"
)

// GetFunnelHistory serve a série persistida de snapshots do funil. Com
// month=mm-yyyy devolve um único mês; com months=lista devolve a série
// pedida; sem parâmetros, os últimos doze meses.
func GetFunnelHistory(service snapshotting.Historian) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		q := r.URL.Query()

		if raw := q.Get("month"); raw != "" {
			anchor, err := time.Parse("01-2006", raw)
			if err != nil {
				logger.WithField("month", raw).Warn("funnel-history: mês inválido")
				apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, "mês inválido (esperado mm-yyyy): "+raw, nil)
				return
			}

			snapshot, err := service.Month(time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, time.UTC))
			if err != nil {
				logger.WithError(err).Error("funnel-history: erro ao buscar o snapshot do mês")
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "erro ao buscar o histórico do funil", nil)
				return
			}
			if snapshot == nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, "não há snapshot para o mês: "+raw, nil)
				return
			}

			w.Header().Set("Content-Type", "application/json")
			if err := json.NewEncoder(w).Encode(snapshot); err != nil {
				logger.WithError(err).Error("funnel-history: erro ao codificar resposta")
			}
			return
		}

		months, err := parseMonths(q.Get("months"))
		if err != nil {
			logger.WithError(err).Warn("funnel-history: parâmetros de consulta inválidos")
			apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, err.Error(), nil)
			return
		}

		snapshots, err := service.History(months)
		if err != nil {
			logger.WithError(err).Error("funnel-history: erro ao listar o histórico")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "erro ao listar o histórico do funil", nil)
			return
		}

		logger.WithField("snapshots", len(snapshots)).Info("funnel-history: série servida")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(snapshots); err != nil {
			logger.WithError(err).Error("funnel-history: erro ao codificar resposta")
		}
	})
}
