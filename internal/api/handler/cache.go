package handler

import (
	"net/http"

	"github.com/intelimob/painel-comercial-api/internal/usecases/reporting"
	"github.com/intelimob/painel-comercial-api/pkg/log"
)

// RefreshCache derruba os caches da planilha e do CRM. A próxima consulta
// busca as fontes de novo ("atualizar agora" do painel).
func RefreshCache(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		service.RefreshSources()
		logger.Info("cache: fontes marcadas para recarga")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"message": "Caches invalidados com sucesso",
		})
	})
}
