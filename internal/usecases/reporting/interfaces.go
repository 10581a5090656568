package reporting

import (
	"context"
	"time"

	"github.com/intelimob/painel-comercial-api/internal/domain"
)

// PaceParams configura a sobreposição de ritmo dos gráficos de meta.
type PaceParams struct {
	Target int
	Start  time.Time
	End    time.Time
}

// Reporter é a superfície de consulta do painel: todas as visões derivam da
// mesma base de eventos, parametrizadas por período, equipe, corretor e modo
// de venda.
type Reporter interface {
	// Funnel agrega o funil (contadores, VGV, taxas e produtividade) na janela.
	Funnel(ctx context.Context, filters domain.ReportFilters) (*domain.FunnelResponse, error)

	// AvailablePeriods lista os meses comerciais presentes na base.
	AvailablePeriods(ctx context.Context) (*domain.AvailablePeriods, error)

	// Projection deriva o rendimento dos últimos três meses e o retro-cálculo
	// para a meta; pace, quando presente, adiciona as séries real x meta.
	Projection(ctx context.Context, filters domain.ReportFilters, pace *PaceParams) (*domain.ProjectionResponse, error)

	// Alerts monta as três listas de atividade parada.
	Alerts(ctx context.Context, filters domain.ReportFilters) (*domain.AlertReport, error)

	// OfertaAtiva monta a lista de ligação ativa a partir do feed do CRM.
	OfertaAtiva(ctx context.Context, filters domain.ReportFilters) (*domain.OfertaAtivaList, error)

	// RefreshSources derruba os caches da planilha e do CRM ("atualizar agora").
	RefreshSources()
}
