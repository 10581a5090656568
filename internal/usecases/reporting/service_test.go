package reporting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	crmmocks "github.com/intelimob/painel-comercial-api/infrastructure/integrator/crm/mocks"
	planilhamocks "github.com/intelimob/painel-comercial-api/infrastructure/integrator/planilha/mocks"
	"github.com/intelimob/painel-comercial-api/internal/config"
	"github.com/intelimob/painel-comercial-api/internal/domain"
)

func testConfig() *config.Config {
	return &config.Config{
		Funnel: config.Funnel{ApprovalPolicy: string(domain.ApprovalPermissive)},
		Alerts: config.Alerts{IdleBrokerDays: 3, PendencyDays: 2, VendaInformadaDays: 5},
	}
}

func day(d int) *time.Time {
	t := time.Date(2025, 11, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func monthFilter() domain.ReportFilters {
	return domain.ReportFilters{
		PeriodMode: domain.PeriodByCommercialMonth,
		Months:     []time.Time{time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)},
	}
}

func novemberEvent(key string, d int, status domain.Status, seq int) domain.Event {
	return domain.Event{
		ClientKey:       key,
		Day:             day(d),
		CommercialMonth: time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC),
		Status:          status,
		Seq:             seq,
	}
}

func TestFunnel_FonteIndisponivelSemCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	events := planilhamocks.NewMockEventSource(ctrl)
	leads := crmmocks.NewMockLeadSource(ctrl)

	events.EXPECT().Events(gomock.Any()).Return(nil, false, errors.New("planilha fora do ar"))

	service := NewService(testConfig(), events, leads)
	response, err := service.Funnel(context.Background(), monthFilter())

	require.NoError(t, err)
	assert.Equal(t, BannerSourceUnavailable, response.Banner)
	assert.False(t, response.Stale)
	assert.Zero(t, response.Metrics.AnalysesVolume)
	assert.Empty(t, response.Sales)
}

func TestFunnel_CacheVencidoMarcaStale(t *testing.T) {
	ctrl := gomock.NewController(t)
	events := planilhamocks.NewMockEventSource(ctrl)
	leads := crmmocks.NewMockLeadSource(ctrl)

	base := []domain.Event{novemberEvent("K1", 10, domain.StatusEmAnalise, 1)}
	events.EXPECT().Events(gomock.Any()).Return(base, true, nil)

	service := NewService(testConfig(), events, leads)
	response, err := service.Funnel(context.Background(), monthFilter())

	require.NoError(t, err)
	assert.True(t, response.Stale)
	assert.Empty(t, response.Banner)
	assert.Equal(t, 1, response.Metrics.AnalysesBase)
}

func TestFunnel_SituacaoGlobalAnulaVendaNaJanela(t *testing.T) {
	ctrl := gomock.NewController(t)
	events := planilhamocks.NewMockEventSource(ctrl)
	leads := crmmocks.NewMockLeadSource(ctrl)

	// A desistência de dezembro fica fora da janela de novembro, mas a
	// situação atual é global: a venda de novembro não conta.
	dezembro := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	desistiu := domain.Event{
		ClientKey:       "K1",
		Day:             &dezembro,
		CommercialMonth: dezembro,
		Status:          domain.StatusDesistiu,
		Seq:             3,
	}

	base := []domain.Event{
		novemberEvent("K1", 10, domain.StatusVendaGerada, 1),
		novemberEvent("K2", 12, domain.StatusVendaGerada, 2),
		desistiu,
	}
	events.EXPECT().Events(gomock.Any()).Return(base, false, nil)

	service := NewService(testConfig(), events, leads)
	response, err := service.Funnel(context.Background(), monthFilter())

	require.NoError(t, err)
	require.Len(t, response.Sales, 1)
	assert.Equal(t, "K2", response.Sales[0].ClientKey)
	assert.Equal(t, 1, response.Metrics.Sales)
}

func TestAvailablePeriods(t *testing.T) {
	ctrl := gomock.NewController(t)
	events := planilhamocks.NewMockEventSource(ctrl)
	leads := crmmocks.NewMockLeadSource(ctrl)

	base := []domain.Event{
		{CommercialMonth: time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)},
		{CommercialMonth: time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)},
		{CommercialMonth: time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC)},
		{CommercialMonth: time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)},
		{}, // sem mês comercial não entra
	}
	events.EXPECT().Events(gomock.Any()).Return(base, false, nil)

	service := NewService(testConfig(), events, leads)
	periods, err := service.AvailablePeriods(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"10-2025", "11-2024", "11-2025"}, periods.Periods)
	assert.Equal(t, []string{"2024", "2025"}, periods.Years)
	assert.Equal(t, []string{"10", "11"}, periods.Months)
}

func TestProjection_ComPace(t *testing.T) {
	ctrl := gomock.NewController(t)
	events := planilhamocks.NewMockEventSource(ctrl)
	leads := crmmocks.NewMockLeadSource(ctrl)

	base := []domain.Event{
		novemberEvent("K1", 5, domain.StatusEmAnalise, 1),
		novemberEvent("K1", 10, domain.StatusVendaGerada, 2),
	}
	events.EXPECT().Events(gomock.Any()).Return(base, false, nil)

	service := NewService(testConfig(), events, leads)
	pace := &PaceParams{
		Target: 10,
		Start:  time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC),
		End:    time.Date(2025, 11, 30, 0, 0, 0, 0, time.UTC),
	}
	response, err := service.Projection(context.Background(), domain.ReportFilters{SalesTarget: 5}, pace)

	require.NoError(t, err)
	assert.True(t, response.Projection.Defined)
	assert.Equal(t, 1, response.Projection.Sales3M)
	require.NotNil(t, response.Pace)
	assert.Len(t, response.Pace.Points, 30)
}

func TestProjection_SemPaceQuandoNaoPedido(t *testing.T) {
	ctrl := gomock.NewController(t)
	events := planilhamocks.NewMockEventSource(ctrl)
	leads := crmmocks.NewMockLeadSource(ctrl)

	events.EXPECT().Events(gomock.Any()).Return([]domain.Event{}, false, nil)

	service := NewService(testConfig(), events, leads)
	response, err := service.Projection(context.Background(), domain.ReportFilters{SalesTarget: 5}, nil)

	require.NoError(t, err)
	assert.False(t, response.Projection.Defined)
	assert.Nil(t, response.Pace)
}

func TestAlerts_UsaPadraoDaConfiguracao(t *testing.T) {
	ctrl := gomock.NewController(t)
	events := planilhamocks.NewMockEventSource(ctrl)
	leads := crmmocks.NewMockLeadSource(ctrl)

	events.EXPECT().Events(gomock.Any()).Return([]domain.Event{}, false, nil)

	service := NewService(testConfig(), events, leads)
	report, err := service.Alerts(context.Background(), domain.ReportFilters{})

	require.NoError(t, err)
	assert.Equal(t, domain.AlertThresholds{IdleBrokerDays: 3, PendencyDays: 2, VendaInformadaDays: 5}, report.Thresholds)
}

func TestAlerts_LimiaresDaConsulta(t *testing.T) {
	ctrl := gomock.NewController(t)
	events := planilhamocks.NewMockEventSource(ctrl)
	leads := crmmocks.NewMockLeadSource(ctrl)

	events.EXPECT().Events(gomock.Any()).Return([]domain.Event{}, false, nil)

	custom := domain.AlertThresholds{IdleBrokerDays: 7, PendencyDays: 4, VendaInformadaDays: 10}
	service := NewService(testConfig(), events, leads)
	report, err := service.Alerts(context.Background(), domain.ReportFilters{Thresholds: custom})

	require.NoError(t, err)
	assert.Equal(t, custom, report.Thresholds)
}

func TestAlerts_SobrescritaParcialMantemOsDemaisPadroes(t *testing.T) {
	ctrl := gomock.NewController(t)
	events := planilhamocks.NewMockEventSource(ctrl)
	leads := crmmocks.NewMockLeadSource(ctrl)

	// Pendência de ontem: abaixo do padrão de 2 dias, não pode alertar só
	// porque a consulta sobrescreveu outro limite.
	ontem := time.Now().UTC().AddDate(0, 0, -1)
	base := []domain.Event{
		{
			ClientKey:       "K1",
			Day:             &ontem,
			CommercialMonth: time.Date(ontem.Year(), ontem.Month(), 1, 0, 0, 0, 0, time.UTC),
			Status:          domain.StatusPendencia,
			Seq:             1,
		},
	}
	events.EXPECT().Events(gomock.Any()).Return(base, false, nil)

	service := NewService(testConfig(), events, leads)
	report, err := service.Alerts(context.Background(), domain.ReportFilters{
		Thresholds: domain.AlertThresholds{IdleBrokerDays: 7},
	})

	require.NoError(t, err)
	assert.Equal(t, domain.AlertThresholds{IdleBrokerDays: 7, PendencyDays: 2, VendaInformadaDays: 5}, report.Thresholds)
	assert.Empty(t, report.StuckPendencies)
}

func TestOfertaAtiva(t *testing.T) {
	ctrl := gomock.NewController(t)
	events := planilhamocks.NewMockEventSource(ctrl)
	leads := crmmocks.NewMockLeadSource(ctrl)

	base := []domain.Event{
		novemberEvent("K1", 5, domain.StatusEmAnalise, 1),
		novemberEvent("K2", 6, domain.StatusEmAnalise, 2),
		novemberEvent("K3", 7, domain.StatusReanalise, 3),
	}
	base[0].Broker = "JOAO"
	base[0].Team = "ALPHA"

	captured := time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC)
	feed := []domain.Lead{
		{ID: "L1", Broker: "Joao", CapturedAt: &captured},
		{ID: "L2", Broker: "MARIA", Team: "BETA"},
		{ID: "L2", Broker: "DUPLICADO"},
	}

	events.EXPECT().Events(gomock.Any()).Return(base, false, nil)
	leads.EXPECT().Leads(gomock.Any()).Return(feed, false, nil)

	service := NewService(testConfig(), events, leads)
	list, err := service.OfertaAtiva(context.Background(), monthFilter())

	require.NoError(t, err)
	assert.Equal(t, 2, list.Total)
	// 2 leads sobre analyses_base = 2 (reanálise não abre boca de funil)
	assert.Equal(t, 1.0, list.LeadsPerAnalysis)
	assert.Equal(t, "ALPHA", list.Leads[0].Team)
	assert.False(t, list.Stale)
	assert.Empty(t, list.Banner)
}

func TestOfertaAtiva_CRMForaDoAr(t *testing.T) {
	ctrl := gomock.NewController(t)
	events := planilhamocks.NewMockEventSource(ctrl)
	leads := crmmocks.NewMockLeadSource(ctrl)

	events.EXPECT().Events(gomock.Any()).Return([]domain.Event{}, false, nil)
	leads.EXPECT().Leads(gomock.Any()).Return(nil, false, errors.New("crm fora do ar"))

	service := NewService(testConfig(), events, leads)
	list, err := service.OfertaAtiva(context.Background(), domain.ReportFilters{})

	require.NoError(t, err)
	assert.Equal(t, BannerSourceUnavailable, list.Banner)
	assert.Zero(t, list.Total)
}

func TestOfertaAtiva_StalePropagaDasDuasFontes(t *testing.T) {
	ctrl := gomock.NewController(t)
	events := planilhamocks.NewMockEventSource(ctrl)
	leads := crmmocks.NewMockLeadSource(ctrl)

	events.EXPECT().Events(gomock.Any()).Return([]domain.Event{}, false, nil)
	leads.EXPECT().Leads(gomock.Any()).Return([]domain.Lead{}, true, nil)

	service := NewService(testConfig(), events, leads)
	list, err := service.OfertaAtiva(context.Background(), domain.ReportFilters{})

	require.NoError(t, err)
	assert.True(t, list.Stale)
}

func TestRefreshSources(t *testing.T) {
	ctrl := gomock.NewController(t)
	events := planilhamocks.NewMockEventSource(ctrl)
	leads := crmmocks.NewMockLeadSource(ctrl)

	events.EXPECT().Invalidate()
	leads.EXPECT().Invalidate()

	service := NewService(testConfig(), events, leads)
	service.RefreshSources()
}
