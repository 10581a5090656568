package crm

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/intelimob/painel-comercial-api/infrastructure/integrator/crm/crmclient/mocks"
	crmdomain "github.com/intelimob/painel-comercial-api/infrastructure/integrator/crm/domain"
	"github.com/intelimob/painel-comercial-api/internal/config"
)

func testConfig(maxPages int) *config.Config {
	return &config.Config{
		CRM: config.CRM{MaxPages: maxPages, CacheTTLSeconds: 300},
	}
}

func page(lastPage bool, ids ...string) *crmdomain.Page {
	records := make([]crmdomain.LeadRecord, 0, len(ids))
	for _, id := range ids {
		records = append(records, crmdomain.LeadRecord{ID: id, Broker: "JOAO"})
	}
	return &crmdomain.Page{Records: records, LastPage: lastPage}
}

func TestLeads_PercorreAsPaginasAteAUltima(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	gomock.InOrder(
		client.EXPECT().FetchLeadsPage(gomock.Any(), 1).Return(page(false, "L1", "L2"), nil),
		client.EXPECT().FetchLeadsPage(gomock.Any(), 2).Return(page(true, "L3"), nil),
	)

	source := New(testConfig(10), client)
	leads, stale, err := source.Leads(context.Background())

	require.NoError(t, err)
	assert.False(t, stale)
	require.Len(t, leads, 3)
	assert.Equal(t, "L1", leads[0].ID)
	assert.Equal(t, "L3", leads[2].ID)
}

func TestLeads_ParaNaPaginaVazia(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	gomock.InOrder(
		client.EXPECT().FetchLeadsPage(gomock.Any(), 1).Return(page(false, "L1"), nil),
		client.EXPECT().FetchLeadsPage(gomock.Any(), 2).Return(page(false), nil),
	)

	source := New(testConfig(10), client)
	leads, _, err := source.Leads(context.Background())

	require.NoError(t, err)
	assert.Len(t, leads, 1)
}

func TestLeads_RespeitaOLimiteDePaginas(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	for p := 1; p <= 3; p++ {
		client.EXPECT().FetchLeadsPage(gomock.Any(), p).Return(page(false, fmt.Sprintf("L%d", p)), nil)
	}

	source := New(testConfig(3), client)
	leads, _, err := source.Leads(context.Background())

	require.NoError(t, err)
	assert.Len(t, leads, 3)
}

func TestLeads_CacheDentroDoTTL(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	client.EXPECT().FetchLeadsPage(gomock.Any(), 1).Return(page(true, "L1"), nil).Times(1)

	source := New(testConfig(10), client)

	first, _, err := source.Leads(context.Background())
	require.NoError(t, err)

	second, stale, err := source.Leads(context.Background())
	require.NoError(t, err)
	assert.False(t, stale)
	assert.Equal(t, first, second)
}

func TestLeads_FalhaComCacheServeStale(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	gomock.InOrder(
		client.EXPECT().FetchLeadsPage(gomock.Any(), 1).Return(page(true, "L1"), nil),
		client.EXPECT().FetchLeadsPage(gomock.Any(), 1).Return(nil, errors.New("crm fora do ar")),
	)

	source := New(testConfig(10), client)

	first, _, err := source.Leads(context.Background())
	require.NoError(t, err)

	source.Invalidate()

	second, stale, err := source.Leads(context.Background())
	require.NoError(t, err)
	assert.True(t, stale)
	assert.Equal(t, first, second)
}

func TestLeads_FalhaSemCacheDevolveErro(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	client.EXPECT().FetchLeadsPage(gomock.Any(), 1).Return(nil, errors.New("crm fora do ar"))

	source := New(testConfig(10), client)
	leads, stale, err := source.Leads(context.Background())

	require.Error(t, err)
	assert.False(t, stale)
	assert.Empty(t, leads)
}
