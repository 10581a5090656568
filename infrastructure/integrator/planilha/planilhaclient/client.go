package planilhaclient

import (
	"context"
	"encoding/csv"
	"net/http"
	"time"

	"github.com/pkg/errors"

	planilhadomain "github.com/intelimob/painel-comercial-api/infrastructure/integrator/planilha/domain"
	"github.com/intelimob/painel-comercial-api/internal/config"
)

type Client interface {
	FetchTable(ctx context.Context) (*planilhadomain.RawTable, error)
}

type PlanilhaClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &PlanilhaClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}

// FetchTable baixa o export CSV da planilha e o devolve cru: primeira linha
// como cabeçalho, demais como dados, sem impor número fixo de colunas.
func (c *PlanilhaClient) FetchTable(ctx context.Context) (*planilhadomain.RawTable, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.Planilha.CSVURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição da planilha")
	}
	req.Header.Set("Accept", "text/csv")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao baixar a planilha")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("download da planilha falhou com status: %s", resp.Status)
	}

	reader := csv.NewReader(resp.Body)
	reader.FieldsPerRecord = -1 // exports reais variam o número de colunas
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao interpretar o CSV da planilha")
	}

	table := &planilhadomain.RawTable{}
	if len(records) > 0 {
		table.Headers = records[0]
		table.Rows = records[1:]
	}

	return table, nil
}
