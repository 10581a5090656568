package crmclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	"github.com/pkg/errors"

	crmdomain "github.com/intelimob/painel-comercial-api/infrastructure/integrator/crm/domain"
	"github.com/intelimob/painel-comercial-api/internal/config"
)

type Client interface {
	FetchLeadsPage(ctx context.Context, page int) (*crmdomain.Page, error)
}

type CRMClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &CRMClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}

// FetchLeadsPage busca uma página do feed de leads com autenticação bearer.
func (c *CRMClient) FetchLeadsPage(ctx context.Context, page int) (*crmdomain.Page, error) {
	endpoint, err := url.Parse(c.config.CRM.BaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao analisar a URL base do CRM")
	}
	endpoint.Path = path.Join(endpoint.Path, "/leads")

	query := endpoint.Query()
	query.Set("page", strconv.Itoa(page))
	query.Set("per_page", strconv.Itoa(c.config.CRM.PageSize))
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição do CRM")
	}
	req.Header.Set("Authorization", "Bearer "+c.config.CRM.AccessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a requisição do CRM")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("requisição do CRM falhou com status: %s", resp.Status)
	}

	var result crmdomain.Page
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar a resposta do CRM")
	}

	return &result, nil
}
