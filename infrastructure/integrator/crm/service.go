// Package crm integra o feed paginado de captação de leads, com cache por
// TTL longo (o feed muda devagar) e degradação para o último cache válido.
package crm

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/intelimob/painel-comercial-api/infrastructure/integrator/crm/crmclient"
	"github.com/intelimob/painel-comercial-api/internal/config"
	"github.com/intelimob/painel-comercial-api/internal/domain"
)

// LeadSource entrega os leads capturados. Semântica de stale idêntica à do
// EventSource da planilha.
type LeadSource interface {
	Leads(ctx context.Context) ([]domain.Lead, bool, error)
	Invalidate()
}

type CRMService struct {
	cfg    *config.Config
	client crmclient.Client

	mu        sync.Mutex
	cached    []domain.Lead
	hasCache  bool
	fetchedAt time.Time
}

func New(cfg *config.Config, client crmclient.Client) LeadSource {
	return &CRMService{
		cfg:    cfg,
		client: client,
	}
}

func (s *CRMService) ttl() time.Duration {
	return time.Duration(s.cfg.CRM.CacheTTLSeconds) * time.Second
}

func (s *CRMService) Leads(ctx context.Context) ([]domain.Lead, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hasCache && time.Since(s.fetchedAt) < s.ttl() {
		return s.cached, false, nil
	}

	leads, err := s.fetchAll(ctx)
	if err != nil {
		if s.hasCache {
			logrus.WithError(err).Warn("CRM indisponível; servindo o último cache de leads")
			return s.cached, true, nil
		}
		logrus.WithError(err).Error("CRM indisponível e sem cache de leads")
		return []domain.Lead{}, false, err
	}

	s.cached = leads
	s.hasCache = true
	s.fetchedAt = time.Now()

	logrus.WithField("leads", len(leads)).Debug("Feed de leads atualizado")

	return leads, false, nil
}

// fetchAll percorre o feed página a página. A varredura para em página
// vazia, no indicador de última página do provedor ou no limite configurado.
func (s *CRMService) fetchAll(ctx context.Context) ([]domain.Lead, error) {
	leads := make([]domain.Lead, 0)

	maxPages := s.cfg.CRM.MaxPages
	if maxPages <= 0 {
		maxPages = 1
	}

	for page := 1; page <= maxPages; page++ {
		result, err := s.client.FetchLeadsPage(ctx, page)
		if err != nil {
			return nil, err
		}

		if len(result.Records) == 0 {
			break
		}

		for _, record := range result.Records {
			leads = append(leads, domain.Lead{
				ID:         record.ID,
				CapturedAt: record.CapturedAt,
				Broker:     record.Broker,
				Team:       record.Team,
			})
		}

		if result.LastPage {
			break
		}
	}

	return leads, nil
}

func (s *CRMService) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fetchedAt = time.Time{}
}
