// Package planilha integra o export CSV de eventos de clientes, com cache
// de leitura por TTL e degradação para a última base válida.
package planilha

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/intelimob/painel-comercial-api/infrastructure/integrator/planilha/planilhaclient"
	"github.com/intelimob/painel-comercial-api/internal/config"
	"github.com/intelimob/painel-comercial-api/internal/domain"
	"github.com/intelimob/painel-comercial-api/internal/usecases/normalizing"
)

// EventSource entrega a base de eventos normalizada.
//
// O booleano de retorno indica base "stale": a fonte falhou e estamos
// servindo o último cache válido. Falha sem cache devolve base vazia e o
// erro, para a camada de cima montar o banner de fonte indisponível.
type EventSource interface {
	Events(ctx context.Context) ([]domain.Event, bool, error)
	Invalidate()
}

type PlanilhaService struct {
	cfg    *config.Config
	client planilhaclient.Client

	mu        sync.Mutex
	cached    []domain.Event
	hasCache  bool
	fetchedAt time.Time
}

func New(cfg *config.Config, client planilhaclient.Client) EventSource {
	return &PlanilhaService{
		cfg:    cfg,
		client: client,
	}
}

func (s *PlanilhaService) ttl() time.Duration {
	return time.Duration(s.cfg.Planilha.CacheTTLSeconds) * time.Second
}

func (s *PlanilhaService) Events(ctx context.Context) ([]domain.Event, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hasCache && time.Since(s.fetchedAt) < s.ttl() {
		return s.cached, false, nil
	}

	table, err := s.client.FetchTable(ctx)
	if err != nil {
		if s.hasCache {
			logrus.WithError(err).Warn("Planilha indisponível; servindo a última base em cache")
			return s.cached, true, nil
		}
		logrus.WithError(err).Error("Planilha indisponível e sem cache")
		return []domain.Event{}, false, err
	}

	events := normalizing.Normalize(table)

	s.cached = events
	s.hasCache = true
	s.fetchedAt = time.Now()

	logrus.WithField("events", len(events)).Debug("Base da planilha atualizada")

	return events, false, nil
}

// Invalidate derruba o cache; o próximo acesso busca a planilha de novo
// (ação "atualizar agora" do painel).
func (s *PlanilhaService) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fetchedAt = time.Time{}
}
