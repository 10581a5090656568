package snapshotting

import (
	"fmt"
	"time"

	"github.com/intelimob/painel-comercial-api/infrastructure/repository"
	"github.com/intelimob/painel-comercial-api/internal/domain"
	"github.com/intelimob/painel-comercial-api/pkg/utils"
)

// defaultHistoryMonths é a janela servida quando a consulta não pede meses.
const defaultHistoryMonths = 12

// Historian é a superfície de leitura do histórico de snapshots do funil.
// A planilha é editada no lugar e perde o passado; a série persistida é a
// única fonte para comparação mês a mês.
type Historian interface {
	// History lista os snapshots dos meses pedidos, em ordem cronológica.
	// Sem meses na consulta, serve os últimos doze meses-calendário.
	History(months []time.Time) ([]*domain.FunnelSnapshot, error)

	// Month devolve o snapshot de um único mês comercial, nil quando não há.
	Month(month time.Time) (*domain.FunnelSnapshot, error)
}

type Service struct {
	repo repository.FunnelSnapshotRepository
	now  func() time.Time
}

func NewService(repo repository.FunnelSnapshotRepository) Historian {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

func (s *Service) History(months []time.Time) ([]*domain.FunnelSnapshot, error) {
	if len(months) == 0 {
		months = s.recentWindow()
	}

	snapshots, err := s.repo.ListByMonths(months)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar o histórico do funil: %w", err)
	}

	return snapshots, nil
}

func (s *Service) Month(month time.Time) (*domain.FunnelSnapshot, error) {
	snapshot, err := s.repo.GetByMonth(month)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar o snapshot do mês: %w", err)
	}

	return snapshot, nil
}

// recentWindow devolve as âncoras dos últimos meses-calendário, terminando no
// mês corrente.
func (s *Service) recentWindow() []time.Time {
	anchor := utils.MonthStart(s.now())

	months := make([]time.Time, 0, defaultHistoryMonths)
	for i := defaultHistoryMonths - 1; i >= 0; i-- {
		months = append(months, anchor.AddDate(0, -i, 0))
	}

	return months
}
