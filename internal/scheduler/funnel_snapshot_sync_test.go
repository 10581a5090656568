package scheduler

import (
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/intelimob/painel-comercial-api/infrastructure/repository/mocks"
)

func TestPruneHistory_RemoveForaDaRetencao(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockFunnelSnapshotRepository(ctrl)

	repo.EXPECT().DeleteOlderThan(24).Return(int64(3), nil)

	service := &FunnelSnapshotSyncService{
		config:       FunnelSnapshotSyncConfig{RetentionMonths: 24},
		snapshotRepo: repo,
	}

	service.pruneHistory()
}

func TestPruneHistory_DesligadaSemRetencao(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockFunnelSnapshotRepository(ctrl)

	// Sem janela configurada, nada pode ser apagado.
	service := &FunnelSnapshotSyncService{
		config:       FunnelSnapshotSyncConfig{RetentionMonths: 0},
		snapshotRepo: repo,
	}

	service.pruneHistory()
}

func TestPruneHistory_ErroDoBancoNaoInterrompe(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockFunnelSnapshotRepository(ctrl)

	repo.EXPECT().DeleteOlderThan(12).Return(int64(0), errors.New("conexão recusada"))

	service := &FunnelSnapshotSyncService{
		config:       FunnelSnapshotSyncConfig{RetentionMonths: 12},
		snapshotRepo: repo,
	}

	service.pruneHistory()
}
