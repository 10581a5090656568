package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/intelimob/painel-comercial-api/infrastructure/repository"
	"github.com/intelimob/painel-comercial-api/internal/config"
	"github.com/intelimob/painel-comercial-api/internal/domain"
	"github.com/intelimob/painel-comercial-api/internal/usecases/reporting"
)

// FunnelSnapshotSyncConfig representa a configuração do agendador de snapshots
type FunnelSnapshotSyncConfig struct {
	CronSchedule    string
	SyncEnabled     bool
	MonthsBack      int
	RetentionMonths int
}

// FunnelSnapshotSyncService fotografa o funil dos meses comerciais recentes e
// persiste no banco. A planilha é editada no lugar e perde o passado; a série
// de snapshots preserva o histórico para comparação mês a mês.
type FunnelSnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	config              FunnelSnapshotSyncConfig
	reporter            reporting.Reporter
	snapshotRepo        repository.FunnelSnapshotRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewFunnelSnapshotSyncService cria uma nova instância do serviço de snapshots
func NewFunnelSnapshotSyncService(
	reporter reporting.Reporter,
	snapshotRepo repository.FunnelSnapshotRepository,
	appConfig *config.Config,
) *FunnelSnapshotSyncService {
	syncConfig := FunnelSnapshotSyncConfig{
		CronSchedule:    appConfig.SnapshotSync.CronSchedule,
		SyncEnabled:     appConfig.SnapshotSync.Enabled,
		MonthsBack:      2, // mês corrente e anterior; o resto já está congelado
		RetentionMonths: appConfig.SnapshotSync.RetentionMonths,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de snapshots do funil carregada")

	return &FunnelSnapshotSyncService{
		scheduler:    scheduler,
		config:       syncConfig,
		reporter:     reporter,
		snapshotRepo: snapshotRepo,
		syncRunning:  false,
	}
}

// Start inicia o agendador
func (s *FunnelSnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de snapshots do funil desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de snapshots do funil")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncSnapshots()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar snapshots do funil: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de snapshots do funil")
		s.scheduler.Stop()
	}()

	return nil
}

// syncSnapshots fotografa o funil dos meses comerciais mais recentes
func (s *FunnelSnapshotSyncService) syncSnapshots() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de snapshots já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando snapshots do funil por mês comercial")

	ctx := context.Background()

	months, err := s.recentMonths(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar meses comerciais para snapshot")
		return
	}

	if len(months) == 0 {
		logrus.Info("Nenhum mês comercial encontrado na base para snapshot")
		return
	}

	saved := 0
	for _, month := range months {
		if err := s.snapshotMonth(ctx, month); err != nil {
			logrus.WithError(err).WithField("month", month.Format("01-2006")).
				Error("Erro ao fotografar o funil do mês")
			continue
		}
		saved++
	}

	s.pruneHistory()

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"months":   len(months),
		"saved":    saved,
	}).Info("Snapshots do funil concluídos")

	s.lastSyncCompletedAt = time.Now()
}

// pruneHistory remove os snapshots fora da janela de retenção configurada.
func (s *FunnelSnapshotSyncService) pruneHistory() {
	if s.config.RetentionMonths <= 0 {
		return
	}

	removed, err := s.snapshotRepo.DeleteOlderThan(s.config.RetentionMonths)
	if err != nil {
		logrus.WithError(err).Error("Erro ao aplicar a retenção de snapshots do funil")
		return
	}

	if removed > 0 {
		logrus.WithFields(logrus.Fields{
			"removed":          removed,
			"retention_months": s.config.RetentionMonths,
		}).Info("Snapshots antigos removidos pela retenção")
	}
}

// recentMonths devolve as âncoras dos meses comerciais mais recentes da base
func (s *FunnelSnapshotSyncService) recentMonths(ctx context.Context) ([]time.Time, error) {
	periods, err := s.reporter.AvailablePeriods(ctx)
	if err != nil {
		return nil, err
	}

	available := periods.Periods
	if len(available) > s.config.MonthsBack {
		available = available[len(available)-s.config.MonthsBack:]
	}

	months := make([]time.Time, 0, len(available))
	for _, period := range available {
		anchor, err := time.Parse("01-2006", period)
		if err != nil {
			logrus.WithField("period", period).Warn("Período inválido na base, ignorando")
			continue
		}
		months = append(months, time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, time.UTC))
	}

	return months, nil
}

// snapshotMonth agrega o funil de um mês comercial e persiste o resultado
func (s *FunnelSnapshotSyncService) snapshotMonth(ctx context.Context, month time.Time) error {
	filters := domain.ReportFilters{
		PeriodMode: domain.PeriodByCommercialMonth,
		Months:     []time.Time{month},
	}

	response, err := s.reporter.Funnel(ctx, filters)
	if err != nil {
		return fmt.Errorf("erro ao agregar funil do mês: %w", err)
	}

	if response.Banner != "" {
		return fmt.Errorf("fonte indisponível, snapshot do mês adiado")
	}

	snapshot := &domain.FunnelSnapshot{
		Month:   month,
		Metrics: response.Metrics,
	}

	if err := s.snapshotRepo.SaveOrUpdate(snapshot); err != nil {
		return fmt.Errorf("erro ao salvar snapshot: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"month": month.Format("01-2006"),
		"sales": response.Metrics.Sales,
		"stale": response.Stale,
	}).Info("Snapshot do funil salvo com sucesso")

	return nil
}

// TriggerManualSync inicia manualmente uma rodada de snapshots
func (s *FunnelSnapshotSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de snapshots já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando rodada manual de snapshots do funil")
	go s.syncSnapshots()
}

// GetStatus retorna o status atual da sincronização
func (s *FunnelSnapshotSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
