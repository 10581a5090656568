package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/intelimob/painel-comercial-api/infrastructure/database/postgres"
	"github.com/intelimob/painel-comercial-api/infrastructure/integrator/crm"
	"github.com/intelimob/painel-comercial-api/infrastructure/integrator/crm/crmclient"
	"github.com/intelimob/painel-comercial-api/infrastructure/integrator/planilha"
	"github.com/intelimob/painel-comercial-api/infrastructure/integrator/planilha/planilhaclient"
	"github.com/intelimob/painel-comercial-api/infrastructure/repository"
	"github.com/intelimob/painel-comercial-api/internal/api"
	"github.com/intelimob/painel-comercial-api/internal/config"
	"github.com/intelimob/painel-comercial-api/internal/scheduler"
	"github.com/intelimob/painel-comercial-api/internal/usecases/authenticating"
	"github.com/intelimob/painel-comercial-api/internal/usecases/reporting"
	"github.com/intelimob/painel-comercial-api/internal/usecases/snapshotting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	snapshotRepo := repository.NewFunnelSnapshotRepository(pgConn)

	authenticator := authenticating.NewService(cfg)

	planilhaClient := planilhaclient.NewClient(cfg)
	eventSource := planilha.New(cfg, planilhaClient)

	crmClient := crmclient.NewClient(cfg)
	leadSource := crm.New(cfg, crmClient)

	reportService := reporting.NewService(cfg, eventSource, leadSource)
	historian := snapshotting.NewService(snapshotRepo)

	snapshotSyncService := scheduler.NewFunnelSnapshotSyncService(
		reportService,
		snapshotRepo,
		cfg,
	)

	if err := snapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshots do funil")
	} else {
		logrus.Info("Agendador de snapshots do funil iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		reportService,
		historian,
		authenticator,
		snapshotSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
