package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketplace-reports-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketplace-reports-api/infrastructure/integrator"
	"github.com/vfg2006/marketplace-reports-api/infrastructure/migration"
	"github.com/vfg2006/marketplace-reports-api/infrastructure/repository"
	"github.com/vfg2006/marketplace-reports-api/infrastructure/sheets"
	"github.com/vfg2006/marketplace-reports-api/internal/api"
	"github.com/vfg2006/marketplace-reports-api/internal/config"
	"github.com/vfg2006/marketplace-reports-api/internal/scheduler"
	"github.com/vfg2006/marketplace-reports-api/internal/usecases/authenticating"
	"github.com/vfg2006/marketplace-reports-api/internal/usecases/registry"
	"github.com/vfg2006/marketplace-reports-api/internal/usecases/reporting"
	"github.com/vfg2006/marketplace-reports-api/pkg/log"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	if err := log.Setup(nil, cfg.App.LogLevel, cfg.App.LogFormat); err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
	}
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if err := migration.Migrate(ctx, pgConn); err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar o schema do banco")
	}

	shopRepo := repository.NewShopRepository(pgConn)

	backend, err := sheets.NewGoogleBackend(ctx, cfg.Sheets.CredentialsFile)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar o cliente do Google Sheets")
	}
	publisher := sheets.NewService(backend, cfg.Sheets.ShareEmail)

	jobQueue := scheduler.NewJobQueue(cfg.Jobs.MaxConcurrentJobs)

	cleanupService := scheduler.NewScratchCleanupService(cfg)
	if err := cleanupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar a limpeza de arquivos temporários")
	}

	reportService := reporting.NewService(shopRepo, integrator.NewFactory(cfg), publisher, jobQueue)
	registryService := registry.NewService(shopRepo)
	authenticator := authenticating.NewService(cfg.Auth)

	server, err := api.New(
		cfg,
		reportService,
		registryService,
		authenticator,
		jobQueue,
		cleanupService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger vale até a configuração ser lida
func configureLogger() {
	_ = log.Setup(nil, logrus.InfoLevel.String(), log.FormatText)
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
