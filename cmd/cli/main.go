package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/marketplace-reports-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketplace-reports-api/infrastructure/sheets"
	"github.com/vfg2006/marketplace-reports-api/internal/config"
	"github.com/vfg2006/marketplace-reports-api/pkg/log"
)

func main() {
	_ = log.Setup(os.Stderr, logrus.InfoLevel.String(), log.FormatText)

	root := &cobra.Command{
		Use:           "marketplace-reports",
		Short:         "Ferramentas de linha de comando dos relatórios de marketplace",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newRunCmd(),
		newRemoveColumnsCmd(),
		newHashPasswordCmd(),
		newMigrateCmd(),
		newShopsCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig carrega a configuração e aplica o nível de log
func loadConfig() (*config.Config, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}

	if err := log.Setup(nil, cfg.App.LogLevel, cfg.App.LogFormat); err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
	}

	return cfg, nil
}

func openDatabase(ctx context.Context, cfg *config.Config) (*postgres.Connection, error) {
	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("erro ao conectar ao PostgreSQL: %w", err)
	}
	return conn, nil
}

func newPublisher(ctx context.Context, cfg *config.Config) (*sheets.Service, error) {
	backend, err := sheets.NewGoogleBackend(ctx, cfg.Sheets.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("erro ao inicializar o cliente do Google Sheets: %w", err)
	}
	return sheets.NewService(backend, cfg.Sheets.ShareEmail), nil
}
