package migration

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketplace-reports-api/infrastructure/database/postgres"
)

var statements = []string{
	`CREATE TABLE IF NOT EXISTS shops (
		id              VARCHAR(21) PRIMARY KEY,
		name            TEXT NOT NULL UNIQUE,
		marketplace     TEXT NOT NULL,
		perf_key        TEXT NOT NULL DEFAULT '',
		perf_secret     TEXT NOT NULL DEFAULT '',
		client_id       TEXT NOT NULL DEFAULT '',
		client_key      TEXT NOT NULL DEFAULT '',
		spreadsheet_url TEXT,
		created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS shops_marketplace_idx ON shops (marketplace)`,
}

// Migrate cria as tabelas do cadastro de lojas. Pode ser executado várias vezes.
func Migrate(ctx context.Context, conn postgres.Conn) error {
	err := conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for i, statement := range statements {
			if _, err := tx.ExecContext(ctx, statement); err != nil {
				return errors.Wrapf(err, "erro ao executar migração %d", i+1)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	logrus.WithField("statements", len(statements)).Info("Migrações aplicadas")
	return nil
}
