package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"agrosikkim/config"
	"agrosikkim/internal/errors"
	"agrosikkim/internal/infra/persistence/migrations"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// Migrate applies the embedded goose migrations against the master
// connection. It opens its own plain database/sql connection because
// goose manages its own version bookkeeping outside GORM.
func Migrate(ctx context.Context, pgCfg *config.PostgresConfig, logger *slog.Logger) error {
	db, err := sql.Open("pgx", buildDSN(pgCfg, pgCfg.Master))
	if err != nil {
		return errors.Wrap(err, "open migration connection")
	}
	defer db.Close()

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "set goose dialect")
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return errors.Wrap(err, "apply migrations")
	}

	version, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return errors.Wrap(err, "read migration version")
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "database migrations applied",
		slog.Int64("version", version),
	)

	return nil
}
