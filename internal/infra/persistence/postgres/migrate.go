package postgres

import (
	"database/sql"
	"log/slog"

	"cryptoinsight/internal/errors"
	"cryptoinsight/internal/infra/persistence/migrations"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// applyMigrations brings the schema up to date from the embedded migration
// files, so a fresh database needs no external migration step.
func applyMigrations(sqlDB *sql.DB, logger *slog.Logger) error {
	driver, err := migratepg.WithInstance(sqlDB, &migratepg.Config{})
	if err != nil {
		return errors.Wrap(err, "failed to create migration driver")
	}

	source, err := iofs.New(migrations.Migrations, ".")
	if err != nil {
		return errors.Wrap(err, "failed to open embedded migrations")
	}

	instance, err := migrate.NewWithInstance("iofs", source, "", driver)
	if err != nil {
		return errors.Wrap(err, "failed to create migrator")
	}

	if err := instance.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Debug("Database schema already up to date")

			return nil
		}

		return errors.Wrap(err, "failed to apply migrations")
	}

	logger.Info("Database schema migrations applied")

	return nil
}
