package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"yatube/migrations"
	"yatube/pkg/logger"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// NewMigrator builds a migrator over the embedded schema. dsn is a regular
// postgres:// URL.
func NewMigrator(dsn string) (*migrate.Migrate, error) {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return nil, fmt.Errorf("open migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, migrateURL(dsn))
	if err != nil {
		return nil, fmt.Errorf("init migrate: %w", err)
	}
	return m, nil
}

// MigrateUp applies every pending migration. An up-to-date schema is not an
// error.
func MigrateUp(ctx context.Context, dsn string) error {
	return runMigration(ctx, dsn, "up", func(m *migrate.Migrate) error { return m.Up() })
}

// MigrateDown rolls back the last migration.
func MigrateDown(ctx context.Context, dsn string) error {
	return runMigration(ctx, dsn, "down", func(m *migrate.Migrate) error { return m.Steps(-1) })
}

func runMigration(ctx context.Context, dsn, direction string, step func(*migrate.Migrate) error) error {
	log := logger.FromContext(ctx)

	m, err := NewMigrator(dsn)
	if err != nil {
		return err
	}
	defer func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			log.Warn("close migrator", "source_error", srcErr, "db_error", dbErr)
		}
	}()

	err = step(m)
	if errors.Is(err, migrate.ErrNoChange) {
		log.Info("migrations: no change", "direction", direction)
		return nil
	}
	if err != nil {
		return fmt.Errorf("migrate %s: %w", direction, err)
	}

	version, dirty, _ := m.Version()
	log.Info("migrations applied", "direction", direction, "version", version, "dirty", dirty)
	return nil
}

func migrateURL(dsn string) string {
	for _, prefix := range []string{"postgres://", "postgresql://"} {
		if rest, ok := strings.CutPrefix(dsn, prefix); ok {
			return "pgx5://" + rest
		}
	}
	return dsn
}
