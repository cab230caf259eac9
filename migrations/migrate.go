package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

// Goose dialect names accepted by Migrate.
const (
	DialectPostgres = "pgx"
	DialectSQLite   = "sqlite3"
)

//go:embed *.sql
var embedMigrations embed.FS

// Migrate applies all embedded migrations to db using the given goose
// dialect. The same migration files serve PostgreSQL and SQLite. ctx bounds
// the whole run, including the initial connection.
func Migrate(ctx context.Context, db *sql.DB, dialect string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
