package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/agil-auth/internal/logger"
	"github.com/MKhiriev/agil-auth/migrations"
	sq "github.com/Masterminds/squirrel"
)

// ErrorClassificator inspects driver errors for a particular SQL dialect.
type ErrorClassificator interface {
	// Classify reports whether the failed operation may succeed on retry.
	Classify(err error) ErrorClassification
	// IsUniqueViolation reports whether err is a unique constraint violation.
	IsUniqueViolation(err error) bool
}

// DB wraps a *sql.DB together with the dialect-specific pieces the
// repositories need: the migration dialect, the placeholder format and the
// error classifier.
type DB struct {
	*sql.DB
	dialect            string
	placeholder        sq.PlaceholderFormat
	errorClassificator ErrorClassificator
	logger             *logger.Logger

	// schema migrates the database on first successful contact. Nil means
	// the schema is managed elsewhere.
	schema *schemaGate
}

func newDB(conn *sql.DB, dialect string, placeholder sq.PlaceholderFormat, classifier ErrorClassificator, log *logger.Logger) *DB {
	db := &DB{
		DB:                 conn,
		dialect:            dialect,
		placeholder:        placeholder,
		errorClassificator: classifier,
		logger:             log,
	}
	db.schema = newSchemaGate(db.migrate)
	return db
}

// migrate pings the server and applies the embedded schema migrations for
// the connection's dialect.
func (db *DB) migrate(ctx context.Context) error {
	if err := db.PingContext(ctx); err != nil {
		return err
	}
	if err := migrations.Migrate(ctx, db.DB, db.dialect); err != nil {
		return err
	}

	db.logger.Info().Str("dialect", db.dialect).Msg("database schema is up to date")
	return nil
}

// Ping implements [HealthChecker]. Pending migrations are retried first, so
// the store only reports healthy once it is usable.
func (db *DB) Ping(ctx context.Context) error {
	if err := db.schema.ensure(ctx); err != nil {
		return err
	}
	return db.PingContext(ctx)
}

func (db *DB) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.placeholder)
}
