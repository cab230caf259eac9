package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/agil-auth/internal/config"
	"github.com/MKhiriev/agil-auth/internal/logger"
	"github.com/MKhiriev/agil-auth/migrations"
	sq "github.com/Masterminds/squirrel"
	"github.com/mattn/go-sqlite3"
)

// NewConnectSQLite opens an SQLite database. Accepted DSN forms:
//
//	sqlite:///var/lib/agil/auth.db
//	sqlite://:memory:
//	file:auth.db?cache=shared
//
// SQLite serialises writers, so the pool is limited to one connection; this
// also keeps a ":memory:" database alive and shared for the process lifetime.
// Like PostgreSQL, the schema is migrated on first use.
func NewConnectSQLite(cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("sqlite3", sqliteDSN(cfg.DSN))
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}
	conn.SetMaxOpenConns(1)

	return newDB(conn, migrations.DialectSQLite, sq.Question, NewSQLiteErrorClassifier(), log), nil
}

func sqliteDSN(dsn string) string {
	if rest, ok := strings.CutPrefix(dsn, "sqlite://"); ok {
		return rest
	}
	if rest, ok := strings.CutPrefix(dsn, "sqlite:"); ok {
		return rest
	}
	return dsn
}

// SQLiteErrorClassifier implements [ErrorClassificator] for SQLite.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier] ready for use.
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator]. Busy and locked databases are
// retryable; everything else is not.
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return NonRetryable
	}

	switch sqliteErr.Code {
	case sqlite3.ErrBusy, sqlite3.ErrLocked:
		return Retryable
	}

	return NonRetryable
}

// IsUniqueViolation implements [ErrorClassificator].
func (c *SQLiteErrorClassifier) IsUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}

	return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
		sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
}
