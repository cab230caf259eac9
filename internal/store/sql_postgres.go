package store

import (
	"database/sql"
	"fmt"

	"github.com/MKhiriev/agil-auth/internal/config"
	"github.com/MKhiriev/agil-auth/internal/logger"
	"github.com/MKhiriev/agil-auth/migrations"
	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// NewConnectPostgres opens a PostgreSQL connection pool. Connecting is
// lazy: an unreachable server is not an error here; the schema is migrated
// on the first successful contact (see [DB.Ping]).
func NewConnectPostgres(cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	return newDB(conn, migrations.DialectPostgres, sq.Dollar, NewPostgresErrorClassifier(), log), nil
}
