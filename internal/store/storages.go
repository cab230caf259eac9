package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/agil-auth/internal/config"
	"github.com/MKhiriev/agil-auth/internal/logger"
)

// Storages groups the store-layer dependencies handed to the services.
type Storages struct {
	UserRepository UserRepository
	HealthChecker  HealthChecker

	closer func() error
}

// NewStorages selects the credential store backend from the DSN scheme:
//
//	postgres://, postgresql://  PostgreSQL (migrated on first contact)
//	sqlite://, sqlite:, file:   SQLite (migrated on first contact)
//	mongodb://, mongodb+srv://  MongoDB (unique email index ensured on first contact)
//	memory://                   process-local map
//
// Only a malformed or unsupported DSN is an error. A backend that cannot be
// reached yet is returned anyway: its calls fail with [ErrStoreUnavailable]
// and its schema setup is retried by later calls and health probes.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	storages, err := openStorages(cfg, log)
	if err != nil {
		return nil, err
	}

	warmUpCtx, cancel := context.WithTimeout(ctx, warmUpTimeout(cfg))
	defer cancel()

	if err = storages.HealthChecker.Ping(warmUpCtx); err != nil {
		log.Warn().Err(err).Msg("credential store is not reachable yet; serving StoreUnavailable until it is")
	}

	return storages, nil
}

func openStorages(cfg config.Storage, log *logger.Logger) (*Storages, error) {
	switch scheme := dsnScheme(cfg.DB.DSN); scheme {
	case "postgres", "postgresql":
		db, err := NewConnectPostgres(cfg.DB, log)
		if err != nil {
			return nil, err
		}
		return newSQLStorages(db, log), nil

	case "sqlite", "file":
		db, err := NewConnectSQLite(cfg.DB, log)
		if err != nil {
			return nil, err
		}
		return newSQLStorages(db, log), nil

	case "mongodb", "mongodb+srv":
		repo, err := NewConnectMongo(cfg.DB, log)
		if err != nil {
			return nil, err
		}
		return &Storages{UserRepository: repo, HealthChecker: repo, closer: repo.Close}, nil

	case "memory":
		log.Warn().Msg("using in-memory credential store; data is lost on restart")
		repo := NewMemoryUserRepository()
		return &Storages{UserRepository: repo, HealthChecker: repo}, nil

	default:
		return nil, fmt.Errorf("%w: scheme %q", ErrUnsupportedDSN, scheme)
	}
}

func newSQLStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, log),
		HealthChecker:  db,
		closer:         db.Close,
	}
}

func warmUpTimeout(cfg config.Storage) time.Duration {
	if cfg.Timeout > 0 {
		return cfg.Timeout
	}
	return config.DefaultStorageTimeout
}

// Close releases the backend connection, if any.
func (s *Storages) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer()
}

func dsnScheme(dsn string) string {
	scheme, _, found := strings.Cut(dsn, ":")
	if !found {
		return ""
	}
	return strings.ToLower(scheme)
}
