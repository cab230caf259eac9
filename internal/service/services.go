package service

import (
	"github.com/MKhiriev/agil-auth/internal/config"
	"github.com/MKhiriev/agil-auth/internal/crypto"
	"github.com/MKhiriev/agil-auth/internal/logger"
	"github.com/MKhiriev/agil-auth/internal/store"
	"github.com/MKhiriev/agil-auth/models"
	"github.com/prometheus/client_golang/prometheus"
)

type Services struct {
	AuthService    AuthService
	AppInfoService AppInfoService
}

// NewServices wires the services over storages. Auth counters are
// registered with reg.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, build models.AppBuildInfo, reg prometheus.Registerer, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	hasher := crypto.NewArgon2Hasher(argon2Params(cfg.App.Argon), cfg.App.PasswordHashKey)
	authService := NewAuthMetricsService(reg).Wrap(
		NewAuthService(storages.UserRepository, hasher, cfg.App, cfg.Storage, logger),
	)

	return &Services{
		AuthService:    authService,
		AppInfoService: appInfoService,
	}, nil
}

func argon2Params(cfg config.Argon) crypto.Argon2Params {
	params := crypto.DefaultArgon2Params()
	if cfg.Time != 0 {
		params.Time = cfg.Time
	}
	if cfg.Memory != 0 {
		params.Memory = cfg.Memory
	}
	if cfg.Threads != 0 {
		params.Threads = cfg.Threads
	}
	return params
}
