package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/agil-auth/internal/config"
	"github.com/MKhiriev/agil-auth/internal/handler"
	"github.com/MKhiriev/agil-auth/internal/logger"
	"github.com/MKhiriev/agil-auth/internal/server"
	"github.com/MKhiriev/agil-auth/internal/service"
	"github.com/MKhiriev/agil-auth/internal/store"
	"github.com/MKhiriev/agil-auth/internal/workers"
	"github.com/MKhiriev/agil-auth/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("agil-auth-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Warn().Err(err).Str("level", cfg.App.LogLevel).Msg("unknown log level, keeping default")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	services, err := service.NewServices(storages, *cfg, buildInfo, registry, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	if cfg.App.SeedTestUser {
		if err = service.SeedTestUser(ctx, services.AuthService); err != nil {
			log.Err(err).Msg("error seeding test user")
		}
	}

	probe := workers.NewHealthProbe(storages.HealthChecker, cfg.Workers, cfg.Storage, registry, log)
	workers.NewWorkers(probe).Run(ctx)

	handlers, err := handler.NewHandlers(services, probe, cfg.Server, registry, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
	}
}
