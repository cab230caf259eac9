package server

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/agil-auth/internal/config"
	"github.com/MKhiriev/agil-auth/internal/handler"
	"github.com/MKhiriev/agil-auth/internal/logger"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer

	shutdownOnce sync.Once

	logger *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := new(server)

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		servers.gRPCServer = newGRPCServer(handlers.GRPC, cfg, logger)
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	servers.logger = logger

	return servers, nil
}

func (s *server) RunServer(ctx context.Context) error {
	// check if any server was created
	if s.httpServer == nil && s.gRPCServer == nil {
		return errNoServersAreCreated
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errs := make(chan error, 2)
	var wg sync.WaitGroup
	launch := func(name string, run func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.logger.Info().Msgf("Launching %s server", name)
			if err := run(); err != nil {
				s.logger.Err(err).Msgf("%s server failed", name)
				errs <- err
				cancel()
			}
		}()
	}

	// launch all created servers
	if s.httpServer != nil {
		launch("HTTP", s.httpServer.RunServer)
	}
	if s.gRPCServer != nil {
		launch("GRPC", s.gRPCServer.RunServer)
	}

	<-ctx.Done()

	// finish started servers
	s.Shutdown()
	wg.Wait()
	close(errs)

	var err error
	for e := range errs {
		err = errors.Join(err, e)
	}
	if err == nil {
		s.logger.Info().Msg("server Shutdown gracefully")
	}
	return err
}

func (s *server) Shutdown() {
	s.shutdownOnce.Do(func() {
		// finish HTTP server
		if s.httpServer != nil {
			s.httpServer.Shutdown()
		}

		// finish gRPC server
		if s.gRPCServer != nil {
			s.gRPCServer.Shutdown()
		}
	})
}
