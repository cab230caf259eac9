package server

import (
	"errors"
	"fmt"
	"net"

	"github.com/MKhiriev/agil-auth/internal/config"
	myGRPC "github.com/MKhiriev/agil-auth/internal/handler/grpc"
	"github.com/MKhiriev/agil-auth/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server  *grpc.Server
	address string

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer()
	handler.Register(server)

	return &grpcServer{
		handler: handler,
		server:  server,
		address: cfg.GRPCAddress,
		logger:  logger,
	}
}

func (g *grpcServer) RunServer() error {
	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		return fmt.Errorf("%w: gRPC on %s: %w", errListen, g.address, err)
	}

	g.logger.Info().Str("address", listener.Addr().String()).Msg("gRPC server listening")
	if err := g.server.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	return nil
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("GRPC server Shutdown")
	g.handler.Shutdown()
	g.server.GracefulStop()
}
