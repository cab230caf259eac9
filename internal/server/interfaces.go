package server

import "context"

// Server defines the lifecycle contract for the transport servers managed by
// this package.
type Server interface {
	// RunServer starts every enabled transport and blocks until ctx is
	// cancelled or a transport fails, then shuts all of them down.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the servers and frees associated resources.
	Shutdown()
}
