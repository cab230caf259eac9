// Package server runs the agil-auth transports.
//
// The HTTP API and the optional gRPC health endpoint share one lifecycle:
// both start together, and both drain and stop when the run context is
// cancelled or either of them fails to serve.
package server
