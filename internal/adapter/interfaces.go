// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client-side transport used to talk to an
// agil-auth server.
//
// The primary abstraction is [ServerAdapter], which hides the HTTP/REST
// details from the authctl command-line tool. Error values defined in
// errors.go are mapped from HTTP responses by mapHTTPError so that callers
// can use [errors.Is] instead of inspecting status codes.
package adapter

import (
	"context"

	"github.com/MKhiriev/agil-auth/models"
)

// ServerAdapter defines communication with the agil-auth server.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to Session requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" when none is set.
	Token() string

	// Register creates an account and returns the new user id.
	Register(ctx context.Context, req models.RegisterRequest) (string, error)

	// Login authenticates with email and password. On success the issued
	// token is stored via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)

	// Session returns the claims of the stored token as seen by the server.
	Session(ctx context.Context) (models.Session, error)

	// Version returns the server's application version.
	Version(ctx context.Context) (string, error)

	// Health reports nil when the server and its store are reachable.
	Health(ctx context.Context) error
}
