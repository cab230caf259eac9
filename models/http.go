// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,notblank"`
	Password string `json:"password" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	FullName string `json:"fullName" validate:"required"`

	// LegacyFullName accepts the snake_case key sent by older clients.
	// It is folded into FullName by the handler before validation.
	LegacyFullName string `json:"full_name,omitempty" validate:"-"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,notblank"`
	Password string `json:"password" validate:"required"`
}

// RegisterResponse is returned with 201 Created after a successful registration.
type RegisterResponse struct {
	UserID string `json:"userId"`
}

// LoginResponse is returned with 200 OK after a successful login.
type LoginResponse struct {
	Token string         `json:"token"`
	User  UserProjection `json:"user"`
}

// ErrorResponse is the body of every non-2xx JSON response.
// Error holds the error kind (e.g. "InvalidCredentials").
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse is returned by the liveness endpoints.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}
