// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks inbound account requests before they reach the
// credential store.
//
// Validator implementations are injected into services; callers pass the
// value and, optionally, the JSON names of the fields to check. Failures are
// reported as wrapped sentinel errors so that the service layer can fold
// them into a single invalid-input outcome.
package validators

import "context"

// Validator validates arbitrary input values.
type Validator interface {
	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
