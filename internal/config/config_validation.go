// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants the server relies on at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid*Configs sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}

	if cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}

	if cfg.App.Argon.Time == 0 || cfg.App.Argon.Memory == 0 || cfg.App.Argon.Threads == 0 {
		return fmt.Errorf("%w: argon2 parameters must be positive", ErrInvalidAppConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	if cfg.Storage.Timeout <= 0 {
		return fmt.Errorf("%w: storage timeout must be positive", ErrInvalidStorageConfigs)
	}

	if cfg.Server.BasePath != "" && !strings.HasPrefix(cfg.Server.BasePath, "/") {
		return fmt.Errorf("%w: base path must start with '/'", ErrInvalidServerConfigs)
	}

	if cfg.Workers.HealthInterval <= 0 {
		return fmt.Errorf("%w: health interval must be positive", ErrInvalidWorkerConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
