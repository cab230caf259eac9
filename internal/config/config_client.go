package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the authctl transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the agil-auth server.
	HTTPAddress string
	// BasePath is the prefix of the auth routes on that server.
	BasePath string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientConfig is the configuration of the authctl command-line client,
// assembled from [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// LogLevel is the minimum log level of the console logger.
	LogLevel string
}

// GetClientConfig builds and validates a client-specific config view.
//
// Command-line arguments belong to the client's subcommands, so only
// environment variables, the JSON file and defaults are consulted.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			BasePath:       cfg.Server.BasePath,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		LogLevel: cfg.App.LogLevel,
	}
}
