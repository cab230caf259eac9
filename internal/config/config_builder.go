package config

import (
	"errors"
	"fmt"
	"time"

	"dario.cat/mergo"
)

// Default values applied by withDefaults.
const (
	DefaultHTTPAddress     = ":8000"
	DefaultTokenIssuer     = "agil-auth"
	DefaultTokenDuration   = 24 * time.Hour
	DefaultStorageTimeout  = 5 * time.Second
	DefaultDBName          = "agil"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultHealthInterval  = 15 * time.Second
	DefaultAdapterAddress  = "http://localhost:8000"
	DefaultAdapterTimeout  = 10 * time.Second
	DefaultArgonTime       = 1
	DefaultArgonMemory     = 64 * 1024
	DefaultArgonThreads    = 4
	DefaultCORSAllowOrigin = "*"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

// build merges the collected layers in order; later layers override
// non-zero fields of earlier ones.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, nil
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flags, err := parseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, jsonCfg)

	return b
}

// withDefaults prepends the default layer so that every other source
// overrides it.
func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append([]*StructuredConfig{defaults()}, b.configs...)
	return b
}

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
			Argon: Argon{
				Time:    DefaultArgonTime,
				Memory:  DefaultArgonMemory,
				Threads: DefaultArgonThreads,
			},
		},
		Storage: Storage{
			DB:      DB{Name: DefaultDBName},
			Timeout: DefaultStorageTimeout,
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
			CORSOrigins:    []string{DefaultCORSAllowOrigin},
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: DefaultAdapterTimeout,
		},
		Workers: Workers{
			HealthInterval: DefaultHealthInterval,
		},
	}
}
