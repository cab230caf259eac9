// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/agil-auth/internal/config"
	"github.com/MKhiriev/agil-auth/internal/logger"
	"github.com/MKhiriev/agil-auth/internal/store"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HealthProbe periodically pings the credential store and publishes the
// result to subscribers (the gRPC health service) and to readers of
// Serving (GET /health).
type HealthProbe struct {
	checker  store.HealthChecker
	interval time.Duration
	timeout  time.Duration

	serving atomic.Bool
	// probed is false until the first probe completes, so that the first
	// result is always published.
	probed bool

	mu          sync.Mutex
	subscribers []func(serving bool)

	storeUp prometheus.Gauge

	logger *logger.Logger
}

// NewHealthProbe builds a probe over checker. Each ping is bounded by the
// storage timeout; reg receives the agil_store_up gauge (nil skips
// registration).
func NewHealthProbe(checker store.HealthChecker, workers config.Workers, storage config.Storage, reg prometheus.Registerer, logger *logger.Logger) *HealthProbe {
	interval := workers.HealthInterval
	if interval <= 0 {
		interval = config.DefaultHealthInterval
	}
	timeout := storage.Timeout
	if timeout <= 0 {
		timeout = config.DefaultStorageTimeout
	}

	return &HealthProbe{
		checker:  checker,
		interval: interval,
		timeout:  timeout,
		storeUp: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "agil_store_up",
			Help: "Whether the last credential store ping succeeded (1) or not (0)",
		}),
		logger: logger,
	}
}

// Subscribe registers fn to be called with every change of the serving
// state. fn is called immediately with the current state once a probe has
// completed.
func (p *HealthProbe) Subscribe(fn func(serving bool)) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.subscribers = append(p.subscribers, fn)
	if p.probed {
		fn(p.serving.Load())
	}
}

// Serving reports the result of the last probe.
func (p *HealthProbe) Serving() bool {
	return p.serving.Load()
}

// Run probes once synchronously and then every interval until ctx is done.
func (p *HealthProbe) Run(ctx context.Context) {
	p.Probe(ctx)

	go func() {
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				p.logger.Info().Msg("health probe stopped")
				return
			case <-ticker.C:
				p.Probe(ctx)
			}
		}
	}()
}

// Probe pings the store once and publishes the result if it changed.
func (p *HealthProbe) Probe(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, p.timeout)
	err := p.checker.Ping(pingCtx)
	cancel()

	serving := err == nil
	if serving {
		p.storeUp.Set(1)
	} else {
		p.storeUp.Set(0)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	changed := !p.probed || p.serving.Load() != serving
	p.serving.Store(serving)
	p.probed = true
	if !changed {
		return
	}

	if serving {
		p.logger.Info().Msg("credential store is reachable")
	} else {
		p.logger.Warn().Err(err).Msg("credential store is unreachable")
	}
	for _, fn := range p.subscribers {
		fn(serving)
	}
}
