package store

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
)

// schemaGate runs a backend's one-time preparation (migrations, indexes)
// on first use. A failed attempt is retried by the next caller, so a store
// that is down at startup becomes usable once it is reachable again.
type schemaGate struct {
	mu      sync.Mutex
	done    atomic.Bool
	prepare func(ctx context.Context) error
}

func newSchemaGate(prepare func(ctx context.Context) error) *schemaGate {
	return &schemaGate{prepare: prepare}
}

// ensure returns nil once preparation has succeeded. Failures wrap
// [ErrStoreUnavailable]. A nil gate is always ready.
func (g *schemaGate) ensure(ctx context.Context) error {
	if g == nil || g.done.Load() {
		return nil
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.done.Load() {
		return nil
	}
	if err := g.prepare(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	g.done.Store(true)
	return nil
}

// ready reports whether preparation has already succeeded.
func (g *schemaGate) ready() bool {
	return g == nil || g.done.Load()
}
