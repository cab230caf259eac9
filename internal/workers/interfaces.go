// Package workers provides background workers of the agil-auth server and a
// Workers aggregate that starts them together.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run must not block: implementations do any synchronous setup and then
// continue in their own goroutines until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}
