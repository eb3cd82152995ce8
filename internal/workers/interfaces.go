// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that starts and
// stops multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
// Start launches the worker's processing and returns immediately; Stop
// blocks until the worker has fully exited.
//
// Implementations are expected to spawn goroutines internally and honor
// cancellation of the context passed to Start.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
