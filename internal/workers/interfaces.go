// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// starting and stopping multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Start must not block: implementations spawn their own goroutines and keep
// running until ctx is cancelled or Stop is called. Stop blocks until the
// worker has fully exited and is a no-op for a worker that is not running.
//
// Example implementation:
//
//	type MyWorker struct{ cancel context.CancelFunc }
//
//	func (w *MyWorker) Start(ctx context.Context) {
//	    ctx, w.cancel = context.WithCancel(ctx)
//	    go process(ctx)
//	}
//
//	func (w *MyWorker) Stop() { w.cancel() }
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
