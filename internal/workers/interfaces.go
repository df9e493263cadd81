// Package workers runs the background jobs started once the server is bound.
//
// Workers run one after another in the order they were given; the first
// failure stops the rest, since later jobs (seeding) depend on earlier ones
// (migrating).
package workers

import "context"

// Worker is a background job.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Name() string { return "my-worker" }
//
//	func (w *MyWorker) Run(ctx context.Context) error {
//	    // do the work, honouring ctx
//	    return nil
//	}
type Worker interface {
	Name() string
	Run(ctx context.Context) error
}
