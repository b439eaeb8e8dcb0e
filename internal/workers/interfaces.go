// Package workers runs the background jobs of prefsd.
//
// A [Worker] is started with a context and stopped explicitly; [Workers]
// starts and stops a set of them together.
package workers

import "context"

// Worker is a background job.
//
// Start must not block: implementations spawn their own goroutine, which
// exits when ctx is cancelled or Stop is called. Stop blocks until that
// goroutine has exited and is a no-op for a job that isn't running.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// Flusher makes pending preference writes durable.
// service.PreferenceService and *prefs.Prefs both satisfy it.
type Flusher interface {
	Flush(ctx context.Context) error
}

// FlusherFunc adapts a function to [Flusher], e.g. (*prefs.Manager).SaveAll
// so an autosave job keeps bound fields persisted.
type FlusherFunc func(ctx context.Context) error

func (f FlusherFunc) Flush(ctx context.Context) error {
	return f(ctx)
}
