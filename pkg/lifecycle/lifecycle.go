// Package lifecycle coordinates startup and shutdown hooks for long-running
// subsystems and tracks service readiness.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// Coordinator manages startup and shutdown hooks for the application lifecycle.
// Startup hooks may fail; failures are collected and reported through Err,
// and a coordinator with startup failures never reports ready.
type Coordinator struct {
	ctx        context.Context
	cancel     context.CancelFunc
	startupWg  sync.WaitGroup
	shutdownWg sync.WaitGroup

	mu     sync.RWMutex
	ready  bool
	errs   []error
	closed bool
}

// New creates a Coordinator with a cancellable context.
func New() *Coordinator {
	ctx, cancel := context.WithCancel(context.Background())
	return &Coordinator{
		ctx:    ctx,
		cancel: cancel,
	}
}

// Context returns the coordinator's context, cancelled on shutdown.
func (c *Coordinator) Context() context.Context {
	return c.ctx
}

// OnStartup registers a named hook to run concurrently during startup.
// A non-nil error marks the service as not ready.
func (c *Coordinator) OnStartup(name string, fn func(ctx context.Context) error) {
	c.startupWg.Go(func() {
		if err := fn(c.ctx); err != nil {
			c.mu.Lock()
			c.errs = append(c.errs, fmt.Errorf("%s: %w", name, err))
			c.mu.Unlock()
		}
	})
}

// OnShutdown registers a function to run concurrently during shutdown.
// Shutdown hooks should block on <-c.Context().Done() before executing cleanup.
func (c *Coordinator) OnShutdown(fn func()) {
	c.shutdownWg.Go(fn)
}

// Ready returns true after all startup hooks have completed without error.
func (c *Coordinator) Ready() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ready && len(c.errs) == 0 && !c.closed
}

// Err joins every startup hook failure, or returns nil.
func (c *Coordinator) Err() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return errors.Join(c.errs...)
}

// WaitForStartup blocks until all startup hooks have completed and sets the ready flag.
// It returns the joined startup failures.
func (c *Coordinator) WaitForStartup() error {
	c.startupWg.Wait()
	c.mu.Lock()
	c.ready = true
	c.mu.Unlock()
	return c.Err()
}

// Shutdown cancels the context and waits for shutdown hooks to complete
// within the given timeout.
func (c *Coordinator) Shutdown(timeout time.Duration) error {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()

	c.cancel()

	done := make(chan struct{})
	go func() {
		c.shutdownWg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-time.After(timeout):
		return fmt.Errorf("shutdown timeout after %v", timeout)
	}
}
