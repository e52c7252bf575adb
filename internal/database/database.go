// Package database holds the connection plumbing shared by the document
// store adapters.
package database

import (
	"context"
	"time"

	"pathpilot/internal/domain"
	"pathpilot/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// DefaultConnectTimeout bounds a single connection attempt.
const DefaultConnectTimeout = 15 * time.Second

// ConnectFunc opens and verifies one physical connection.
type ConnectFunc[T any] func(ctx context.Context) (T, error)

// Connector establishes a handle lazily on first use and shares it for the
// life of the process. Concurrent first callers wait on one attempt; a
// failed attempt is not cached, so a later request may try again.
type Connector[T any] struct {
	name    string
	connect ConnectFunc[T]
	timeout time.Duration

	group singleflight.Group
	ready chan struct{}
	value T
}

// NewConnector creates a Connector. A non-positive timeout uses
// DefaultConnectTimeout.
func NewConnector[T any](name string, timeout time.Duration, connect ConnectFunc[T]) *Connector[T] {
	if timeout <= 0 {
		timeout = DefaultConnectTimeout
	}
	return &Connector[T]{
		name:    name,
		connect: connect,
		timeout: timeout,
		ready:   make(chan struct{}),
	}
}

// Get returns the shared handle, connecting if needed. The attempt runs on
// its own deadline so one caller giving up does not fail the others.
func (c *Connector[T]) Get(ctx context.Context) (T, error) {
	if v, ok := c.Current(); ok {
		return v, nil
	}

	ch := c.group.DoChan(c.name, func() (interface{}, error) {
		if v, ok := c.Current(); ok {
			return v, nil
		}
		attemptCtx, cancel := context.WithTimeout(context.Background(), c.timeout)
		defer cancel()

		start := time.Now()
		v, err := c.connect(attemptCtx)
		if err != nil {
			logger.Get().Error("Document store connection failed",
				zap.String("store", c.name),
				zap.Duration("elapsed", time.Since(start)),
				zap.Error(err))
			return nil, domain.NewStoreUnavailableError("failed to connect to "+c.name, err)
		}
		c.value = v
		close(c.ready)
		logger.Get().Info("Document store connected",
			zap.String("store", c.name),
			zap.Duration("elapsed", time.Since(start)))
		return v, nil
	})

	var zero T
	select {
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(T), nil
	case <-ctx.Done():
		return zero, domain.NewStoreUnavailableError("gave up waiting for "+c.name, ctx.Err())
	}
}

// Current returns the handle if a connection has been established.
func (c *Connector[T]) Current() (T, bool) {
	select {
	case <-c.ready:
		return c.value, true
	default:
		var zero T
		return zero, false
	}
}
