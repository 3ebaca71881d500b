// Package server provides the process lifecycle: it runs the game services,
// turns SIGINT and SIGTERM into context cancellation and stops everything in
// reverse order once the services are done.
package server

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"
)

// DefaultDrainTimeout bounds how long Run waits for services to return after
// cancellation.
const DefaultDrainTimeout = 10 * time.Second

// Service is a component run for the life of the process.
type Service interface {
	// Start runs the service and blocks until it finishes or ctx is done.
	Start(ctx context.Context) error
	// Stop releases the service's resources after Start has returned.
	Stop()
}

// FuncService adapts a start/stop function pair into the Service interface.
type FuncService struct {
	StartFn func(ctx context.Context) error
	StopFn  func()
}

// Start calls the underlying start function.
func (f *FuncService) Start(ctx context.Context) error { return f.StartFn(ctx) }

// Stop calls the underlying stop function, if any.
func (f *FuncService) Stop() {
	if f.StopFn != nil {
		f.StopFn()
	}
}

// Lifecycle runs services together. The first service to finish, fail or a
// termination signal ends the run for all of them.
type Lifecycle struct {
	logger       *zap.Logger
	services     []namedService
	mu           sync.Mutex
	drainTimeout time.Duration
}

type namedService struct {
	name    string
	service Service
}

type serviceExit struct {
	name string
	err  error
}

// NewLifecycle creates a new Lifecycle manager.
//
// Precondition: logger must be non-nil.
func NewLifecycle(logger *zap.Logger) *Lifecycle {
	return &Lifecycle{
		logger:       logger,
		drainTimeout: DefaultDrainTimeout,
	}
}

// SetDrainTimeout overrides DefaultDrainTimeout.
func (l *Lifecycle) SetDrainTimeout(d time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.drainTimeout = d
}

// Add registers a named service. Services are started in the order they are
// added and stopped in reverse order.
//
// Precondition: name must be non-empty; svc must be non-nil.
func (l *Lifecycle) Add(name string, svc Service) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.services = append(l.services, namedService{name: name, service: svc})
}

// Run starts all services and blocks until one of them returns, a termination
// signal arrives or ctx is done. The remaining services are then cancelled and
// given the drain timeout to return before every service is stopped.
//
// Postcondition: All services are stopped when this method returns. The
// returned error is the first service failure, if any.
func (l *Lifecycle) Run(ctx context.Context) error {
	start := time.Now()
	l.mu.Lock()
	services := append([]namedService(nil), l.services...)
	drain := l.drainTimeout
	l.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	exits := make(chan serviceExit, len(services))
	for _, ns := range services {
		go func() {
			l.logger.Debug("starting service", zap.String("service", ns.name))
			svcStart := time.Now()
			err := ns.service.Start(ctx)
			if err != nil && !errors.Is(err, context.Canceled) {
				l.logger.Error("service failed",
					zap.String("service", ns.name),
					zap.Error(err),
					zap.Duration("uptime", time.Since(svcStart)),
				)
				err = fmt.Errorf("service %s: %w", ns.name, err)
			} else {
				err = nil
			}
			exits <- serviceExit{name: ns.name, err: err}
		}()
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	var firstErr error
	running := len(services)
	select {
	case sig := <-sigCh:
		l.logger.Info("received signal, shutting down", zap.String("signal", sig.String()))
	case exit := <-exits:
		running--
		firstErr = exit.err
		l.logger.Debug("service finished", zap.String("service", exit.name), zap.Error(exit.err))
	case <-ctx.Done():
		l.logger.Info("context cancelled, shutting down")
	}
	cancel()

	timeout := time.After(drain)
	for running > 0 {
		select {
		case exit := <-exits:
			running--
			if firstErr == nil {
				firstErr = exit.err
			}
		case <-timeout:
			l.logger.Warn("services did not finish before the drain timeout",
				zap.Int("running", running),
				zap.Duration("timeout", drain),
			)
			running = 0
		}
	}

	l.shutdown(services)
	l.logger.Debug("shutdown complete", zap.Duration("total_uptime", time.Since(start)))
	return firstErr
}

func (l *Lifecycle) shutdown(services []namedService) {
	shutdownStart := time.Now()
	for i := len(services) - 1; i >= 0; i-- {
		ns := services[i]
		svcStart := time.Now()
		ns.service.Stop()
		l.logger.Debug("service stopped",
			zap.String("service", ns.name),
			zap.Duration("elapsed", time.Since(svcStart)),
		)
	}
	l.logger.Debug("all services stopped", zap.Duration("shutdown_elapsed", time.Since(shutdownStart)))
}
