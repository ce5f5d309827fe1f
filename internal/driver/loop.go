package driver

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/riteshkukreja/sine-wave/internal/logging"
)

// DefaultInterval is roughly 30 frames per second.
const DefaultInterval = 33 * time.Millisecond

// ErrStopped is returned by Run after Stop.
var ErrStopped = errors.New("driver: loop stopped")

// Loop calls a tick function at a fixed interval on a single goroutine.
type Loop struct {
	interval time.Duration
	tick     func() error
	logger   *zap.Logger

	frames   atomic.Uint64
	stopOnce sync.Once
	stop     chan struct{}
}

// NewLoop returns a stopped loop. A non-positive interval uses
// DefaultInterval and a nil logger discards output.
func NewLoop(interval time.Duration, tick func() error, logger *zap.Logger) *Loop {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &Loop{
		interval: interval,
		tick:     tick,
		logger:   logger,
		stop:     make(chan struct{}),
	}
}

// Run ticks until ctx is done, Stop is called or a tick fails. A loop can
// only be run once.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	l.logger.Info("frame loop started", zap.Duration("interval", l.interval))
	defer func() {
		l.logger.Info("frame loop finished", zap.Uint64("frames", l.frames.Load()))
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.stop:
			return ErrStopped
		case <-ticker.C:
			if err := l.tick(); err != nil {
				l.logger.Error("frame tick failed", zap.Error(err), zap.Uint64("frame", l.frames.Load()))
				return err
			}
			l.frames.Add(1)
		}
	}
}

// Stop ends Run after the current tick. It is safe to call more than once
// and from any goroutine.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}

// Frames reports how many ticks have completed.
func (l *Loop) Frames() uint64 {
	return l.frames.Load()
}
