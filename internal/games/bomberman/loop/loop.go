// Package loop drives a fixed-rate step function on its own goroutine.
package loop

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultFPS is the simulation rate.
const DefaultFPS = 60

// maxCatchUp bounds how many missed steps are replayed after a stall.
const maxCatchUp = 5

// Loop calls a step function once per 1/FPS of monotonic time. It knows
// nothing about what the step does.
type Loop struct {
	fps    int
	spin   bool
	step   func()
	logger *log.Logger

	mu      sync.Mutex
	started bool
	stopped bool
	cancel  context.CancelFunc

	done     chan struct{}
	doneOnce sync.Once

	ticks    atomic.Uint64
	measured atomic.Int64
}

// Option configures a Loop.
type Option func(*Loop)

// WithSpin selects busy-waiting between steps. When off, the loop sleeps
// until the next deadline.
func WithSpin(spin bool) Option {
	return func(l *Loop) { l.spin = spin }
}

// WithLogger sets the logger used for start and stop messages.
func WithLogger(logger *log.Logger) Option {
	return func(l *Loop) { l.logger = logger }
}

// New creates a stopped loop. fps <= 0 selects DefaultFPS.
func New(fps int, step func(), opts ...Option) *Loop {
	if fps <= 0 {
		fps = DefaultFPS
	}
	l := &Loop{
		fps:    fps,
		spin:   true,
		step:   step,
		logger: log.Default(),
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Interval returns the target time between steps.
func (l *Loop) Interval() time.Duration {
	return time.Second / time.Duration(l.fps)
}

// Start spawns the worker goroutine. It is a no-op if the loop was already
// started or stopped.
func (l *Loop) Start(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.started || l.stopped {
		return
	}
	l.started = true
	ctx, l.cancel = context.WithCancel(ctx)
	go l.run(ctx)
}

// Stop asks the worker to exit and returns immediately. Done is closed
// once the worker has returned.
func (l *Loop) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.stopped {
		return
	}
	l.stopped = true
	if l.cancel != nil {
		l.cancel()
		return
	}
	l.closeDone()
}

// Done is closed when the loop has fully stopped.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// Ticks returns the number of steps run so far.
func (l *Loop) Ticks() uint64 {
	return l.ticks.Load()
}

// FPS returns the steps counted during the last full second.
func (l *Loop) FPS() int {
	return int(l.measured.Load())
}

func (l *Loop) closeDone() {
	l.doneOnce.Do(func() { close(l.done) })
}

func (l *Loop) run(ctx context.Context) {
	defer l.closeDone()

	interval := l.Interval()
	l.logger.Debug("loop started", "fps", l.fps, "spin", l.spin)

	last := time.Now()
	second := last
	frames := 0

	var sleeper *time.Timer
	defer func() {
		if sleeper != nil {
			sleeper.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			l.logger.Debug("loop stopped", "ticks", l.ticks.Load())
			return
		default:
		}

		now := time.Now()
		if now.Sub(last) >= interval {
			last = last.Add(interval)
			if now.Sub(last) > maxCatchUp*interval {
				last = now
			}
			l.step()
			l.ticks.Add(1)
			frames++
		} else if l.spin {
			runtime.Gosched()
		} else {
			wait := last.Add(interval).Sub(now)
			if sleeper == nil {
				sleeper = time.NewTimer(wait)
			} else {
				sleeper.Reset(wait)
			}
			select {
			case <-ctx.Done():
				l.logger.Debug("loop stopped", "ticks", l.ticks.Load())
				return
			case <-sleeper.C:
			}
		}

		if now.Sub(second) >= time.Second {
			l.measured.Store(int64(frames))
			frames = 0
			second = now
		}
	}
}
