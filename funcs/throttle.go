package funcs

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Throttled is the wrapper returned by [Throttle].
type Throttled[A, R any] struct {
	fn        func(A) R
	wait      time.Duration
	logger    *zap.Logger
	scheduler Scheduler

	mu      sync.Mutex
	cooling bool
	last    R
}

// Throttle wraps fn with a leading-edge cooldown.
//
// A call made outside the cooldown invokes fn immediately, records its
// result and starts a cooldown of length wait. Calls made during the
// cooldown are dropped, not queued: fn is not called and the most recently
// recorded result is returned. The cooldown is a single flag cleared by a
// scheduled callback, not a sliding window over call timestamps.
//
//	save := funcs.Throttle(persist, 100*time.Millisecond)
//	save.Invoke(doc) // persists
//	save.Invoke(doc) // dropped, returns the first result
func Throttle[A, R any](fn func(A) R, wait time.Duration, opts ...Option) *Throttled[A, R] {
	o := buildOptions(opts)
	if wait < 0 {
		wait = 0
	}
	return &Throttled[A, R]{
		fn:        fn,
		wait:      wait,
		logger:    o.Logger,
		scheduler: o.Scheduler,
	}
}

// Invoke calls the wrapped function unless a cooldown is running.
func (t *Throttled[A, R]) Invoke(arg A) R {
	t.mu.Lock()
	if t.cooling {
		last := t.last
		t.mu.Unlock()
		t.logger.Debug("throttle: call dropped during cooldown")
		return last
	}
	t.cooling = true
	t.mu.Unlock()

	defer t.scheduler.AfterFunc(t.wait, t.endCooldown)

	t.logger.Debug("throttle: invoking wrapped function", zap.Duration("cooldown", t.wait))
	res := t.fn(arg)

	t.mu.Lock()
	t.last = res
	t.mu.Unlock()
	return res
}

// Cooling reports whether a cooldown is running.
func (t *Throttled[A, R]) Cooling() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cooling
}

func (t *Throttled[A, R]) endCooldown() {
	t.mu.Lock()
	t.cooling = false
	t.mu.Unlock()
	t.logger.Debug("throttle: cooldown ended")
}
