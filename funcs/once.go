package funcs

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// OnceFunc is the wrapper returned by [Once].
type OnceFunc[A, R any] struct {
	fn     func(A) R
	logger *zap.Logger

	once   sync.Once
	called atomic.Bool
	result R
}

// Once wraps fn so that it runs at most once.
//
// The first Invoke calls fn with its argument and caches the result; every
// later Invoke returns that result without calling fn, whatever its
// argument. Concurrent first calls block until the single run of fn
// finishes. If fn panics, the wrapper still counts as called and later
// calls return the zero value.
//
//	initialize := funcs.Once(func(cfg Config) *Client { return dial(cfg) })
//	c1 := initialize.Invoke(cfgA)
//	c2 := initialize.Invoke(cfgB) // same client as c1
func Once[A, R any](fn func(A) R, opts ...Option) *OnceFunc[A, R] {
	o := buildOptions(opts)
	return &OnceFunc[A, R]{fn: fn, logger: o.Logger}
}

// Invoke calls the wrapped function on the first call and returns the cached
// result afterwards.
func (o *OnceFunc[A, R]) Invoke(arg A) R {
	o.once.Do(func() {
		o.called.Store(true)
		o.logger.Debug("once: invoking wrapped function")
		o.result = o.fn(arg)
	})
	return o.result
}

// Called reports whether the wrapped function has been invoked.
func (o *OnceFunc[A, R]) Called() bool {
	return o.called.Load()
}
