package funcs

import "go.uber.org/zap"

// Options configures a decorator.
type Options struct {
	// Logger receives debug events (cache hits, dropped calls, timer
	// firings). Defaults to a no-op logger.
	Logger *zap.Logger

	// Scheduler runs deferred callbacks for Delay and Throttle.
	// Defaults to [TimerScheduler].
	Scheduler Scheduler
}

// DefaultOptions returns the [Options] used when no [Option] is supplied.
func DefaultOptions() Options {
	return Options{
		Logger:    zap.NewNop(),
		Scheduler: TimerScheduler{},
	}
}

// Option is a functional option for configuring a decorator.
type Option func(*Options)

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}

// WithScheduler sets the scheduler. A nil scheduler is ignored.
func WithScheduler(s Scheduler) Option {
	return func(o *Options) {
		if s != nil {
			o.Scheduler = s
		}
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
