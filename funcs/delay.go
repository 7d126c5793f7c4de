package funcs

import (
	"time"

	"go.uber.org/zap"
)

// Delay schedules a single call fn(arg) to run no earlier than wait from now
// and returns immediately. Negative waits are treated as zero.
//
// There is no cancellation handle; once scheduled, the call happens.
//
//	funcs.Delay(func(msg string) { log.Println(msg) }, time.Second, "later")
func Delay[A any](fn func(A), wait time.Duration, arg A, opts ...Option) {
	o := buildOptions(opts)
	if wait < 0 {
		wait = 0
	}
	logger := o.Logger
	logger.Debug("delay: scheduled", zap.Duration("wait", wait))
	o.Scheduler.AfterFunc(wait, func() {
		logger.Debug("delay: firing", zap.Duration("wait", wait))
		fn(arg)
	})
}
