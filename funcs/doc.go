// Package funcs provides function decorators: wrappers that change how and
// when a function is invoked.
//
// # Wrappers
//
// Each decorator returns a small object that owns the wrapper's private
// state and exposes an Invoke method. Wrappers built from the same function
// share nothing.
//
//   - [Once] runs the function on the first Invoke and replays its result.
//   - [Memoize] and [MemoizeArgs] cache results per distinct argument value.
//   - [Throttle] calls through on the leading edge and drops calls during a
//     fixed cooldown.
//   - [Delay] schedules one deferred call and returns immediately.
//
// Wrapped functions take a single argument A; pass a struct for several
// arguments and struct{} for none:
//
//	type span struct{ From, To int }
//	sum := funcs.Memoize(func(s span) int { return s.To - s.From })
//	n, err := sum.Invoke(span{1, 10})
//
// # Timing
//
// [Delay] and [Throttle] never sleep. They hand callbacks to a [Scheduler];
// the default [TimerScheduler] uses time.AfterFunc. Supply another one with
// [WithScheduler], for example to drive tests with virtual time.
//
// # Concurrency
//
// All wrappers are safe for concurrent use. Timer callbacks run on other
// goroutines, so wrapper state is guarded by a mutex.
//
// # Logging
//
// Decorators log debug events through zap when given [WithLogger]; by
// default they are silent.
package funcs
