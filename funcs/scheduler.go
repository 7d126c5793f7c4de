package funcs

import "time"

// Scheduler runs a callback no earlier than a given delay from now.
//
// Delay and Throttle only depend on this contract; substitute an
// implementation driven by virtual time to test them deterministically.
type Scheduler interface {
	AfterFunc(d time.Duration, f func())
}

// TimerScheduler schedules callbacks with [time.AfterFunc]. Callbacks run on
// their own goroutine.
type TimerScheduler struct{}

// AfterFunc implements [Scheduler].
func (TimerScheduler) AfterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, f)
}
