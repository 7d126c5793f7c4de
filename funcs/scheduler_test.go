package funcs_test

import (
	"sort"
	"sync"
	"time"
)

// manualScheduler runs callbacks when virtual time is advanced past their
// deadline.
type manualScheduler struct {
	mu      sync.Mutex
	now     time.Duration
	pending []pendingCall
}

type pendingCall struct {
	at time.Duration
	f  func()
}

func (s *manualScheduler) AfterFunc(d time.Duration, f func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(s.pending, pendingCall{at: s.now + d, f: f})
}

// Advance moves virtual time forward by d and runs every callback that has
// become due, in deadline order.
func (s *manualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	s.now += d
	sort.SliceStable(s.pending, func(i, j int) bool { return s.pending[i].at < s.pending[j].at })
	var due []pendingCall
	for len(s.pending) > 0 && s.pending[0].at <= s.now {
		due = append(due, s.pending[0])
		s.pending = s.pending[1:]
	}
	s.mu.Unlock()

	for _, c := range due {
		c.f()
	}
}

func (s *manualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}
