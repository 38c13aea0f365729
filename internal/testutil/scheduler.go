// Package testutil provides deterministic helpers for tests.
package testutil

import (
	"sort"
	"sync"
	"time"
)

// ManualScheduler is a scheduler whose clock only moves when Advance is
// called. Due callbacks run synchronously on the caller's goroutine, in
// deadline order.
//
// Thread-safety: all methods are safe for concurrent use; callbacks run
// without the scheduler's lock held.
type ManualScheduler struct {
	mu    sync.Mutex
	now   time.Duration
	seq   int
	tasks []*manualTask
}

type manualTask struct {
	at      time.Duration
	seq     int
	fn      func()
	stopped bool
}

// NewManualScheduler creates a scheduler at time zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// AfterFunc registers f to run once the clock reaches now+d.
func (s *ManualScheduler) AfterFunc(d time.Duration, f func()) func() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	t := &manualTask{at: s.now + d, seq: s.seq, fn: f}
	s.tasks = append(s.tasks, t)

	return func() bool {
		s.mu.Lock()
		defer s.mu.Unlock()

		if t.stopped {
			return false
		}
		t.stopped = true
		return true
	}
}

// Advance moves the clock forward by d and runs every callback that became due.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.now + d
	s.mu.Unlock()

	for {
		t := s.popDue(target)
		if t == nil {
			break
		}
		t.fn()
	}

	s.mu.Lock()
	s.now = target
	s.mu.Unlock()
}

// Pending returns the number of callbacks that have neither run nor been stopped.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, t := range s.tasks {
		if !t.stopped {
			n++
		}
	}
	return n
}

// Now returns the scheduler's current time offset.
func (s *ManualScheduler) Now() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// popDue removes and returns the earliest live task due at or before target.
// The clock is moved to the task's deadline so that callbacks scheduling new
// tasks measure from the moment they fired.
func (s *ManualScheduler) popDue(target time.Duration) *manualTask {
	s.mu.Lock()
	defer s.mu.Unlock()

	live := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.stopped {
			live = append(live, t)
		}
	}
	s.tasks = live

	sort.Slice(s.tasks, func(i, j int) bool {
		if s.tasks[i].at != s.tasks[j].at {
			return s.tasks[i].at < s.tasks[j].at
		}
		return s.tasks[i].seq < s.tasks[j].seq
	})

	if len(s.tasks) == 0 || s.tasks[0].at > target {
		return nil
	}

	t := s.tasks[0]
	s.tasks = s.tasks[1:]
	t.stopped = true
	if t.at > s.now {
		s.now = t.at
	}
	return t
}
