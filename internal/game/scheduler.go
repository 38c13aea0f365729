package game

import (
	"sync"
	"time"
)

// Scheduler runs f once after d. The returned function cancels the call and
// reports whether it was still pending.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) (stop func() bool)
}

// RealScheduler schedules on the runtime timer.
type RealScheduler struct{}

// AfterFunc implements Scheduler.
func (RealScheduler) AfterFunc(d time.Duration, f func()) func() bool {
	return time.AfterFunc(d, f).Stop
}

// timer holds at most one pending transition for its owner.
// schedule and cancel must be called with the owner's mutex held.
type timer struct {
	sched Scheduler
	gen   uint64
	stop  func() bool
}

// schedule replaces any pending transition with fn, run under mu after d.
// notify is called after mu is released.
func (t *timer) schedule(mu sync.Locker, d time.Duration, fn func(), notify func()) {
	t.cancel()
	gen := t.gen

	t.stop = t.sched.AfterFunc(d, func() {
		mu.Lock()
		if gen != t.gen {
			mu.Unlock()
			return
		}
		t.stop = nil
		fn()
		mu.Unlock()

		if notify != nil {
			notify()
		}
	})
}

// cancel drops the pending transition. A callback that already started
// waiting on the mutex sees a stale generation and returns.
func (t *timer) cancel() {
	t.gen++
	if t.stop != nil {
		t.stop()
		t.stop = nil
	}
}

func (t *timer) pending() bool {
	return t.stop != nil
}
