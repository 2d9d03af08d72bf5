// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"slices"
	"sync"
	"time"
)

// Scheduler is a manual sfx.Scheduler. Nothing runs until the test calls
// RunPending or Advance.
type Scheduler struct {
	mu    sync.Mutex
	now   time.Duration
	seq   int
	tasks []task
	calls []time.Duration
}

type task struct {
	at  time.Duration
	seq int
	fn  func()
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

func (s *Scheduler) AfterFunc(d time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d = max(d, 0)
	s.calls = append(s.calls, d)
	s.tasks = append(s.tasks, task{at: s.now + d, seq: s.seq, fn: fn})
	s.seq++
}

// Scheduled is the number of AfterFunc calls so far.
func (s *Scheduler) Scheduled() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.calls)
}

// Delays lists the delay of every AfterFunc call in call order.
func (s *Scheduler) Delays() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.calls)
}

// Pending is the number of callbacks not yet run.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.tasks)
}

// RunPending runs the callbacks already due and returns how many ran.
func (s *Scheduler) RunPending() int {
	return s.Advance(0)
}

// Advance moves the clock forward by d, running every callback due by
// then in (due time, scheduling order). Callbacks scheduled while running
// are run too when they fall due in the window.
func (s *Scheduler) Advance(d time.Duration) int {
	s.mu.Lock()
	until := s.now + d
	s.mu.Unlock()

	ran := 0
	for {
		t, ok := s.popDue(until)
		if !ok {
			break
		}
		t.fn()
		ran++
	}

	s.mu.Lock()
	s.now = until
	s.mu.Unlock()

	return ran
}

func (s *Scheduler) popDue(until time.Duration) (task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	best := -1
	for i, t := range s.tasks {
		if t.at > until {
			continue
		}
		if best < 0 || t.at < s.tasks[best].at || (t.at == s.tasks[best].at && t.seq < s.tasks[best].seq) {
			best = i
		}
	}
	if best < 0 {
		return task{}, false
	}

	t := s.tasks[best]
	s.tasks = slices.Delete(s.tasks, best, best+1)
	if t.at > s.now {
		s.now = t.at
	}

	return t, true
}
