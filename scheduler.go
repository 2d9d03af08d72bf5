// SPDX-License-Identifier: EPL-2.0

package sfx

import (
	"sync"
	"time"
)

// Scheduler runs deferred callbacks. Implementations must run callbacks
// one at a time, and callbacks with equal due times in the order they
// were scheduled.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func())
}

// EventLoop is a Scheduler backed by a single goroutine. Callbacks never
// run concurrently with each other.
//
// AfterFunc with a zero or negative delay queues fn immediately. A positive
// delay queues fn when a timer fires, so a zero-delay callback scheduled
// first always runs before a delayed one scheduled after it.
type EventLoop struct {
	mu      sync.Mutex
	pending []func()
	timers  map[*time.Timer]struct{}
	closed  bool

	wake chan struct{}
	done chan struct{}
	wg   sync.WaitGroup
}

func NewEventLoop() *EventLoop {
	l := &EventLoop{
		timers: make(map[*time.Timer]struct{}),
		wake:   make(chan struct{}, 1),
		done:   make(chan struct{}),
	}

	l.wg.Add(1)
	go l.run()

	return l
}

func (l *EventLoop) AfterFunc(d time.Duration, fn func()) {
	if d <= 0 {
		l.post(fn)
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return
	}

	var t *time.Timer
	t = time.AfterFunc(d, func() {
		l.mu.Lock()
		delete(l.timers, t)
		l.mu.Unlock()

		l.post(fn)
	})
	l.timers[t] = struct{}{}
}

// Close stops the loop. Queued callbacks that have not started are
// dropped and pending timers are cancelled. Close waits for a running
// callback to return, so it must not be called from inside one.
func (l *EventLoop) Close() error {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return nil
	}
	l.closed = true
	l.pending = nil
	for t := range l.timers {
		t.Stop()
	}
	clear(l.timers)
	l.mu.Unlock()

	close(l.done)
	l.wg.Wait()

	return nil
}

func (l *EventLoop) post(fn func()) {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.pending = append(l.pending, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

func (l *EventLoop) run() {
	defer l.wg.Done()

	for {
		select {
		case <-l.done:
			return
		case <-l.wake:
		}

		for {
			fn, ok := l.next()
			if !ok {
				break
			}
			fn()
		}
	}
}

func (l *EventLoop) next() (func(), bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed || len(l.pending) == 0 {
		return nil, false
	}

	fn := l.pending[0]
	l.pending[0] = nil
	l.pending = l.pending[1:]

	return fn, true
}
