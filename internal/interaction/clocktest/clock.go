// Package clocktest provides a manually advanced interaction.Clock.
package clocktest

import (
	"sort"
	"sync"
	"time"

	"vado.sa/internal/interaction"
)

// Clock fires scheduled callbacks only when Advance is called
type Clock struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*timer
}

type timer struct {
	clock   *Clock
	at      time.Duration
	f       func()
	stopped bool
}

var _ interaction.Clock = (*Clock)(nil)

// New returns a clock at time zero
func New() *Clock { return &Clock{} }

// AfterFunc schedules f to run d after the current manual time
func (c *Clock) AfterFunc(d time.Duration, f func()) interaction.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &timer{clock: c, at: c.now + d, f: f}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves time forward and runs every callback that became due,
// in due order, on the calling goroutine.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now += d
	var due []*timer
	var rest []*timer
	for _, t := range c.timers {
		switch {
		case t.stopped:
		case t.at <= c.now:
			due = append(due, t)
		default:
			rest = append(rest, t)
		}
	}
	c.timers = rest
	c.mu.Unlock()

	sort.SliceStable(due, func(i, j int) bool { return due[i].at < due[j].at })
	for _, t := range due {
		t.f()
	}
}

// Pending returns the number of scheduled, unstopped callbacks
func (c *Clock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

func (t *timer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.stopped {
		return false
	}
	for _, other := range t.clock.timers {
		if other == t {
			t.stopped = true
			return true
		}
	}
	return false
}
