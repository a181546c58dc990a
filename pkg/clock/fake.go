package clock

import (
	"sort"
	"sync"
	"time"
)

// FakeClock is a deterministic Clock for tests. Time stands still until
// Advance is called; scheduled callbacks fire synchronously inside
// Advance in deadline order.
//
// Callbacks must not call Advance.
type FakeClock struct {
	mu      sync.Mutex
	current time.Time
	pending []*scheduled
}

type scheduled struct {
	deadline time.Time
	callback func()
	stopped  bool
	fired    bool
}

// Fake returns a FakeClock set to initial.
func Fake(initial time.Time) *FakeClock {
	return &FakeClock{current: initial}
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// AfterFunc schedules f to run once the clock has advanced by d.
// If d <= 0, f runs before AfterFunc returns.
func (c *FakeClock) AfterFunc(d time.Duration, f func()) *Timer {
	if d <= 0 {
		f()
		return &Timer{
			stopFunc:  func() bool { return false },
			resetFunc: func(time.Duration) bool { return false },
		}
	}

	c.mu.Lock()
	entry := &scheduled{deadline: c.current.Add(d), callback: f}
	c.pending = append(c.pending, entry)
	c.mu.Unlock()

	return &Timer{
		stopFunc: func() bool {
			c.mu.Lock()
			defer c.mu.Unlock()
			if entry.stopped || entry.fired {
				return false
			}
			entry.stopped = true
			return true
		},
		resetFunc: func(d time.Duration) bool {
			c.mu.Lock()
			defer c.mu.Unlock()
			wasActive := !entry.stopped && !entry.fired
			entry.deadline = c.current.Add(d)
			entry.stopped = false
			entry.fired = false
			if !wasActive {
				c.pending = append(c.pending, entry)
			}
			return wasActive
		},
	}
}

// Advance moves the clock forward by d and fires every callback whose
// deadline is not after the new time.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.current = c.current.Add(d)
	target := c.current
	c.mu.Unlock()

	c.fireDue(target)
}

func (c *FakeClock) fireDue(target time.Time) {
	for {
		due := c.collectDue(target)
		if len(due) == 0 {
			return
		}
		sort.SliceStable(due, func(i, j int) bool {
			return due[i].deadline.Before(due[j].deadline)
		})
		for _, entry := range due {
			entry.callback()
		}
	}
}

// collectDue must be called without c.mu held.
func (c *FakeClock) collectDue(target time.Time) []*scheduled {
	c.mu.Lock()
	defer c.mu.Unlock()

	var due, remaining []*scheduled
	for _, entry := range c.pending {
		if entry.stopped || entry.fired {
			continue
		}
		if !entry.deadline.After(target) {
			entry.fired = true
			due = append(due, entry)
		} else {
			remaining = append(remaining, entry)
		}
	}
	c.pending = remaining
	return due
}

// PendingCount returns the number of callbacks that are scheduled and
// neither fired nor stopped.
func (c *FakeClock) PendingCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	for _, entry := range c.pending {
		if !entry.stopped && !entry.fired {
			count++
		}
	}
	return count
}
