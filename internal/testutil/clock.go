package testutil

import (
	"sync"
	"time"
)

// Clock is a deterministic time source for tests.
//
// Each call to Now advances the clock by a fixed step and returns the
// result. With step zero the clock freezes, which exercises the
// journal's same-instant tie-breaking. The same base and step always
// produce the same sequence of instants, so crumb filenames are
// byte-identical across runs and golden comparison works.
//
// Thread-safety: all methods are safe for concurrent use via internal
// mutex, though store tests are single-threaded.
type Clock struct {
	mu      sync.Mutex
	base    time.Time
	current time.Time
	step    time.Duration
}

// Base is the default starting instant for test clocks.
// 2026-01-02 03:04:05 UTC, chosen for recognizable crumb filenames.
var Base = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

// NewClock creates a clock starting at base and advancing by step on
// every Now call. The first Now returns base plus step.
func NewClock(base time.Time, step time.Duration) *Clock {
	return &Clock{base: base, current: base, step: step}
}

// Now returns the next instant.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = c.current.Add(c.step)
	return c.current
}

// Current returns the last instant handed out without advancing.
func (c *Clock) Current() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Reset rewinds the clock to its base.
//
// Used for test reuse. After Reset, Now returns the same sequence as a
// fresh clock.
func (c *Clock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = c.base
}
