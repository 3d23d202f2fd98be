// Package timer implements the cancellable rest countdown.
package timer

import (
	"sync"
	"time"
)

// Countdown counts down once per interval on its own goroutine. Starting a
// new countdown cancels the one in flight.
type Countdown struct {
	mu        sync.RWMutex
	remaining time.Duration
	running   bool
	interval  time.Duration
	stopChan  chan struct{}
	gen       uint64
}

// New returns a countdown that ticks every second.
func New() *Countdown {
	return NewWithInterval(time.Second)
}

// NewWithInterval returns a countdown that ticks every interval.
func NewWithInterval(interval time.Duration) *Countdown {
	return &Countdown{
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

// Start begins counting down from d. onTick receives the remaining time
// after every tick, including the final zero; onExpire runs once after
// that. Either callback may be nil. Callbacks run on the countdown
// goroutine without the lock held. A non-positive d only cancels.
func (c *Countdown) Start(d time.Duration, onTick func(remaining time.Duration), onExpire func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopLocked()
	if d <= 0 {
		return
	}

	c.gen++
	c.remaining = d
	c.running = true
	c.stopChan = make(chan struct{})

	go c.run(c.stopChan, c.gen, onTick, onExpire)
}

func (c *Countdown) run(stop <-chan struct{}, gen uint64, onTick func(time.Duration), onExpire func()) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			c.mu.Lock()
			if c.gen != gen || !c.running {
				c.mu.Unlock()
				return
			}
			c.remaining -= c.interval
			if c.remaining < 0 {
				c.remaining = 0
			}
			remaining := c.remaining
			expired := remaining == 0
			if expired {
				c.running = false
			}
			c.mu.Unlock()

			if onTick != nil {
				onTick(remaining)
			}
			if expired {
				if onExpire != nil {
					onExpire()
				}
				return
			}
		}
	}
}

// Cancel stops the countdown in flight. It reports whether one was running.
func (c *Countdown) Cancel() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	was := c.running
	c.stopLocked()
	return was
}

func (c *Countdown) stopLocked() {
	if c.running {
		close(c.stopChan)
	}
	c.running = false
	c.remaining = 0
}

// Remaining returns the time left, or zero when idle.
func (c *Countdown) Remaining() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.remaining
}

// Running reports whether a countdown is in flight.
func (c *Countdown) Running() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.running
}
