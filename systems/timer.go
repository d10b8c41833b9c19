// Package systems contains ECS systems for the game.
package systems

import (
	"fmt"
	"time"
)

// Timer gates a system to a fixed wall-clock interval.
// Elapsed time is accumulated from the frame deltas fed to Tick, so tests
// can drive it with synthetic time.
type Timer struct {
	interval time.Duration
	elapsed  time.Duration
	fired    int
}

// NewTimer creates a timer that fires every interval. Panics if interval is not positive.
func NewTimer(interval time.Duration) *Timer {
	if interval <= 0 {
		panic(fmt.Sprintf("systems: timer interval must be positive, got %v", interval))
	}
	return &Timer{interval: interval}
}

// Tick advances the timer by dt and reports whether it fired.
// A timer fires at most once per call: if several intervals elapsed during a
// long frame, the missed firings are dropped and only the remainder is kept.
func (t *Timer) Tick(dt time.Duration) bool {
	t.elapsed += dt
	if t.elapsed < t.interval {
		return false
	}
	t.elapsed %= t.interval
	t.fired++
	return true
}

// Interval returns the firing interval.
func (t *Timer) Interval() time.Duration {
	return t.interval
}

// Elapsed returns the time accumulated toward the next firing.
func (t *Timer) Elapsed() time.Duration {
	return t.elapsed
}

// Fired returns how many times the timer has fired.
func (t *Timer) Fired() int {
	return t.fired
}
