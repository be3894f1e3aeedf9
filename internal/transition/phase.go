// Package transition sequences the page-transition overlay that plays on every
// navigation.
//
// A navigation request moves the overlay through Idle → Entering → Exiting →
// Idle on a configured clock while the route swap itself is deferred by a
// separate delay, so the overlay covers the swap.
package transition

import (
	"errors"
	"fmt"
	"time"
)

// Phase is the overlay animation phase.
type Phase int

const (
	// Idle means no transition is running and the overlay is hidden.
	Idle Phase = iota
	// Entering means the overlay is covering the viewport.
	Entering
	// Exiting means the overlay is uncovering the new page.
	Exiting
)

// String returns the lower-case phase name used in markup and logs.
func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Entering:
		return "entering"
	case Exiting:
		return "exiting"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Active reports whether the overlay is visible in this phase.
func (p Phase) Active() bool {
	return p == Entering || p == Exiting
}

// forward lists the edges taken by the phase clock.
var forward = map[Phase]Phase{
	Idle:     Entering,
	Entering: Exiting,
	Exiting:  Idle,
}

// CanAdvance reports whether the phase clock may move from one phase to the next.
func CanAdvance(from, to Phase) bool {
	next, ok := forward[from]
	return ok && next == to
}

// CanRestart reports whether a new request may restart the clock from the phase.
// Restarts always re-enter Entering.
func CanRestart(from Phase) bool {
	return from == Entering || from == Exiting
}

const (
	// DefaultInDuration is how long the overlay takes to cover the viewport.
	DefaultInDuration = 700 * time.Millisecond
	// DefaultOutDuration is how long the overlay takes to uncover the viewport.
	DefaultOutDuration = 700 * time.Millisecond
	// DefaultNavigateDelay is how long the route swap waits behind the overlay.
	DefaultNavigateDelay = 500 * time.Millisecond
)

// Config holds the phase clock durations.
type Config struct {
	InDuration    time.Duration
	OutDuration   time.Duration
	NavigateDelay time.Duration
}

// DefaultConfig returns the durations the site ships with.
func DefaultConfig() Config {
	return Config{
		InDuration:    DefaultInDuration,
		OutDuration:   DefaultOutDuration,
		NavigateDelay: DefaultNavigateDelay,
	}
}

// Validate rejects durations the phase clock cannot run with.
func (c Config) Validate() error {
	if c.InDuration <= 0 {
		return errors.New("transition in duration must be positive")
	}
	if c.OutDuration <= 0 {
		return errors.New("transition out duration must be positive")
	}
	if c.NavigateDelay < 0 {
		return errors.New("transition navigate delay must not be negative")
	}
	return nil
}

// Total is the full overlay run time for a single uninterrupted request.
func (c Config) Total() time.Duration {
	return c.InDuration + c.OutDuration
}
