// Package timer holds the countdowns used during a workout. Neither timer
// schedules anything itself: the owner feeds one Tick per elapsed second
// and reports visibility changes with wall-clock instants.
package timer

import (
	"math"
	"time"

	"github.com/balkashynov/wrokout/internal/notify"
)

// DefaultRestSeconds is the rest period started after a logged set
const DefaultRestSeconds = 180

const (
	restTitle     = "wrokout timer"
	restBody      = "Your rest timer is up! Time for the next set."
	restBodyLater = "Your rest timer is up! (Corrected after resume)"
)

// RestState is a snapshot of the rest countdown
type RestState struct {
	Active           bool
	Paused           bool
	SecondsRemaining int
}

// Rest is the single session-wide rest countdown
type Rest struct {
	state          RestState
	defaultSeconds int
	hiddenAt       time.Time
	hidden         bool
	notifier       notify.Notifier
}

// NewRest creates an idle rest timer. defaultSeconds <= 0 means DefaultRestSeconds.
func NewRest(defaultSeconds int, n notify.Notifier) *Rest {
	if defaultSeconds <= 0 {
		defaultSeconds = DefaultRestSeconds
	}
	return &Rest{
		state:          RestState{SecondsRemaining: defaultSeconds},
		defaultSeconds: defaultSeconds,
		notifier:       n,
	}
}

// Default returns the configured rest period in seconds
func (r *Rest) Default() int {
	return r.defaultSeconds
}

// State returns the current countdown state
func (r *Rest) State() RestState {
	return r.state
}

// Start (re)starts the countdown from seconds, replacing any running one
func (r *Rest) Start(seconds int) {
	if seconds <= 0 {
		seconds = r.defaultSeconds
	}
	r.state = RestState{Active: true, SecondsRemaining: seconds}
	r.clearHidden()
}

// StartDefault starts the countdown from the default period
func (r *Rest) StartDefault() {
	r.Start(r.defaultSeconds)
}

// Pause freezes the countdown without resetting it
func (r *Rest) Pause() {
	r.state.Paused = true
	r.clearHidden()
}

// Resume continues a paused countdown
func (r *Rest) Resume() {
	r.state.Paused = false
	r.clearHidden()
}

// Stop deactivates the timer and resets it to the default period
func (r *Rest) Stop() {
	r.state = RestState{SecondsRemaining: r.defaultSeconds}
	r.clearHidden()
}

// Tick advances the countdown by one second. It reports whether the
// countdown reached zero on this tick. Ticks while hidden are ignored;
// Show accounts for that interval.
func (r *Rest) Tick() bool {
	if !r.running() || r.hidden {
		return false
	}
	if r.state.SecondsRemaining <= 1 {
		r.finish(restBody)
		return true
	}
	r.state.SecondsRemaining--
	return false
}

// Hide records the instant the view stopped being visible. Only a running,
// unpaused countdown is tracked.
func (r *Rest) Hide(now time.Time) {
	if !r.running() {
		return
	}
	r.hidden = true
	r.hiddenAt = now
}

// Show subtracts the whole seconds elapsed since Hide from the countdown
// and reports whether that finished it.
func (r *Rest) Show(now time.Time) bool {
	if !r.hidden {
		return false
	}
	hiddenAt := r.hiddenAt
	r.clearHidden()
	if !r.running() {
		return false
	}

	elapsed := int(math.Round(now.Sub(hiddenAt).Seconds()))
	if elapsed < 0 {
		elapsed = 0
	}
	remaining := r.state.SecondsRemaining - elapsed
	if remaining <= 0 {
		r.finish(restBodyLater)
		return true
	}
	r.state.SecondsRemaining = remaining
	return false
}

func (r *Rest) running() bool {
	return r.state.Active && !r.state.Paused
}

func (r *Rest) finish(body string) {
	r.state.Active = false
	r.state.SecondsRemaining = 0
	notify.BestEffort(r.notifier, restTitle, body)
}

func (r *Rest) clearHidden() {
	r.hidden = false
	r.hiddenAt = time.Time{}
}
