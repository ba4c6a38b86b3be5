package timer

import (
	"time"

	"pomodoro/internal/core/model"
)

// Snapshot describes what the display should currently show.
type Snapshot struct {
	State     model.State
	Title     string
	Remaining time.Duration
	Total     time.Duration
	StartedAt time.Time

	// Redraw is the delay after which the driver should evaluate Tick again.
	// Zero means nothing changes until the next command.
	Redraw time.Duration
}

// Active reports whether an interval is counting down.
func (snapshot Snapshot) Active() bool {
	return snapshot.State != model.StateIdle
}

// Progress returns the elapsed fraction of the current interval.
func (snapshot Snapshot) Progress() float64 {
	if !snapshot.Active() || snapshot.Total <= 0 {
		return 0
	}
	progress := float64(snapshot.Total-snapshot.Remaining) / float64(snapshot.Total)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}
