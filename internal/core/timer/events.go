package timer

import (
	"fmt"
	"time"

	"pomodoro/internal/core/model"
)

// EventType defines the kind of transition an Event reports.
type EventType string

const (
	EventStarted  EventType = "started"
	EventAdvanced EventType = "advanced"
	EventSkipped  EventType = "skipped"
	EventReset    EventType = "reset"
)

// Event represents a state transition for observers.
type Event struct {
	Type EventType
	From model.State
	To   model.State
	At   time.Time
}

func (event Event) String() string {
	return fmt.Sprintf("state %s -> %s (%s)", event.From, event.To, event.Type)
}
