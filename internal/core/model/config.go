package model

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig indicates a timer configuration the engine cannot run.
var ErrInvalidConfig = errors.New("invalid timer config")

// State represents which interval, if any, is active.
type State string

const (
	StateIdle    State = "idle"
	StateWorking State = "working"
	StatePaused  State = "paused"
)

// Valid reports whether the state is one of the known states.
func (state State) Valid() bool {
	switch state {
	case StateIdle, StateWorking, StatePaused:
		return true
	default:
		return false
	}
}

// IntervalConfig defines one timed phase and the state that follows it.
type IntervalConfig struct {
	Duration  time.Duration
	Title     string
	Successor State
}

// TimerConfig contains the static settings for the timer engine.
type TimerConfig struct {
	Intervals map[State]IntervalConfig
	IdleTitle string
}

// DefaultTimerConfig returns a 25/5 work and pause cycle.
func DefaultTimerConfig() TimerConfig {
	return TimerConfig{
		Intervals: map[State]IntervalConfig{
			StateWorking: {
				Duration:  25 * time.Minute,
				Title:     "Work session",
				Successor: StatePaused,
			},
			StatePaused: {
				Duration:  5 * time.Minute,
				Title:     "Pause",
				Successor: StateWorking,
			},
		},
		IdleTitle: "Ready to start",
	}
}

// Interval returns the interval config for a running state.
func (config TimerConfig) Interval(state State) (IntervalConfig, bool) {
	interval, ok := config.Intervals[state]
	return interval, ok
}

// Title returns the display title for state.
func (config TimerConfig) Title(state State) string {
	if interval, ok := config.Intervals[state]; ok {
		return interval.Title
	}
	return config.IdleTitle
}

// Validate checks that both intervals are present and well formed.
func (config TimerConfig) Validate() error {
	for state := range config.Intervals {
		if state != StateWorking && state != StatePaused {
			return fmt.Errorf("%w: unexpected interval %q", ErrInvalidConfig, state)
		}
	}
	for _, state := range []State{StateWorking, StatePaused} {
		interval, ok := config.Intervals[state]
		if !ok {
			return fmt.Errorf("%w: missing %s interval", ErrInvalidConfig, state)
		}
		if interval.Duration <= 0 {
			return fmt.Errorf("%w: %s duration must be positive", ErrInvalidConfig, state)
		}
		if !interval.Successor.Valid() {
			return fmt.Errorf("%w: %s successor %q", ErrInvalidConfig, state, interval.Successor)
		}
	}
	return nil
}
