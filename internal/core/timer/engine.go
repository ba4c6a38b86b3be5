package timer

import (
	"fmt"
	"time"

	"pomodoro/internal/core/model"
)

// DefaultRefreshInterval is the redraw delay requested while a countdown runs.
const DefaultRefreshInterval = 30 * time.Millisecond

// Config contains runtime options for the Engine.
type Config struct {
	RefreshInterval time.Duration
}

// Engine is the Pomodoro state machine.
//
// Remaining time is recomputed from the instant the current interval started
// and never accumulated per tick. An Engine is not safe for concurrent use;
// the display driver owns it and calls it from a single goroutine.
type Engine struct {
	config    model.TimerConfig
	options   Config
	state     model.State
	startedAt time.Time
	events    []chan Event
}

// New creates an idle Engine with the provided configuration.
func New(config model.TimerConfig, options Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("new engine: %w", err)
	}
	if options.RefreshInterval <= 0 {
		options.RefreshInterval = DefaultRefreshInterval
	}

	return &Engine{
		config:  config,
		options: options,
		state:   model.StateIdle,
	}, nil
}

// State returns the current state.
func (engine *Engine) State() model.State {
	return engine.state
}

// StartedAt returns the instant the current state was entered.
func (engine *Engine) StartedAt() time.Time {
	return engine.startedAt
}

// Config returns the static timer configuration.
func (engine *Engine) Config() model.TimerConfig {
	return engine.config
}

// Subscribe registers a new observer channel.
func (engine *Engine) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	engine.events = append(engine.events, ch)
	return ch
}

// Close closes all observer channels.
func (engine *Engine) Close() {
	events := engine.events
	engine.events = nil
	for _, ch := range events {
		close(ch)
	}
}

// Tick evaluates the engine at now. When the running interval has elapsed it
// advances to the configured successor before building the snapshot, so the
// returned snapshot already shows the fresh interval.
func (engine *Engine) Tick(now time.Time) Snapshot {
	interval, running := engine.config.Interval(engine.state)
	if !running {
		return engine.idleSnapshot()
	}

	remaining := interval.Duration - engine.elapsed(now)
	if remaining <= 0 {
		engine.transition(EventAdvanced, interval.Successor, now)
		return engine.snapshotAt(now)
	}

	return Snapshot{
		State:     engine.state,
		Title:     interval.Title,
		Remaining: remaining,
		Total:     interval.Duration,
		StartedAt: engine.startedAt,
		Redraw:    engine.options.RefreshInterval,
	}
}

// Start begins a work interval. It only applies while idle.
func (engine *Engine) Start(now time.Time) {
	if engine.state != model.StateIdle {
		return
	}
	engine.transition(EventStarted, model.StateWorking, now)
}

// Skip ends the running interval early and enters its successor.
func (engine *Engine) Skip(now time.Time) {
	interval, running := engine.config.Interval(engine.state)
	if !running {
		return
	}
	engine.transition(EventSkipped, interval.Successor, now)
}

// Reset returns the engine to idle from any state.
func (engine *Engine) Reset(now time.Time) {
	engine.transition(EventReset, model.StateIdle, now)
}

func (engine *Engine) transition(eventType EventType, next model.State, now time.Time) {
	previous := engine.state
	engine.state = next
	engine.startedAt = now

	engine.emit(Event{
		Type: eventType,
		From: previous,
		To:   next,
		At:   now,
	})
}

// snapshotAt describes a state that was entered at now.
func (engine *Engine) snapshotAt(now time.Time) Snapshot {
	interval, running := engine.config.Interval(engine.state)
	if !running {
		return engine.idleSnapshot()
	}
	return Snapshot{
		State:     engine.state,
		Title:     interval.Title,
		Remaining: interval.Duration,
		Total:     interval.Duration,
		StartedAt: now,
		Redraw:    engine.options.RefreshInterval,
	}
}

func (engine *Engine) idleSnapshot() Snapshot {
	work, _ := engine.config.Interval(model.StateWorking)
	return Snapshot{
		State:     model.StateIdle,
		Title:     engine.config.Title(model.StateIdle),
		Remaining: work.Duration,
		Total:     work.Duration,
		StartedAt: engine.startedAt,
	}
}

func (engine *Engine) elapsed(now time.Time) time.Duration {
	elapsed := now.Sub(engine.startedAt)
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

func (engine *Engine) emit(event Event) {
	for _, ch := range engine.events {
		select {
		case ch <- event:
		default:
		}
	}
}
