package timer

import (
	"testing"
	"time"

	"pomodoro/internal/core/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := New(model.DefaultTimerConfig(), Config{})
	require.NoError(t, err)
	return engine
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	config := model.DefaultTimerConfig()
	delete(config.Intervals, model.StateWorking)

	engine, err := New(config, Config{})
	assert.Nil(t, engine)
	assert.ErrorIs(t, err, model.ErrInvalidConfig)
}

func TestIdleTickReportsWorkDuration(t *testing.T) {
	engine := newTestEngine(t)

	for _, now := range []time.Time{t0, t0.Add(time.Hour), t0.Add(-time.Hour), {}} {
		snapshot := engine.Tick(now)
		assert.Equal(t, model.StateIdle, snapshot.State)
		assert.Equal(t, 25*time.Minute, snapshot.Remaining)
		assert.Equal(t, "Ready to start", snapshot.Title)
		assert.Zero(t, snapshot.Redraw)
		assert.False(t, snapshot.Active())
	}
	assert.Equal(t, model.StateIdle, engine.State())
}

func TestStartBeginsWorking(t *testing.T) {
	engine := newTestEngine(t)
	engine.Start(t0)

	snapshot := engine.Tick(t0)
	assert.Equal(t, model.StateWorking, snapshot.State)
	assert.Equal(t, "25:00", FormatRemaining(snapshot.Remaining))
	assert.Equal(t, "Work session", snapshot.Title)
	assert.Equal(t, DefaultRefreshInterval, snapshot.Redraw)
	assert.Equal(t, t0, snapshot.StartedAt)
}

func TestStartWhileRunningKeepsProgress(t *testing.T) {
	engine := newTestEngine(t)
	engine.Start(t0)
	engine.Start(t0.Add(10 * time.Minute))

	assert.Equal(t, t0, engine.StartedAt())
	snapshot := engine.Tick(t0.Add(10 * time.Minute))
	assert.Equal(t, 15*time.Minute, snapshot.Remaining)

	engine.Skip(t0.Add(10 * time.Minute))
	engine.Start(t0.Add(11 * time.Minute))
	assert.Equal(t, model.StatePaused, engine.State())
}

func TestCountdownIsMonotonic(t *testing.T) {
	engine := newTestEngine(t)
	engine.Start(t0)

	previous := engine.Tick(t0).Remaining
	for offset := 7 * time.Millisecond; offset < 25*time.Minute; offset += 17 * time.Second {
		current := engine.Tick(t0.Add(offset)).Remaining
		assert.LessOrEqual(t, current, previous)
		previous = current
	}
}

func TestAutoAdvanceReportsFreshInterval(t *testing.T) {
	engine := newTestEngine(t)
	engine.Start(t0)

	snapshot := engine.Tick(t0.Add(25 * time.Minute))
	assert.Equal(t, model.StatePaused, snapshot.State)
	assert.Equal(t, "05:00", FormatRemaining(snapshot.Remaining))
	assert.Equal(t, "Pause", snapshot.Title)
	assert.Equal(t, t0.Add(25*time.Minute), engine.StartedAt())
	assert.NotZero(t, snapshot.Redraw)
}

func TestAutoAdvanceTakesSingleStep(t *testing.T) {
	engine := newTestEngine(t)
	engine.Start(t0)

	// Far past both the work and the pause interval.
	snapshot := engine.Tick(t0.Add(3 * time.Hour))
	assert.Equal(t, model.StatePaused, snapshot.State)
	assert.Equal(t, 5*time.Minute, snapshot.Remaining)

	snapshot = engine.Tick(t0.Add(3*time.Hour + 5*time.Minute))
	assert.Equal(t, model.StateWorking, snapshot.State)
	assert.Equal(t, 25*time.Minute, snapshot.Remaining)
}

func TestRemainingNeverNegative(t *testing.T) {
	engine := newTestEngine(t)
	for _, offset := range []time.Duration{25 * time.Minute, 25*time.Minute + time.Nanosecond, 48 * time.Hour} {
		engine.Reset(t0)
		engine.Start(t0)
		snapshot := engine.Tick(t0.Add(offset))
		assert.GreaterOrEqual(t, snapshot.Remaining, time.Duration(0))
		assert.Equal(t, model.StatePaused, snapshot.State)
	}
}

func TestClockSteppingBackwardsClampsElapsed(t *testing.T) {
	engine := newTestEngine(t)
	engine.Start(t0)

	snapshot := engine.Tick(t0.Add(-time.Minute))
	assert.Equal(t, model.StateWorking, snapshot.State)
	assert.Equal(t, 25*time.Minute, snapshot.Remaining)
}

func TestSkipDiscardsRemainingTime(t *testing.T) {
	engine := newTestEngine(t)
	engine.Start(t0)
	engine.Skip(t0.Add(10 * time.Minute))

	snapshot := engine.Tick(t0.Add(10 * time.Minute))
	assert.Equal(t, model.StatePaused, snapshot.State)
	assert.Equal(t, "05:00", FormatRemaining(snapshot.Remaining))

	engine.Skip(t0.Add(11 * time.Minute))
	snapshot = engine.Tick(t0.Add(11 * time.Minute))
	assert.Equal(t, model.StateWorking, snapshot.State)
	assert.Equal(t, "25:00", FormatRemaining(snapshot.Remaining))
}

func TestSkipFromIdleIsNoop(t *testing.T) {
	engine := newTestEngine(t)
	events := engine.Subscribe(1)

	engine.Skip(t0)
	assert.Equal(t, model.StateIdle, engine.State())
	assert.True(t, engine.StartedAt().IsZero())
	assert.Empty(t, events)
}

func TestResetFromAnyState(t *testing.T) {
	fractions := []float64{0, 0.25, 0.5, 0.99}
	for _, state := range []model.State{model.StateWorking, model.StatePaused} {
		for _, fraction := range fractions {
			engine := newTestEngine(t)
			engine.Start(t0)
			if state == model.StatePaused {
				engine.Skip(t0)
			}
			interval, _ := engine.Config().Interval(state)
			now := t0.Add(time.Duration(float64(interval.Duration) * fraction))
			require.Equal(t, state, engine.Tick(now).State)

			engine.Reset(now)
			assert.Equal(t, model.StateIdle, engine.State())
			assert.Equal(t, now, engine.StartedAt())
			assert.Equal(t, 25*time.Minute, engine.Tick(now.Add(time.Hour)).Remaining)
		}
	}

	engine := newTestEngine(t)
	engine.Reset(t0)
	assert.Equal(t, model.StateIdle, engine.State())
}

func TestPauseSuccessorIdle(t *testing.T) {
	config := model.DefaultTimerConfig()
	pause := config.Intervals[model.StatePaused]
	pause.Successor = model.StateIdle
	config.Intervals[model.StatePaused] = pause

	engine, err := New(config, Config{RefreshInterval: time.Second})
	require.NoError(t, err)
	engine.Start(t0)
	engine.Skip(t0)

	snapshot := engine.Tick(t0.Add(5 * time.Minute))
	assert.Equal(t, model.StateIdle, snapshot.State)
	assert.Equal(t, 25*time.Minute, snapshot.Remaining)
	assert.Zero(t, snapshot.Redraw)
}

func TestEventsReportTransitions(t *testing.T) {
	engine := newTestEngine(t)
	events := engine.Subscribe(8)

	engine.Start(t0)
	engine.Tick(t0.Add(25 * time.Minute))
	engine.Skip(t0.Add(26 * time.Minute))
	engine.Start(t0.Add(27 * time.Minute))
	engine.Reset(t0.Add(28 * time.Minute))
	engine.Close()

	var received []Event
	for event := range events {
		received = append(received, event)
	}

	assert.Equal(t, []Event{
		{Type: EventStarted, From: model.StateIdle, To: model.StateWorking, At: t0},
		{Type: EventAdvanced, From: model.StateWorking, To: model.StatePaused, At: t0.Add(25 * time.Minute)},
		{Type: EventSkipped, From: model.StatePaused, To: model.StateWorking, At: t0.Add(26 * time.Minute)},
		{Type: EventReset, From: model.StateWorking, To: model.StateIdle, At: t0.Add(28 * time.Minute)},
	}, received)
}

func TestFullObserverDropsEvents(t *testing.T) {
	engine := newTestEngine(t)
	events := engine.Subscribe(1)

	engine.Start(t0)
	engine.Reset(t0)

	assert.Len(t, events, 1)
	assert.Equal(t, EventStarted, (<-events).Type)
}

func TestSnapshotProgress(t *testing.T) {
	engine := newTestEngine(t)
	assert.Zero(t, engine.Tick(t0).Progress())

	engine.Start(t0)
	assert.Zero(t, engine.Tick(t0).Progress())
	assert.InDelta(t, 0.4, engine.Tick(t0.Add(10*time.Minute)).Progress(), 1e-9)
}

func TestEventString(t *testing.T) {
	event := Event{Type: EventSkipped, From: model.StateWorking, To: model.StatePaused, At: t0}
	assert.Equal(t, "state working -> paused (skipped)", event.String())
}
