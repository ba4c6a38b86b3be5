package display

import (
	"pomodoro/internal/core/timer"
)

// Renderer draws a snapshot. It is called from the driver's goroutine.
type Renderer interface {
	Render(snapshot timer.Snapshot)
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(snapshot timer.Snapshot)

// Render calls fn(snapshot).
func (fn RendererFunc) Render(snapshot timer.Snapshot) {
	fn(snapshot)
}

// Driver evaluates the engine once per frame and schedules the next frame
// only while a countdown is running. Frames and commands must be issued from
// one goroutine; the Clock is responsible for delivering scheduled frames there.
type Driver struct {
	engine   *timer.Engine
	renderer Renderer
	clock    Clock
	pending  Timer
	last     timer.Snapshot

	// generation invalidates frames that fired before they were cancelled.
	generation uint64
}

// New creates a driver. A nil clock uses SystemClock.
func New(engine *timer.Engine, renderer Renderer, clock Clock) *Driver {
	if clock == nil {
		clock = SystemClock
	}
	return &Driver{
		engine:   engine,
		renderer: renderer,
		clock:    clock,
	}
}

// Frame ticks the engine, renders the result and arms the next frame when
// the snapshot asks for one.
func (driver *Driver) Frame() {
	snapshot := driver.engine.Tick(driver.clock.Now())
	driver.last = snapshot
	driver.renderer.Render(snapshot)

	if snapshot.Redraw <= 0 {
		driver.cancelPending()
		return
	}
	if driver.pending != nil {
		return
	}
	driver.generation++
	generation := driver.generation
	driver.pending = driver.clock.AfterFunc(snapshot.Redraw, func() {
		driver.scheduledFrame(generation)
	})
}

// Start issues the start command and redraws.
func (driver *Driver) Start() {
	driver.engine.Start(driver.clock.Now())
	driver.Frame()
}

// Skip issues the skip command and redraws.
func (driver *Driver) Skip() {
	driver.engine.Skip(driver.clock.Now())
	driver.Frame()
}

// Reset issues the reset command and redraws.
func (driver *Driver) Reset() {
	driver.engine.Reset(driver.clock.Now())
	driver.Frame()
}

// Stop cancels any scheduled frame.
func (driver *Driver) Stop() {
	driver.cancelPending()
}

// Last returns the most recently rendered snapshot.
func (driver *Driver) Last() timer.Snapshot {
	return driver.last
}

// Scheduled reports whether a frame is pending.
func (driver *Driver) Scheduled() bool {
	return driver.pending != nil
}

func (driver *Driver) scheduledFrame(generation uint64) {
	if generation != driver.generation || driver.pending == nil {
		return
	}
	driver.pending = nil
	driver.Frame()
}

func (driver *Driver) cancelPending() {
	if driver.pending == nil {
		return
	}
	driver.pending.Stop()
	driver.pending = nil
	driver.generation++
}
