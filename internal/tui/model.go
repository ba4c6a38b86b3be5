package tui

import (
	"strings"
	"time"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/timer"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultProgressWidth = 40
	maxProgressWidth     = 60
)

// TickMsg requests one evaluation of the engine at the carried time.
type TickMsg time.Time

func tickAfter(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Model is a terminal display driver for the timer engine.
type Model struct {
	engine   *timer.Engine
	now      func() time.Time
	theme    Theme
	snapshot timer.Snapshot
	progress progress.Model
	ticking  bool
	quitting bool
}

// NewModel wraps engine. A nil now uses time.Now.
func NewModel(engine *timer.Engine, now func() time.Time) Model {
	if now == nil {
		now = time.Now
	}
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = defaultProgressWidth

	m := Model{
		engine:   engine,
		now:      now,
		theme:    DefaultTheme,
		progress: bar,
	}
	m.snapshot = engine.Tick(now())
	return m
}

// Init schedules the first tick when the engine is already running.
func (m Model) Init() tea.Cmd {
	if m.snapshot.Redraw > 0 {
		return tickAfter(m.snapshot.Redraw)
	}
	return nil
}

// Update handles ticks, key presses and resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		m.ticking = false
		return m.evaluate(time.Time(msg))
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		width := msg.Width - 8
		if width > maxProgressWidth {
			width = maxProgressWidth
		}
		if width > 0 {
			m.progress.Width = width
		}
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	now := m.now()
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case "s", "enter":
		m.engine.Start(now)
	case "n":
		m.engine.Skip(now)
	case "r":
		m.engine.Reset(now)
	default:
		return m, nil
	}
	return m.evaluate(now)
}

// evaluate ticks the engine and keeps at most one tick in flight.
func (m Model) evaluate(now time.Time) (tea.Model, tea.Cmd) {
	m.snapshot = m.engine.Tick(now)
	if m.snapshot.Redraw <= 0 || m.ticking {
		return m, nil
	}
	m.ticking = true
	return m, tickAfter(m.snapshot.Redraw)
}

// Snapshot returns the last evaluated snapshot.
func (m Model) Snapshot() timer.Snapshot {
	return m.snapshot
}

// View renders the current snapshot.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	accent := m.theme.Accent(m.snapshot.State)

	var view strings.Builder
	view.WriteString(accent.Render(m.snapshot.Title))
	view.WriteString("\n")
	view.WriteString(m.theme.Clock.Inherit(accent).Render(timer.FormatRemaining(m.snapshot.Remaining)))
	view.WriteString("\n")
	if m.snapshot.Active() {
		view.WriteString(m.progress.ViewAs(m.snapshot.Progress()))
		view.WriteString("\n\n")
	}
	view.WriteString(m.theme.Help.Render(helpLine(m.snapshot.State)))
	return m.theme.Base.Render(view.String())
}

func helpLine(state model.State) string {
	if state == model.StateIdle {
		return "s start • q quit"
	}
	return "n skip • r reset • q quit"
}
