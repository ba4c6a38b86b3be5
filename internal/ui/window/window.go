package window

import (
	"image/color"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/timer"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const (
	windowWidth   = float32(380)
	windowHeight  = float32(200)
	timerTextSize = float32(60)
	titleTextSize = float32(22)
)

// Commands defines the handlers for the window controls.
type Commands struct {
	OnStart func()
	OnSkip  func()
	OnReset func()
}

// Window is the single Pomodoro window. It renders engine snapshots.
type Window struct {
	window      fyne.Window
	titleLabel  *canvas.Text
	timerLabel  *canvas.Text
	startButton *widget.Button
	skipButton  *widget.Button
	resetButton *widget.Button
	commands    Commands
	state       model.State
}

// New creates the timer window. It starts hidden.
func New(app fyne.App, title string) *Window {
	window := app.NewWindow(title)
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	titleLabel := canvas.NewText("", theme.Color(theme.ColorNameForeground))
	titleLabel.Alignment = fyne.TextAlignCenter
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	titleLabel.TextSize = titleTextSize

	timerLabel := canvas.NewText("--:--", theme.Color(theme.ColorNameForeground))
	timerLabel.Alignment = fyne.TextAlignCenter
	timerLabel.TextStyle = fyne.TextStyle{Monospace: true}
	timerLabel.TextSize = timerTextSize

	timerWindow := &Window{
		window:     window,
		titleLabel: titleLabel,
		timerLabel: timerLabel,
	}

	timerWindow.startButton = widget.NewButtonWithIcon("Start work session", theme.MediaPlayIcon(), func() {
		if timerWindow.commands.OnStart != nil {
			timerWindow.commands.OnStart()
		}
	})
	timerWindow.resetButton = widget.NewButtonWithIcon("Reset", theme.ViewRefreshIcon(), func() {
		if timerWindow.commands.OnReset != nil {
			timerWindow.commands.OnReset()
		}
	})
	timerWindow.skipButton = widget.NewButtonWithIcon("Skip", theme.MediaSkipNextIcon(), func() {
		if timerWindow.commands.OnSkip != nil {
			timerWindow.commands.OnSkip()
		}
	})

	buttons := container.NewHBox(
		layout.NewSpacer(),
		timerWindow.startButton,
		timerWindow.resetButton,
		timerWindow.skipButton,
		layout.NewSpacer(),
	)
	content := container.NewVBox(
		titleLabel,
		widget.NewSeparator(),
		timerLabel,
		widget.NewSeparator(),
		buttons,
	)

	window.SetContent(container.NewPadded(content))
	window.Resize(fyne.NewSize(windowWidth, windowHeight))
	timerWindow.applyControls(model.StateIdle)

	return timerWindow
}

// SetCommands sets the control handlers.
func (timerWindow *Window) SetCommands(commands Commands) {
	timerWindow.commands = commands
}

// Render draws the snapshot. It must be called on the fyne UI goroutine.
func (timerWindow *Window) Render(snapshot timer.Snapshot) {
	text := timer.FormatRemaining(snapshot.Remaining)
	if timerWindow.timerLabel.Text != text {
		timerWindow.timerLabel.Text = text
		timerWindow.timerLabel.Refresh()
	}

	if snapshot.State == timerWindow.state && timerWindow.titleLabel.Text == snapshot.Title {
		return
	}
	timerWindow.titleLabel.Text = snapshot.Title
	timerWindow.titleLabel.Color = accentColor(snapshot.State)
	timerWindow.titleLabel.Refresh()
	timerWindow.timerLabel.Color = accentColor(snapshot.State)
	timerWindow.timerLabel.Refresh()
	timerWindow.applyControls(snapshot.State)
}

// Show displays the window and brings it to front.
func (timerWindow *Window) Show() {
	timerWindow.window.Show()
	timerWindow.window.RequestFocus()
}

// Hide hides the window without quitting.
func (timerWindow *Window) Hide() {
	timerWindow.window.Hide()
}

// Window exposes the underlying fyne window.
func (timerWindow *Window) Window() fyne.Window {
	return timerWindow.window
}

func (timerWindow *Window) applyControls(state model.State) {
	timerWindow.state = state
	if state == model.StateIdle {
		timerWindow.startButton.Show()
		timerWindow.resetButton.Hide()
		timerWindow.skipButton.Hide()
		return
	}
	timerWindow.startButton.Hide()
	timerWindow.resetButton.Show()
	timerWindow.skipButton.Show()
}

func accentColor(state model.State) color.Color {
	switch state {
	case model.StateWorking:
		return color.NRGBA{R: 220, G: 76, B: 60, A: 255}
	case model.StatePaused:
		return color.NRGBA{R: 72, G: 166, B: 104, A: 255}
	default:
		return theme.Color(theme.ColorNameForeground)
	}
}
