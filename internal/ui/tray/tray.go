package tray

import (
	"fmt"

	"pomodoro/internal/core/model"

	"fyne.io/fyne/v2"
)

const menuTitle = "Pomodoro"

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow  func()
	OnStart func()
	OnSkip  func()
	OnReset func()
	OnQuit  func()
}

// MenuSetter is the part of desktop.App the tray needs.
type MenuSetter interface {
	SetSystemTrayMenu(menu *fyne.Menu)
}

// Manager keeps the system tray menu in step with the timer state.
type Manager struct {
	app        MenuSetter
	callbacks  Callbacks
	statusItem *fyne.MenuItem
	showItem   *fyne.MenuItem
	startItem  *fyne.MenuItem
	skipItem   *fyne.MenuItem
	resetItem  *fyne.MenuItem
	quitItem   *fyne.MenuItem
	state      model.State
}

// New creates a tray manager with the provided callbacks.
func New(app MenuSetter, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("Status: starting...", nil)
	manager.statusItem.Disabled = true
	manager.showItem = fyne.NewMenuItem("Show timer", invoke(&manager.callbacks.OnShow))
	manager.startItem = fyne.NewMenuItem("Start work session", invoke(&manager.callbacks.OnStart))
	manager.skipItem = fyne.NewMenuItem("Skip", invoke(&manager.callbacks.OnSkip))
	manager.resetItem = fyne.NewMenuItem("Reset", invoke(&manager.callbacks.OnReset))
	manager.quitItem = fyne.NewMenuItem("Quit", invoke(&manager.callbacks.OnQuit))
	manager.quitItem.IsQuit = true

	manager.SetState(model.StateIdle, "")
	return manager
}

// SetState updates the status line and enables the items valid in state.
func (manager *Manager) SetState(state model.State, title string) {
	manager.state = state
	if title == "" {
		title = string(state)
	}
	manager.statusItem.Label = fmt.Sprintf("Status: %s", title)

	running := state != model.StateIdle
	manager.startItem.Disabled = running
	manager.skipItem.Disabled = !running
	manager.resetItem.Disabled = !running
	manager.refreshMenu()
}

// State returns the state last shown in the menu.
func (manager *Manager) State() model.State {
	return manager.state
}

// Menu builds the tray menu from the current items.
func (manager *Manager) Menu() *fyne.Menu {
	return fyne.NewMenu(menuTitle,
		manager.statusItem,
		manager.showItem,
		fyne.NewMenuItemSeparator(),
		manager.startItem,
		manager.skipItem,
		manager.resetItem,
		fyne.NewMenuItemSeparator(),
		manager.quitItem,
	)
}

func (manager *Manager) refreshMenu() {
	if manager.app != nil {
		manager.app.SetSystemTrayMenu(manager.Menu())
	}
}

func invoke(handler *func()) func() {
	return func() {
		if *handler != nil {
			(*handler)()
		}
	}
}
