package main

import (
	"errors"
	"flag"
	"log"

	"pomodoro/internal/core/timer"
	"pomodoro/internal/display"
	"pomodoro/internal/platform"
	"pomodoro/internal/storage"
	"pomodoro/internal/ui/tray"
	"pomodoro/internal/ui/window"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

const appName = "Pomodoro"

func main() {
	configPath := flag.String("config", "", "settings file (default: <user config dir>/Pomodoro/settings.yaml)")
	flag.Parse()

	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	settings, path, err := storage.ResolveSettings(*configPath, appName)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidSuccessor) {
			log.Printf("settings %s: %v", path, err)
			return
		}
		log.Printf("settings %s: %v (using defaults)", path, err)
	}

	engine, err := timer.New(settings.TimerConfig(), timer.Config{RefreshInterval: timer.DefaultRefreshInterval})
	if err != nil {
		log.Printf("timer: %v", err)
		return
	}
	defer engine.Close()
	config := engine.Config()

	fyneApp := app.NewWithID("com.pomodoro.app")
	timerWindow := window.New(fyneApp, appName)
	driver := display.New(engine, timerWindow, window.UIClock{})
	defer driver.Stop()

	timerWindow.SetCommands(window.Commands{
		OnStart: driver.Start,
		OnSkip:  driver.Skip,
		OnReset: driver.Reset,
	})

	var trayManager *tray.Manager
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShow:  timerWindow.Show,
			OnStart: driver.Start,
			OnSkip:  driver.Skip,
			OnReset: driver.Reset,
			OnQuit:  fyneApp.Quit,
		})
		trayManager.SetState(engine.State(), config.Title(engine.State()))
		timerWindow.Window().SetCloseIntercept(timerWindow.Hide)
	} else {
		log.Printf("system tray unsupported on this platform")
	}

	events := engine.Subscribe(8)
	go func() {
		for event := range events {
			log.Print(event)
			if trayManager == nil {
				continue
			}
			state := event.To
			fyne.Do(func() {
				trayManager.SetState(state, config.Title(state))
			})
		}
	}()

	driver.Frame()
	timerWindow.Show()
	fyneApp.Run()
}
