package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"pomodoro/internal/core/timer"
	"pomodoro/internal/storage"
	"pomodoro/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

const appName = "Pomodoro"

func main() {
	configPath := flag.String("config", "", "settings file (default: <user config dir>/Pomodoro/settings.yaml)")
	logPath := flag.String("log", "", "append transition log to this file")
	flag.Parse()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "pomodoro-tui needs an interactive terminal")
		os.Exit(1)
	}

	if err := run(*configPath, *logPath); err != nil {
		fmt.Fprintf(os.Stderr, "pomodoro-tui: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, logPath string) error {
	logFile, err := openLog(logPath)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
		log.SetOutput(logFile)
	} else {
		// The alternate screen owns the terminal.
		log.SetOutput(io.Discard)
	}

	settings, path, err := storage.ResolveSettings(configPath, appName)
	if err != nil {
		log.Printf("settings %s: %v", path, err)
		return fmt.Errorf("load settings: %w", err)
	}

	engine, err := timer.New(settings.TimerConfig(), timer.Config{})
	if err != nil {
		return err
	}

	events := engine.Subscribe(8)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for event := range events {
			log.Print(event)
		}
	}()

	program := tea.NewProgram(tui.NewModel(engine, nil), tea.WithAltScreen())
	_, err = program.Run()
	engine.Close()
	<-done
	if err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}

func openLog(path string) (*os.File, error) {
	if path == "" {
		return nil, nil
	}
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return file, nil
}
