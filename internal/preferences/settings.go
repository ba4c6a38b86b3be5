package preferences

import (
	"time"

	"pomodoro/internal/core/model"
)

// Settings defines the values supplied once at startup.
type Settings struct {
	WorkMinutes    float64
	PauseMinutes   float64
	WorkTitle      string
	PauseTitle     string
	IdleTitle      string
	PauseSuccessor model.State
}

// DefaultSettings returns default settings for Pomodoro.
func DefaultSettings() Settings {
	return Settings{
		WorkMinutes:    25,
		PauseMinutes:   5,
		WorkTitle:      "Work session",
		PauseTitle:     "Pause",
		IdleTitle:      "Ready to start",
		PauseSuccessor: model.StateWorking,
	}
}

// TimerConfig converts settings to TimerConfig.
func (settings Settings) TimerConfig() model.TimerConfig {
	return model.TimerConfig{
		Intervals: map[model.State]model.IntervalConfig{
			model.StateWorking: {
				Duration:  minutes(settings.WorkMinutes),
				Title:     settings.WorkTitle,
				Successor: model.StatePaused,
			},
			model.StatePaused: {
				Duration:  minutes(settings.PauseMinutes),
				Title:     settings.PauseTitle,
				Successor: settings.PauseSuccessor,
			},
		},
		IdleTitle: settings.IdleTitle,
	}
}

func minutes(value float64) time.Duration {
	return time.Duration(value * float64(time.Minute))
}
