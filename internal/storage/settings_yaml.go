package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pomodoro/internal/core/model"
	"pomodoro/internal/preferences"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

// ErrInvalidSuccessor indicates a pause successor other than working or idle.
var ErrInvalidSuccessor = errors.New("invalid pause successor")

type yamlInterval struct {
	Minutes float64 `yaml:"minutes"`
	Title   string  `yaml:"title"`
}

type yamlSettings struct {
	Work           yamlInterval `yaml:"work"`
	Pause          yamlInterval `yaml:"pause"`
	IdleTitle      string       `yaml:"idle_title"`
	PauseSuccessor string       `yaml:"pause_successor"`
}

// LoadSettings reads startup settings from a YAML file.
// If the file does not exist, default settings are returned.
func LoadSettings(path string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	if err := applyYamlSettings(&settings, fileData); err != nil {
		return preferences.DefaultSettings(), err
	}
	return settings, nil
}

// ResolveSettings loads settings from path, or from DefaultSettingsPath when
// path is empty. It returns the path that was consulted.
func ResolveSettings(path, appName string) (preferences.Settings, string, error) {
	if path == "" {
		defaultPath, err := DefaultSettingsPath(appName)
		if err != nil {
			return preferences.DefaultSettings(), "", err
		}
		path = defaultPath
	}
	settings, err := LoadSettings(path)
	return settings, path, err
}

// DefaultSettingsPath returns <user config dir>/<appName>/settings.yaml.
func DefaultSettingsPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) error {
	// Durations are capped below 100 minutes so MM:SS never needs an hour field.
	if fileData.Work.Minutes > 0 && fileData.Work.Minutes < 100 {
		settings.WorkMinutes = fileData.Work.Minutes
	}
	if fileData.Pause.Minutes > 0 && fileData.Pause.Minutes < 100 {
		settings.PauseMinutes = fileData.Pause.Minutes
	}

	if title := strings.TrimSpace(fileData.Work.Title); title != "" {
		settings.WorkTitle = title
	}
	if title := strings.TrimSpace(fileData.Pause.Title); title != "" {
		settings.PauseTitle = title
	}
	if title := strings.TrimSpace(fileData.IdleTitle); title != "" {
		settings.IdleTitle = title
	}

	if fileData.PauseSuccessor == "" {
		return nil
	}
	successor := model.State(strings.ToLower(strings.TrimSpace(fileData.PauseSuccessor)))
	if !successor.Valid() || successor == model.StatePaused {
		return fmt.Errorf("pause_successor %q: %w", fileData.PauseSuccessor, ErrInvalidSuccessor)
	}
	settings.PauseSuccessor = successor
	return nil
}
