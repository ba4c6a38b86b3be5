package tui

import (
	"pomodoro/internal/core/model"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Base    lipgloss.Style
	Idle    lipgloss.Style
	Working lipgloss.Style
	Paused  lipgloss.Style
	Clock   lipgloss.Style
	Help    lipgloss.Style
}

var DefaultTheme = Theme{
	Base:    lipgloss.NewStyle().Margin(1, 2),
	Idle:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
	Working: lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
	Paused:  lipgloss.NewStyle().Foreground(lipgloss.Color("114")).Bold(true),
	Clock:   lipgloss.NewStyle().Bold(true).Padding(1, 0),
	Help:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
}

// Accent returns the style used for the title and clock in state.
func (theme Theme) Accent(state model.State) lipgloss.Style {
	switch state {
	case model.StateWorking:
		return theme.Working
	case model.StatePaused:
		return theme.Paused
	default:
		return theme.Idle
	}
}
