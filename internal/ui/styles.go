package ui

import (
	"github.com/charmbracelet/lipgloss"

	"taskman/internal/task"
)

var (
	colorPending    = lipgloss.Color("#F59E0B") // amber
	colorInProgress = lipgloss.Color("#06B6D4") // cyan
	colorCompleted  = lipgloss.Color("#10B981") // emerald
	colorHigh       = lipgloss.Color("#EF4444") // red
	colorMedium     = lipgloss.Color("#F59E0B") // amber
	colorLow        = lipgloss.Color("#6B7280") // gray
	colorMuted      = lipgloss.Color("#64748B")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true)

	sectionStyle = lipgloss.NewStyle().
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	pendingStyle    = lipgloss.NewStyle().Foreground(colorPending)
	inProgressStyle = lipgloss.NewStyle().Foreground(colorInProgress)
	completedStyle  = lipgloss.NewStyle().Foreground(colorCompleted)

	highStyle   = lipgloss.NewStyle().Foreground(colorHigh).Bold(true)
	mediumStyle = lipgloss.NewStyle().Foreground(colorMedium)
	lowStyle    = lipgloss.NewStyle().Foreground(colorLow)
)

// statusBadge renders a status with its color.
func statusBadge(s task.Status) string {
	switch s {
	case task.StatusPending:
		return pendingStyle.Render(string(s))
	case task.StatusInProgress:
		return inProgressStyle.Render(string(s))
	case task.StatusCompleted:
		return completedStyle.Render(string(s))
	default:
		return string(s)
	}
}

// priorityBadge renders a priority marker with its color.
func priorityBadge(p task.Priority) string {
	label := "[" + string(p) + "]"
	switch p {
	case task.PriorityHigh:
		return highStyle.Render(label)
	case task.PriorityMedium:
		return mediumStyle.Render(label)
	case task.PriorityLow:
		return lowStyle.Render(label)
	default:
		return label
	}
}
