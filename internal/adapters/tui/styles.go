package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/eagroute/internal/ui/style"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Iris).
			Foreground(style.White)

	offlineTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Padding(0, 1).
				Background(style.Red).
				Foreground(style.White)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(style.Iris)

	mutedStyle = lipgloss.NewStyle().
			Foreground(style.Slate)

	okStyle = lipgloss.NewStyle().
		Foreground(style.Green)

	errorStyle = lipgloss.NewStyle().
			Foreground(style.Red)

	warnStyle = lipgloss.NewStyle().
			Foreground(style.Yellow)

	cursorCellStyle = lipgloss.NewStyle().
			Reverse(true)

	selectedCellStyle = lipgloss.NewStyle().
				Foreground(style.Iris).
				Bold(true)

	occupiedCellStyle = lipgloss.NewStyle().
				Foreground(style.Green)

	restaurantCellStyle = lipgloss.NewStyle().
				Foreground(style.Yellow)

	sidebarStyle = lipgloss.NewStyle().
			PaddingLeft(3)

	formStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(style.Iris).
			Padding(0, 1)
)
