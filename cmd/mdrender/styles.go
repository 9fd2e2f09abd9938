package main

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// styles holds the lipgloss styles for the targets listing. Colors are ANSI
// indices so output follows the terminal's palette.
type styles struct {
	Name        lipgloss.Style
	Description lipgloss.Style
	Supported   lipgloss.Style
	Unsupported lipgloss.Style
}

func newStyles() styles {
	return styles{
		Name:        lipgloss.NewStyle().Foreground(ansiColor(5)).Bold(true).Width(8),
		Description: lipgloss.NewStyle().Width(44),
		Supported:   lipgloss.NewStyle().Foreground(ansiColor(2)),
		Unsupported: lipgloss.NewStyle().Foreground(ansiColor(8)).Faint(true).Strikethrough(true),
	}
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}
