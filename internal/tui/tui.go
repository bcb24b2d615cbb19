// Package tui is the interactive list editor and comparison view.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the full-screen UI and blocks until the user quits.
func Run(opts Options) error {
	applyColorProfilePreference()
	applyThemePreference(opts.Theme)

	m := newAppModel(opts)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
