package tui

import (
	"commentbox/internal/form"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

func Run(ctrl *form.Controller, log *zap.Logger) error {
	applyThemePreference()
	applyColorProfilePreference()

	m := newAppModel(ctrl, log, nil)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
