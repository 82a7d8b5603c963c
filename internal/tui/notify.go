package tui

import (
	"commentbox/internal/form"
	"commentbox/internal/validate"

	"github.com/charmbracelet/lipgloss"
)

// renderNotification draws the error balloon shown under a field. The
// leading pad lines it up with the field's input column.
func renderNotification(width int, n form.Notification) string {
	maxW := width - labelWidth - 2
	if maxW < 10 {
		maxW = 10
	}
	balloon := lipgloss.NewStyle().
		Foreground(colorErrorFg).
		Background(colorErrorBg).
		Bold(true).
		Padding(0, 1).
		MaxWidth(maxW).
		Render("▲ " + n.Message)
	return lipgloss.NewStyle().PaddingLeft(labelWidth + 1).Render(balloon)
}

// notificationFor returns the rendered balloon for fd, or "" if there is none.
func (m appModel) notificationFor(fd validate.Field) string {
	n, ok := m.ctrl.Form().Notification(fd)
	if !ok {
		return ""
	}
	return renderNotification(m.width, n)
}
