package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

const labelWidth = 7

// renderField renders "Label  <input>" and keeps single-line inputs on one
// visual line no wider than width.
func renderField(width int, label string, focused bool, inputView string, multiline bool) string {
	if width < 20 {
		width = 20
	}
	bodyW := width - labelWidth

	if !multiline {
		// A stray newline in a single-line input wraps and looks like an
		// inserted line break while typing.
		inputView = strings.ReplaceAll(inputView, "\n", " ")
		inputView = strings.ReplaceAll(inputView, "\r", " ")
		inputView = lipgloss.PlaceHorizontal(
			bodyW,
			lipgloss.Left,
			" "+inputView+" ",
			lipgloss.WithWhitespaceChars(" "),
			lipgloss.WithWhitespaceBackground(colorInputBg),
		)
		if xansi.StringWidth(inputView) > bodyW {
			// Terminate styling so a cut sequence does not bleed.
			inputView = xansi.Cut(inputView, 0, bodyW) + "\x1b[0m"
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, styleLabel(focused).Render(label), inputView)
}
