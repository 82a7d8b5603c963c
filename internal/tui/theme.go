package tui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// The widget must stay readable on light and dark terminals, so every color
// is adaptive and "faint" is only applied on dark backgrounds.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

var (
	colorMuted     = ac("240", "243")
	colorSurfaceFg = ac("235", "252")
	colorControlBg = ac("252", "235")
	colorInputBg   = ac("254", "234")
	colorAccent    = ac("27", "62")
	colorAccentFg  = ac("255", "235")
	colorLikeFg    = ac("161", "205")

	colorCardBorder     = ac("250", "243")
	colorSelectedBorder = ac("232", "255")

	colorErrorBg = ac("196", "160")
	colorErrorFg = ac("255", "255")
)

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

func styleLabel(focused bool) lipgloss.Style {
	st := lipgloss.NewStyle().Bold(true).Width(labelWidth)
	if focused {
		return st.Foreground(colorAccent)
	}
	return st.Foreground(colorSurfaceFg)
}

func applyColorProfilePreference() {
	lipgloss.SetColorProfile(colorProfileFor(os.Getenv, termenv.ColorProfile()))
}

// colorProfileFor honors NO_COLOR and otherwise keeps the detected profile.
// CLICOLOR is ignored: it turns colors off in places where a full-screen
// widget still wants them.
func colorProfileFor(getenv func(string) string, detected termenv.Profile) termenv.Profile {
	if strings.TrimSpace(getenv("NO_COLOR")) != "" {
		return termenv.Ascii
	}
	return detected
}

func applyThemePreference() {
	if dark, ok := darkBackgroundFor(os.Getenv); ok {
		lipgloss.SetHasDarkBackground(dark)
	}
}

// darkBackgroundFor reads COMMENTBOX_TUI_THEME (light|dark), then the
// terminal's COLORFGBG. ok is false when neither decides and lipgloss keeps
// its own detection.
func darkBackgroundFor(getenv func(string) string) (dark bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(getenv("COMMENTBOX_TUI_THEME"))) {
	case "light":
		return false, true
	case "dark":
		return true, true
	}

	v := strings.TrimSpace(getenv("COLORFGBG"))
	if v == "" {
		return false, false
	}
	parts := strings.Split(v, ";")
	bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1]))
	if err != nil {
		return false, false
	}
	// xterm palette: 0-6 and 8 are dark backgrounds.
	return bg < 7 || bg == 8, true
}
