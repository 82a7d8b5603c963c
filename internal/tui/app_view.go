package tui

import (
	"fmt"
	"strings"

	"commentbox/internal/comment"
	"commentbox/internal/validate"

	"github.com/charmbracelet/lipgloss"
)

func (m appModel) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(),
		"",
		m.formView(),
		"",
		m.list.View(),
		m.helpView(),
	)
}

func (m appModel) headerView() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(colorAccentFg).Background(colorAccent).Padding(0, 1).Render("Comments")
	n := m.ctrl.Thread().Len()
	meta := styleMuted().Background(colorControlBg).Padding(0, 1).Render(fmt.Sprintf("%d · order: %s", n, m.ctrl.Thread().Order()))
	return title + " " + meta
}

func (m appModel) formView() string {
	rows := []string{
		renderField(m.width, "Name", m.focus == focusName, m.nameInput.View(), false),
		m.notificationFor(validate.FieldName),
		renderField(m.width, "Text", m.focus == focusText, m.textInput.View(), true),
		m.notificationFor(validate.FieldText),
		renderField(m.width, "Date", m.focus == focusDate, m.dateInput.View(), false),
		m.notificationFor(validate.FieldDate),
	}
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		if r != "" {
			out = append(out, r)
		}
	}
	return strings.Join(out, "\n")
}

func (m appModel) helpView() string {
	if m.focus == focusList {
		return m.help.ShortHelpView(m.keys.listHelp())
	}
	return m.help.ShortHelpView(m.keys.formHelp(m.focus == focusDate))
}

// listHeight is what is left for the comment viewport below the form.
func (m appModel) listHeight() int {
	used := lipgloss.Height(m.headerView()) + lipgloss.Height(m.formView()) + 2 + 1
	h := m.height - used
	if h < 3 {
		h = 3
	}
	return h
}

// refreshList re-projects the thread into the viewport and keeps the
// selected card in view.
func (m *appModel) refreshList() {
	m.list.Width = m.width
	m.list.Height = m.listHeight()

	th := m.ctrl.Thread()
	st := th.State()
	if st.Empty {
		m.list.SetContent(styleMuted().Italic(true).Render(st.Placeholder))
		m.list.SetYOffset(0)
		return
	}

	now := m.now()
	opts := comment.RenderOptions{ShowCloseButton: m.ctrl.Settings().ShowAddonCloseButton}

	var b strings.Builder
	top, bottom := 0, 0
	line := 0
	for i, c := range th.Comments() {
		selected := m.focus == focusList && i == m.selected
		card := renderCard(comment.Render(c, now, opts), m.width, selected)
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(card)
		h := lipgloss.Height(card)
		if i == m.selected {
			top, bottom = line, line+h-1
		}
		line += h
	}
	m.list.SetContent(b.String())

	if m.focus != focusList {
		return
	}
	if top < m.list.YOffset {
		m.list.SetYOffset(top)
	} else if bottom >= m.list.YOffset+m.list.Height {
		m.list.SetYOffset(bottom - m.list.Height + 1)
	}
}
