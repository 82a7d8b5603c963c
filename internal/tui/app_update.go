package tui

import (
	"commentbox/internal/datefmt"
	"commentbox/internal/form"
	"commentbox/internal/validate"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.refreshList()
		return m, nil

	case focusFieldMsg:
		cmd := m.setFocus(msg.area)
		return m, cmd

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if m.focus == focusList {
			return m.updateList(msg)
		}
		return m.updateForm(msg)
	}

	return m.forwardToInput(msg)
}

func (m appModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.ctrl.Form().Locked() {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	case key.Matches(msg, m.keys.Next):
		return m, m.setFocus(m.nextArea(1))
	case key.Matches(msg, m.keys.Prev):
		return m, m.setFocus(m.nextArea(-1))
	case m.focus == focusDate && key.Matches(msg, m.keys.DayUp):
		m.stepDate(1)
		return m, nil
	case m.focus == focusDate && key.Matches(msg, m.keys.DayDown):
		m.stepDate(-1)
		return m, nil
	}
	return m.forwardToInput(msg)
}

// forwardToInput hands msg to the focused input and mirrors its value into
// the form as an input event.
func (m appModel) forwardToInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusName:
		m.nameInput, cmd = m.nameInput.Update(msg)
		m.ctrl.Form().SetValue(validate.FieldName, m.nameInput.Value())
	case focusText:
		m.textInput, cmd = m.textInput.Update(msg)
		m.ctrl.Form().SetValue(validate.FieldText, m.textInput.Value())
	case focusDate:
		m.dateInput, cmd = m.dateInput.Update(msg)
		m.ctrl.Form().SetValue(validate.FieldDate, m.dateInput.Value())
	default:
		return m, nil
	}
	m.refreshList()
	return m, cmd
}

func (m appModel) submit() (tea.Model, tea.Cmd) {
	out := m.ctrl.Submit()
	if out.Ignored {
		return m, nil
	}
	if out.Err != nil {
		area := areaFor(out.Focus.Field)
		m.refreshList()
		if out.Focus.Deferred {
			return m, func() tea.Msg { return focusFieldMsg{area: area} }
		}
		return m, m.setFocus(area)
	}

	m.selected = out.Index
	m.refreshList()
	return m, nil
}

// nextArea cycles name → text → date → list, skipping an empty list.
func (m appModel) nextArea(dir int) focusArea {
	n := 4
	if m.ctrl.Thread().IsEmpty() {
		n = 3
	}
	return focusArea((int(m.focus) + dir + n) % n)
}

func (m *appModel) setFocus(a focusArea) tea.Cmd {
	if m.focus == focusDate && a != focusDate && m.ctrl.Form().Kind(validate.FieldDate) == form.InputPicker {
		// Leaving the picker completes its change.
		m.ctrl.Form().Commit(validate.FieldDate)
	}
	m.nameInput.Blur()
	m.textInput.Blur()
	m.dateInput.Blur()
	m.focus = a

	var cmd tea.Cmd
	switch a {
	case focusName:
		cmd = m.nameInput.Focus()
	case focusText:
		cmd = m.textInput.Focus()
	case focusDate:
		cmd = m.dateInput.Focus()
	case focusList:
		m.clampSelection()
	}
	m.refreshList()
	return cmd
}

// stepDate moves the picker by delta days. An unreadable value resets to
// today. Each step is a completed change.
func (m *appModel) stepDate(delta int) {
	now := m.now()
	d, ok := validate.ParseDateIn(m.dateInput.Value(), now.Location())
	if ok {
		d = d.AddDate(0, 0, delta)
	} else {
		d = datefmt.StartOfDay(now)
	}
	v := datefmt.FormatInput(d, dateSep)
	m.dateInput.SetValue(v)
	m.dateInput.CursorEnd()

	f := m.ctrl.Form()
	f.SetValue(validate.FieldDate, v)
	f.Commit(validate.FieldDate)
	m.refreshList()
}

func (m appModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	th := m.ctrl.Thread()

	switch {
	case key.Matches(msg, m.keys.BackForm), key.Matches(msg, m.keys.Next):
		return m, m.setFocus(focusName)
	case key.Matches(msg, m.keys.Prev):
		return m, m.setFocus(focusDate)
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(msg, m.keys.Down):
		if m.selected < th.Len()-1 {
			m.selected++
		}
	case key.Matches(msg, m.keys.Like):
		if id, ok := m.selectedID(); ok {
			liked, _ := th.ToggleLike(id)
			m.log.Debug("like toggled", zap.String("id", id), zap.Bool("liked", liked))
		}
	case key.Matches(msg, m.keys.Trash):
		return m.removeSelected("trash")
	case key.Matches(msg, m.keys.Close):
		return m.removeSelected("close")
	}

	m.refreshList()
	return m, nil
}

func (m appModel) removeSelected(via string) (tea.Model, tea.Cmd) {
	id, ok := m.selectedID()
	if !ok {
		return m, nil
	}
	th := m.ctrl.Thread()
	th.Remove(id)
	m.log.Debug("comment removed",
		zap.String("id", id),
		zap.String("via", via),
		zap.Int("remaining", th.Len()),
		zap.Bool("empty", th.State().Empty),
	)
	if th.IsEmpty() {
		return m, m.setFocus(focusName)
	}
	m.clampSelection()
	m.refreshList()
	return m, nil
}

func (m appModel) selectedID() (string, bool) {
	cs := m.ctrl.Thread().Comments()
	if m.selected < 0 || m.selected >= len(cs) {
		return "", false
	}
	return cs[m.selected].ID, true
}

func (m *appModel) clampSelection() {
	n := m.ctrl.Thread().Len()
	if m.selected >= n {
		m.selected = n - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}
