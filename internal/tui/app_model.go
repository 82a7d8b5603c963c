package tui

import (
	"time"

	"commentbox/internal/datefmt"
	"commentbox/internal/form"
	"commentbox/internal/validate"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

type focusArea int

const (
	focusName focusArea = iota
	focusText
	focusDate
	focusList
)

func areaFor(fd validate.Field) focusArea {
	switch fd {
	case validate.FieldText:
		return focusText
	case validate.FieldDate:
		return focusDate
	default:
		return focusName
	}
}

// focusFieldMsg carries a deferred focus request; it is delivered after the
// key event that triggered the submit has been handled.
type focusFieldMsg struct{ area focusArea }

const dateSep = "-"

type appModel struct {
	ctrl *form.Controller
	log  *zap.Logger
	now  func() time.Time

	keys keyMap
	help help.Model

	nameInput textinput.Model
	textInput textarea.Model
	dateInput textinput.Model
	list      viewport.Model

	focus    focusArea
	selected int

	width  int
	height int
}

func newAppModel(ctrl *form.Controller, log *zap.Logger, now func() time.Time) appModel {
	if log == nil {
		log = zap.NewNop()
	}
	if now == nil {
		now = time.Now
	}
	m := appModel{
		ctrl:   ctrl,
		log:    log,
		now:    now,
		keys:   newKeyMap(ctrl.Settings().ShowAddonCloseButton),
		help:   help.New(),
		width:  80,
		height: 24,
	}

	m.nameInput = textinput.New()
	m.nameInput.Placeholder = "Your name"
	m.nameInput.CharLimit = 120

	m.textInput = textarea.New()
	m.textInput.Placeholder = "Write a comment… (markdown)"
	m.textInput.CharLimit = 0
	m.textInput.ShowLineNumbers = false
	m.textInput.SetHeight(3)
	// Enter posts; newlines need a modifier.
	m.textInput.KeyMap.InsertNewline = key.NewBinding(key.WithKeys("alt+enter", "ctrl+j"))

	m.dateInput = textinput.New()
	m.dateInput.Placeholder = "YYYY-MM-DD"
	m.dateInput.CharLimit = 10

	today := datefmt.FormatInput(now(), dateSep)
	m.dateInput.SetValue(today)
	ctrl.Form().Prefill(validate.FieldDate, today)

	m.list = viewport.New(m.width, 10)
	m.resize()
	m.nameInput.Focus()
	m.refreshList()
	return m
}

func (m appModel) Init() tea.Cmd { return textinput.Blink }

func (m *appModel) resize() {
	inputW := m.width - labelWidth - 2
	if inputW < 10 {
		inputW = 10
	}
	m.nameInput.Width = inputW - 2
	m.dateInput.Width = inputW - 2
	m.textInput.SetWidth(inputW)
	m.help.Width = m.width
}
