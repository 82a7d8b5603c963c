package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Submit   key.Binding
	Newline  key.Binding
	Next     key.Binding
	Prev     key.Binding
	DayUp    key.Binding
	DayDown  key.Binding
	Up       key.Binding
	Down     key.Binding
	Like     key.Binding
	Trash    key.Binding
	Close    key.Binding
	BackForm key.Binding
	Quit     key.Binding
}

func newKeyMap(showClose bool) keyMap {
	km := keyMap{
		Submit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "post")),
		Newline:  key.NewBinding(key.WithKeys("alt+enter", "ctrl+j"), key.WithHelp("alt+enter", "newline")),
		Next:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		Prev:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev")),
		DayUp:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑/↓", "day")),
		DayDown:  key.NewBinding(key.WithKeys("down")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Like:     key.NewBinding(key.WithKeys("l", " "), key.WithHelp("l", "like")),
		Trash:    key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		Close:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "close")),
		BackForm: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "form")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
	km.Close.SetEnabled(showClose)
	return km
}

func (k keyMap) formHelp(onDate bool) []key.Binding {
	out := []key.Binding{k.Submit, k.Next, k.Newline}
	if onDate {
		out = append(out, k.DayUp)
	}
	return append(out, k.Quit)
}

func (k keyMap) listHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Like, k.Trash, k.Close, k.BackForm, k.Quit}
}
