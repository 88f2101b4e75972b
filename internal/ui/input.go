package ui

import (
	"github.com/budgr/budgr/internal/ui/screen"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	Submit     key.Binding
	Cancel     key.Binding
	Backspace  key.Binding
	CursorNext key.Binding
	CursorPrev key.Binding
	FocusNext  key.Binding
	FocusPrev  key.Binding
	Quit       key.Binding
}

var keys = keyMap{
	Submit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	Cancel:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Backspace:  key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete")),
	CursorNext: key.NewBinding(key.WithKeys("down", "right", "ctrl+n"), key.WithHelp("↓/→", "next")),
	CursorPrev: key.NewBinding(key.WithKeys("up", "left", "ctrl+p"), key.WithHelp("↑/←", "prev")),
	FocusNext:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
	FocusPrev:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
	Quit:       key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
}

var bindings = []struct {
	binding *key.Binding
	kind    screen.InputKind
}{
	{&keys.Submit, screen.InputSubmit},
	{&keys.Cancel, screen.InputCancel},
	{&keys.Backspace, screen.InputBackspace},
	{&keys.CursorNext, screen.InputCursorNext},
	{&keys.CursorPrev, screen.InputCursorPrev},
	{&keys.FocusNext, screen.InputFocusNext},
	{&keys.FocusPrev, screen.InputFocusPrev},
}

// Normalize maps a raw key press to the input the screens understand.
// Printable text, including pastes and the space bar, becomes a Char input;
// keys with no meaning become Noop.
func Normalize(msg tea.KeyMsg) screen.Input {
	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return screen.Key(screen.InputNoop)
		}
		return screen.Char(string(msg.Runes))
	case tea.KeySpace:
		return screen.Char(" ")
	}
	for _, b := range bindings {
		if key.Matches(msg, *b.binding) {
			return screen.Key(b.kind)
		}
	}
	return screen.Key(screen.InputNoop)
}
