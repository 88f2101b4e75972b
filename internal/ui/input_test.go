package ui

import (
	"testing"

	"github.com/budgr/budgr/internal/ui/screen"
	tea "github.com/charmbracelet/bubbletea"
)

func TestNormalizeKeys(t *testing.T) {
	cases := []struct {
		name string
		msg  tea.KeyMsg
		want screen.Input
	}{
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, screen.Key(screen.InputSubmit)},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, screen.Key(screen.InputCancel)},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, screen.Key(screen.InputBackspace)},
		{"ctrl+h", tea.KeyMsg{Type: tea.KeyCtrlH}, screen.Key(screen.InputBackspace)},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, screen.Key(screen.InputCursorNext)},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, screen.Key(screen.InputCursorNext)},
		{"ctrl+n", tea.KeyMsg{Type: tea.KeyCtrlN}, screen.Key(screen.InputCursorNext)},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, screen.Key(screen.InputCursorPrev)},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, screen.Key(screen.InputCursorPrev)},
		{"ctrl+p", tea.KeyMsg{Type: tea.KeyCtrlP}, screen.Key(screen.InputCursorPrev)},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, screen.Key(screen.InputFocusNext)},
		{"shift+tab", tea.KeyMsg{Type: tea.KeyShiftTab}, screen.Key(screen.InputFocusPrev)},
		{"rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")}, screen.Char("a")},
		{"paste", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("450"), Paste: true}, screen.Char("450")},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, screen.Char(" ")},
		{"alt rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a"), Alt: true}, screen.Key(screen.InputNoop)},
		{"f1", tea.KeyMsg{Type: tea.KeyF1}, screen.Key(screen.InputNoop)},
		{"home", tea.KeyMsg{Type: tea.KeyHome}, screen.Key(screen.InputNoop)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.msg); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}
