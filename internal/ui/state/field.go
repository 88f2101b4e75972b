package state

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// Field is a single line of editable text. The caret counts grapheme
// clusters, so a combined character moves and deletes as one unit.
type Field struct {
	text  string
	caret int
}

// Text returns the field contents.
func (f Field) Text() string { return f.text }

// Caret returns the caret position in graphemes, in [0, Len()].
func (f Field) Caret() int {
	if f.caret < 0 {
		return 0
	}
	if n := f.Len(); f.caret > n {
		return n
	}
	return f.caret
}

// Len returns the number of graphemes in the field.
func (f Field) Len() int {
	return uniseg.GraphemeClusterCount(f.text)
}

// Split returns the text before the caret, the grapheme under it (empty at
// the end of the text) and the text after it.
func (f Field) Split() (before, at, after string) {
	gs := graphemes(f.text)
	pos := f.Caret()
	before = strings.Join(gs[:pos], "")
	if pos < len(gs) {
		at = gs[pos]
		after = strings.Join(gs[pos+1:], "")
	}
	return before, at, after
}

// Insert places text at the caret and moves the caret past it. Control
// characters are dropped from text; nothing changes when none remain.
func (f *Field) Insert(text string) bool {
	text = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, text)
	if text == "" {
		return false
	}
	gs := graphemes(f.text)
	pos := f.Caret()
	head := strings.Join(gs[:pos], "") + text
	f.text = head + strings.Join(gs[pos:], "")
	f.caret = uniseg.GraphemeClusterCount(head)
	f.caret = f.Caret()
	return true
}

// Backspace removes the grapheme left of the caret.
func (f *Field) Backspace() bool {
	pos := f.Caret()
	if pos == 0 {
		return false
	}
	gs := graphemes(f.text)
	f.text = strings.Join(gs[:pos-1], "") + strings.Join(gs[pos:], "")
	f.caret = pos - 1
	return true
}

// CaretNext moves the caret one grapheme right.
func (f *Field) CaretNext() bool {
	pos := f.Caret()
	if pos >= f.Len() {
		return false
	}
	f.caret = pos + 1
	return true
}

// CaretPrev moves the caret one grapheme left.
func (f *Field) CaretPrev() bool {
	pos := f.Caret()
	if pos == 0 {
		return false
	}
	f.caret = pos - 1
	return true
}

func graphemes(s string) []string {
	out := make([]string, 0, len(s))
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}
