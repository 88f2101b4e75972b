package screen

import "fmt"

// InputKind enumerates the semantic inputs a screen reacts to.
type InputKind int

const (
	InputNoop InputKind = iota
	InputChar
	InputSubmit
	InputFocusNext
	InputFocusPrev
	InputCursorNext
	InputCursorPrev
	InputCancel
	InputBackspace
)

var inputNames = map[InputKind]string{
	InputNoop:       "noop",
	InputChar:       "char",
	InputSubmit:     "submit",
	InputFocusNext:  "focus-next",
	InputFocusPrev:  "focus-prev",
	InputCursorNext: "cursor-next",
	InputCursorPrev: "cursor-prev",
	InputCancel:     "cancel",
	InputBackspace:  "backspace",
}

func (k InputKind) String() string {
	if name, ok := inputNames[k]; ok {
		return name
	}
	return fmt.Sprintf("input(%d)", int(k))
}

// Input is one normalized key event. Text is only set for InputChar and holds
// the typed characters.
type Input struct {
	Kind InputKind
	Text string
}

// Char returns a character input.
func Char(text string) Input {
	return Input{Kind: InputChar, Text: text}
}

// Key returns an input of the given kind with no text.
func Key(kind InputKind) Input {
	return Input{Kind: kind}
}

func (in Input) String() string {
	if in.Kind == InputChar {
		return fmt.Sprintf("char(%q)", in.Text)
	}
	return in.Kind.String()
}
