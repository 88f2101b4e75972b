package screen

// Renderer draws one layout per handler call. It has no way to report back.
type Renderer interface {
	Draw(Layout)
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(Layout)

func (f RendererFunc) Draw(l Layout) { f(l) }

// Layout describes what a screen wants on the terminal. Implementations are
// TableLayout and FormLayout.
type Layout interface {
	isLayout()
}

// Column is a table column heading.
type Column struct {
	Title      string
	AlignRight bool
}

// TableLayout is a list screen. Selected is -1 when no row is highlighted.
type TableLayout struct {
	Title    string
	Columns  []Column
	Rows     [][]string
	Selected int
	Empty    string
	Hints    string
}

// FieldView is one box of the purchase form.
type FieldView struct {
	Label  string
	Before string
	At     string
	After  string
	Active bool
	Button bool
}

// Text returns the full contents of the field.
func (f FieldView) Text() string {
	return f.Before + f.At + f.After
}

// FormLayout is the purchase form: stacked boxes and an optional error.
type FormLayout struct {
	Title  string
	Fields []FieldView
	Err    string
	Hints  string
}

func (TableLayout) isLayout() {}
func (FormLayout) isLayout()  {}
