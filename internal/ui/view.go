package ui

import (
	"fmt"
	"strings"

	"github.com/budgr/budgr/internal/format/table"
	"github.com/budgr/budgr/internal/ui/screen"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const defaultFieldWidth = 40

type styledLine struct {
	text  string
	style *lipgloss.Style
	fill  bool // pad the styled text to the frame width
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.dispatcher.Done() {
		return ""
	}
	switch l := m.frame.(type) {
	case screen.TableLayout:
		return m.viewTable(l)
	case screen.FormLayout:
		return m.viewForm(l)
	}
	return ""
}

func (m *Model) viewTable(l screen.TableLayout) string {
	lines := []styledLine{{text: l.Title, style: styles.Title}}
	if len(l.Rows) == 0 {
		lines = append(lines, styledLine{}, styledLine{text: l.Empty, style: styles.Info})
		return m.finish(lines, l.Hints)
	}
	headers := make([]string, len(l.Columns))
	aligns := make([]table.Alignment, len(l.Columns))
	for i, c := range l.Columns {
		headers[i] = c.Title
		if c.AlignRight {
			aligns[i] = table.AlignRight
		}
	}
	formatted := table.Format(append([][]string{headers}, l.Rows...), aligns)
	lines = append(lines, styledLine{text: formatted[0], style: styles.Header})
	rows := formatted[1:]
	start, end := visibleRows(len(rows), l.Selected, m.maxVisibleRows())
	for i := start; i < end; i++ {
		style := styles.RowEven
		if i%2 == 1 {
			style = styles.RowOdd
		}
		if i == l.Selected {
			style = styles.SelectedRow
		}
		lines = append(lines, styledLine{text: rows[i], style: style, fill: true})
	}
	if start > 0 || end < len(rows) {
		lines = append(lines, styledLine{text: fmt.Sprintf("%d-%d of %d", start+1, end, len(rows)), style: styles.Footer})
	}
	return m.finish(lines, l.Hints)
}

// maxVisibleRows is the number of table rows that fit under the title and
// column headings, or 0 when the height is unknown.
func (m *Model) maxVisibleRows() int {
	if m.height <= 0 {
		return 0
	}
	reserved := 3 // title, headings, range indicator
	if m.showFooter {
		reserved += 2
	}
	if rows := m.height - reserved; rows > 0 {
		return rows
	}
	return 1
}

// visibleRows returns the window [start, end) of n rows that keeps selected
// in view. max <= 0 shows everything.
func visibleRows(n, selected, max int) (int, int) {
	if max <= 0 || n <= max {
		return 0, n
	}
	start := 0
	if selected >= max {
		start = selected - max + 1
	}
	return start, start + max
}

func (m *Model) viewForm(l screen.FormLayout) string {
	lines := []styledLine{{text: l.Title, style: styles.Title}, {}}
	out := m.render(lines)
	boxes := make([]string, 0, len(l.Fields))
	for _, f := range l.Fields {
		boxes = append(boxes, m.fieldBox(f))
	}
	out = append(out, lipgloss.JoinVertical(lipgloss.Left, boxes...))
	var tail []styledLine
	if l.Err != "" {
		tail = append(tail, styledLine{text: "Error: " + l.Err, style: styles.Error})
	}
	out = append(out, m.render(m.footer(tail, l.Hints))...)
	return strings.Join(out, "\n")
}

func (m *Model) fieldBox(f screen.FieldView) string {
	width := defaultFieldWidth
	if m.width > 0 {
		width = m.width
	}
	if f.Button {
		style := styles.Button
		if f.Active {
			style = styles.ActiveButton
		}
		return style.Render(f.Text())
	}
	style := styles.Field
	if f.Active {
		style = styles.ActiveField
	}
	inner := width - style.GetHorizontalFrameSize()
	if inner < 1 {
		inner = 1
	}
	body := f.Text()
	if f.Active {
		body = f.Before + m.caretView(f.At) + f.After
	}
	body = truncate.StringWithTail(body, uint(inner), "…")
	label := styles.Label.Render(f.Label)
	return lipgloss.JoinVertical(lipgloss.Left, label, style.Width(inner+style.GetHorizontalPadding()).Render(body))
}

func (m *Model) caretView(at string) string {
	if at == "" {
		at = " "
	}
	c := m.caret
	c.SetChar(at)
	return c.View()
}

func (m *Model) finish(lines []styledLine, hints string) string {
	return strings.Join(m.render(m.footer(lines, hints)), "\n")
}

func (m *Model) footer(lines []styledLine, hints string) []styledLine {
	if m.showFooter && hints != "" {
		lines = append(lines, styledLine{}, styledLine{text: hints, style: styles.Footer})
	}
	return lines
}

func (m *Model) render(lines []styledLine) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := truncateText(line.text, m.width)
		if line.style == nil {
			out[i] = text
			continue
		}
		style := *line.style
		if line.fill && m.width > 0 {
			style = style.Width(m.width)
		}
		out[i] = style.Render(text)
	}
	return out
}

func truncateText(text string, width int) string {
	if width <= 0 || lipgloss.Width(text) <= width {
		return text
	}
	return truncate.StringWithTail(text, uint(width), "…")
}
