package theme

import "github.com/charmbracelet/lipgloss"

// Slate shades used for the alternating table rows.
const (
	slate800 = lipgloss.Color("#1e293b")
	slate900 = lipgloss.Color("#0f172a")
	slate200 = lipgloss.Color("#e2e8f0")
	accent   = lipgloss.Color("33")
)

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Title        *lipgloss.Style
	Header       *lipgloss.Style
	RowEven      *lipgloss.Style
	RowOdd       *lipgloss.Style
	SelectedRow  *lipgloss.Style
	Info         *lipgloss.Style
	Label        *lipgloss.Style
	Field        *lipgloss.Style
	ActiveField  *lipgloss.Style
	Button       *lipgloss.Style
	ActiveButton *lipgloss.Style
	Cursor       *lipgloss.Style
	Error        *lipgloss.Style
	Footer       *lipgloss.Style
}

var defaultStyles = Styles{
	Title: ptr(
		lipgloss.NewStyle().Foreground(accent).Bold(true),
	),
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	RowEven: ptr(
		lipgloss.NewStyle().Foreground(slate200).Background(slate800),
	),
	RowOdd: ptr(
		lipgloss.NewStyle().Foreground(slate200).Background(slate900),
	),
	SelectedRow: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true).Reverse(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")).Italic(true),
	),
	Label: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	Field: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
	),
	ActiveField: ptr(
		lipgloss.NewStyle().Border(lipgloss.ThickBorder()).BorderForeground(accent).Padding(0, 1),
	),
	Button: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1).Foreground(lipgloss.Color("249")),
	),
	ActiveButton: ptr(
		lipgloss.NewStyle().Border(lipgloss.ThickBorder()).BorderForeground(accent).Padding(0, 1).Foreground(accent).Bold(true),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(accent),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
