package ui

import (
	"reflect"

	"github.com/budgr/budgr/internal/logging/events"
	"github.com/budgr/budgr/internal/theme"
	"github.com/budgr/budgr/internal/ui/screen"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model. Screen logic lives in the
// dispatcher; the model feeds it key presses and keeps the last layout it drew.
type Model struct {
	dispatcher  *screen.Dispatcher
	frame       screen.Layout
	draws       int
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	interrupted bool
	caret       cursor.Model

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the model over store and paints the overview. Width and
// height greater than zero pin the frame size; otherwise the terminal size is
// used as it is reported.
func NewModel(store screen.Store, width, height int, showFooter bool) *Model {
	m := &Model{showFooter: showFooter}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = *styles.Cursor
	}
	c.Focus()
	c.SetMode(cursor.CursorStatic)
	m.caret = c
	m.registerHandlers()
	m.dispatcher = screen.NewDispatcher(store, screen.RendererFunc(m.draw))
	m.dispatcher.Start()
	return m
}

func (m *Model) draw(l screen.Layout) {
	m.frame = l
	m.draws++
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	var keyMsg tea.KeyMsg
	switch v := msg.(type) {
	case tea.KeyMsg:
		keyMsg = v
	case *tea.KeyMsg:
		keyMsg = *v
	default:
		return nil
	}
	if key.Matches(keyMsg, keys.Quit) {
		m.interrupted = true
		events.App.Interrupt()
		return tea.Quit
	}
	m.dispatcher.Tick(Normalize(keyMsg))
	if m.dispatcher.Done() {
		return tea.Quit
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	var size tea.WindowSizeMsg
	switch v := msg.(type) {
	case tea.WindowSizeMsg:
		size = v
	case *tea.WindowSizeMsg:
		size = *v
	default:
		return nil
	}
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	return nil
}

// Screen returns the active screen.
func (m *Model) Screen() screen.Screen {
	return m.dispatcher.Current()
}

// Done reports whether the screens asked to terminate.
func (m *Model) Done() bool {
	return m.dispatcher.Done()
}

// Interrupted reports whether the program was stopped with ctrl+c.
func (m *Model) Interrupted() bool {
	return m.interrupted
}

// Frame returns the most recently drawn layout and how many draws happened.
func (m *Model) Frame() (screen.Layout, int) {
	return m.frame, m.draws
}
