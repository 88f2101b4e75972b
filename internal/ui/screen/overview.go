package screen

import (
	"strconv"

	"github.com/budgr/budgr/internal/ledger"
	"github.com/budgr/budgr/internal/logging/events"
	"github.com/dustin/go-humanize"
)

const (
	overviewTitle = "budgr"
	overviewEmpty = "No logs yet. Start budgr with -new-log NAME to create one."
	overviewHints = "↑/↓ move  enter open  esc quit"
)

func handleOverview(s *Overview, in Input, store Store, r Renderer) (Request, bool) {
	logs := store.Logs()
	var (
		req Request
		ok  bool
	)
	switch in.Kind {
	case InputCursorNext:
		if s.Cursor.Next(len(logs)) {
			events.Screen.Cursor(s.Name(), s.Cursor.Int())
		}
	case InputCursorPrev:
		if s.Cursor.Prev(len(logs)) {
			events.Screen.Cursor(s.Name(), s.Cursor.Int())
		}
	case InputSubmit:
		if s.Cursor.Valid(len(logs)) {
			i, _ := s.Cursor.Index()
			req, ok = OpenLog(logs[i].ID), true
		}
	case InputCancel:
		req, ok = Terminate(), true
	}
	s.Cursor.Clamp(len(logs))
	r.Draw(overviewLayout(logs, s))
	return req, ok
}

func overviewLayout(logs []ledger.Summary, s *Overview) TableLayout {
	rows := make([][]string, len(logs))
	for i, l := range logs {
		rows[i] = []string{l.Name, strconv.Itoa(l.PurchaseCount), humanize.Comma(l.Total)}
	}
	return TableLayout{
		Title: overviewTitle,
		Columns: []Column{
			{Title: "log name"},
			{Title: "purchases", AlignRight: true},
			{Title: "total", AlignRight: true},
		},
		Rows:     rows,
		Selected: s.Cursor.Int(),
		Empty:    overviewEmpty,
		Hints:    overviewHints,
	}
}
