package screen

import (
	"fmt"

	"github.com/budgr/budgr/internal/ledger"
	"github.com/budgr/budgr/internal/logging/events"
	"github.com/dustin/go-humanize"
)

const (
	logDetailEmpty = "No purchases yet. Press a to add one."
	logDetailHints = "↑/↓ move  a add  d delete  esc back"
)

func handleLogDetail(s *LogDetail, in Input, store Store, r Renderer) (Request, bool) {
	purchases := store.Purchases(s.LogID)
	var (
		req Request
		ok  bool
	)
	switch in.Kind {
	case InputCursorNext:
		if s.Cursor.Next(len(purchases)) {
			events.Screen.Cursor(s.Name(), s.Cursor.Int())
		}
	case InputCursorPrev:
		if s.Cursor.Prev(len(purchases)) {
			events.Screen.Cursor(s.Name(), s.Cursor.Int())
		}
	case InputChar:
		switch in.Text {
		case "a":
			req, ok = NewPurchase(s.LogID), true
		case "d":
			if i, set := s.Cursor.Index(); set {
				// A stale index is reported by the store and recovered by the
				// clamp below.
				if err := store.RemovePurchase(s.LogID, i); err == nil {
					purchases = store.Purchases(s.LogID)
				}
			}
		}
	case InputCancel:
		req, ok = Pop(), true
	}
	s.Cursor.Clamp(len(purchases))
	r.Draw(logDetailLayout(store, purchases, s))
	return req, ok
}

func logDetailLayout(store Store, purchases []ledger.Purchase, s *LogDetail) TableLayout {
	title, found := logName(store, s.LogID)
	if !found {
		title = fmt.Sprintf("unknown log %s", s.LogID)
	}
	rows := make([][]string, len(purchases))
	for i, p := range purchases {
		rows[i] = []string{p.Name, string(p.Tag), humanize.Comma(p.Cost)}
	}
	return TableLayout{
		Title: title,
		Columns: []Column{
			{Title: "name"},
			{Title: "tag"},
			{Title: "cost", AlignRight: true},
		},
		Rows:     rows,
		Selected: s.Cursor.Int(),
		Empty:    logDetailEmpty,
		Hints:    logDetailHints,
	}
}
