package screen

import (
	"testing"

	"github.com/budgr/budgr/internal/ledger"
	"github.com/budgr/budgr/internal/testutil"
)

func threePurchases() ledger.Log {
	return ledger.Log{Name: "Groceries", Purchases: testutil.Purchases("Milk", 200, "Eggs", 350, "Bread", 275)}
}

func TestDeleteLastRowReclampsCursor(t *testing.T) {
	d, book, rec := newTestDispatcher(t, threePurchases())
	detail := openLog(t, d, 0)
	tick(d, Key(InputCursorNext), Key(InputCursorNext))
	if got := detail.Cursor.Int(); got != 2 {
		t.Fatalf("expected cursor 2, got %d", got)
	}
	d.Tick(Char("d"))
	ps := book.Purchases(detail.LogID)
	if len(ps) != 2 || ps[0].Name != "Milk" || ps[1].Name != "Eggs" {
		t.Fatalf("unexpected purchases %#v", ps)
	}
	if got := detail.Cursor.Int(); got != 1 {
		t.Fatalf("expected cursor clamped to 1, got %d", got)
	}
	l := rec.table(t)
	if l.Selected != 1 || len(l.Rows) != 2 {
		t.Fatalf("expected 2 rows with row 1 selected, got %d rows selected %d", len(l.Rows), l.Selected)
	}
}

func TestDeleteMiddleKeepsCursor(t *testing.T) {
	d, book, _ := newTestDispatcher(t, threePurchases())
	detail := openLog(t, d, 0)
	tick(d, Key(InputCursorNext), Char("d"))
	if got := detail.Cursor.Int(); got != 1 {
		t.Fatalf("expected cursor 1, got %d", got)
	}
	ps := book.Purchases(detail.LogID)
	if len(ps) != 2 || ps[1].Name != "Bread" {
		t.Fatalf("unexpected purchases %#v", ps)
	}
}

func TestDeleteUntilEmptyClearsCursor(t *testing.T) {
	d, book, rec := newTestDispatcher(t, threePurchases())
	detail := openLog(t, d, 0)
	d.Tick(Key(InputCursorNext))
	tick(d, Char("d"), Char("d"), Char("d"), Char("d"))
	if n := len(book.Purchases(detail.LogID)); n != 0 {
		t.Fatalf("expected empty log, got %d purchases", n)
	}
	if got := detail.Cursor.Int(); got != -1 {
		t.Fatalf("expected no selection, got %d", got)
	}
	if l := rec.table(t); l.Selected != -1 || l.Empty == "" {
		t.Fatalf("expected empty table, got %#v", l)
	}
}

func TestDeleteWithoutSelectionIsNoop(t *testing.T) {
	d, book, _ := newTestDispatcher(t, threePurchases())
	detail := openLog(t, d, 0)
	d.Tick(Char("d"))
	if n := len(book.Purchases(detail.LogID)); n != 3 {
		t.Fatalf("expected 3 purchases, got %d", n)
	}
}

func TestStaleCursorIsClampedBeforeDraw(t *testing.T) {
	book := testutil.Book(t, threePurchases())
	id := testutil.LogID(t, book, "Groceries")
	rec := &recorder{}
	s := NewLogDetail(id)
	s.Cursor.Next(3)
	s.Cursor.Next(3)
	s.Cursor.Next(3)
	if err := book.RemovePurchase(id, 2); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if err := book.RemovePurchase(id, 1); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	handleLogDetail(s, Char("d"), book, rec)
	if got := s.Cursor.Int(); got != 0 {
		t.Fatalf("expected cursor clamped to 0, got %d", got)
	}
	if n := len(book.Purchases(id)); n != 1 {
		t.Fatalf("expected the stale delete to be dropped, got %d purchases", n)
	}
	if l := rec.table(t); l.Selected != 0 {
		t.Fatalf("expected row 0 drawn selected, got %d", l.Selected)
	}
}

func TestAddOpensForm(t *testing.T) {
	d, book, rec := newTestDispatcher(t, threePurchases())
	openLog(t, d, 0)
	d.Tick(Char("a"))
	form := purchaseForm(t, d)
	if form.LogID != testutil.LogID(t, book, "Groceries") || form.Active != FieldName {
		t.Fatalf("unexpected form %#v", form)
	}
	if l := rec.form(t); l.Title != "New purchase in Groceries" {
		t.Fatalf("unexpected title %q", l.Title)
	}
}

func TestLogDetailRows(t *testing.T) {
	log := ledger.Log{Name: "Bills", Purchases: []ledger.Purchase{
		{Name: "Rent", Tag: ledger.TagBill, Cost: 1250000},
		{Name: "Snack", Cost: 3},
	}}
	d, _, rec := newTestDispatcher(t, log)
	openLog(t, d, 0)
	l := rec.table(t)
	if l.Title != "Bills" {
		t.Fatalf("unexpected title %q", l.Title)
	}
	want := [][]string{{"Rent", "Bill", "1,250,000"}, {"Snack", "", "3"}}
	for i, row := range want {
		for j, cell := range row {
			if l.Rows[i][j] != cell {
				t.Fatalf("row %d col %d: expected %q, got %q", i, j, cell, l.Rows[i][j])
			}
		}
	}
}

func TestUnknownLogRendersEmpty(t *testing.T) {
	book := testutil.Book(t)
	rec := &recorder{}
	req, ok := handleLogDetail(NewLogDetail("missing"), Key(InputCursorNext), book, rec)
	if ok {
		t.Fatalf("unexpected request %s", req)
	}
	l := rec.table(t)
	if len(l.Rows) != 0 || l.Selected != -1 {
		t.Fatalf("expected empty table, got %#v", l)
	}
}
