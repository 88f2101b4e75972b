package screen

import (
	"testing"

	"github.com/budgr/budgr/internal/ledger"
	"github.com/budgr/budgr/internal/testutil"
)

type recorder struct {
	layouts []Layout
}

func (r *recorder) Draw(l Layout) { r.layouts = append(r.layouts, l) }

func (r *recorder) last(t *testing.T) Layout {
	t.Helper()
	if len(r.layouts) == 0 {
		t.Fatalf("nothing was drawn")
	}
	return r.layouts[len(r.layouts)-1]
}

func (r *recorder) table(t *testing.T) TableLayout {
	t.Helper()
	l, ok := r.last(t).(TableLayout)
	if !ok {
		t.Fatalf("expected table layout, got %T", r.last(t))
	}
	return l
}

func (r *recorder) form(t *testing.T) FormLayout {
	t.Helper()
	l, ok := r.last(t).(FormLayout)
	if !ok {
		t.Fatalf("expected form layout, got %T", r.last(t))
	}
	return l
}

func newTestDispatcher(t *testing.T, logs ...ledger.Log) (*Dispatcher, *ledger.Book, *recorder) {
	t.Helper()
	book := testutil.Book(t, logs...)
	rec := &recorder{}
	d := NewDispatcher(book, rec)
	d.Start()
	return d, book, rec
}

func tick(d *Dispatcher, inputs ...Input) {
	for _, in := range inputs {
		d.Tick(in)
	}
}

func typeText(d *Dispatcher, text string) {
	for _, r := range text {
		d.Tick(Char(string(r)))
	}
}

func overview(t *testing.T, d *Dispatcher) *Overview {
	t.Helper()
	s, ok := d.Current().(*Overview)
	if !ok {
		t.Fatalf("expected overview, got %s", d.Current().Name())
	}
	return s
}

func logDetail(t *testing.T, d *Dispatcher) *LogDetail {
	t.Helper()
	s, ok := d.Current().(*LogDetail)
	if !ok {
		t.Fatalf("expected log detail, got %s", d.Current().Name())
	}
	return s
}

func purchaseForm(t *testing.T, d *Dispatcher) *PurchaseForm {
	t.Helper()
	s, ok := d.Current().(*PurchaseForm)
	if !ok {
		t.Fatalf("expected purchase form, got %s", d.Current().Name())
	}
	return s
}

// openLog moves from the overview into the log at index i.
func openLog(t *testing.T, d *Dispatcher, i int) *LogDetail {
	t.Helper()
	overview(t, d)
	d.Tick(Key(InputCursorPrev))
	for n := 0; n < i; n++ {
		d.Tick(Key(InputCursorNext))
	}
	d.Tick(Key(InputSubmit))
	return logDetail(t, d)
}
