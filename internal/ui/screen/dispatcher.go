package screen

import (
	"github.com/budgr/budgr/internal/logging/events"
)

// Dispatcher owns the current screen and drives one handler per tick.
type Dispatcher struct {
	current  Screen
	store    Store
	renderer Renderer
}

// NewDispatcher starts on an Overview with nothing selected.
func NewDispatcher(store Store, renderer Renderer) *Dispatcher {
	if renderer == nil {
		renderer = RendererFunc(func(Layout) {})
	}
	return &Dispatcher{current: NewOverview(), store: store, renderer: renderer}
}

// Start paints the initial screen without changing it.
func (d *Dispatcher) Start() {
	d.Tick(Key(InputNoop))
}

// Current returns the active screen.
func (d *Dispatcher) Current() Screen { return d.current }

// Done reports whether the dispatcher reached Terminated.
func (d *Dispatcher) Done() bool {
	_, done := d.current.(Terminated)
	return done
}

// Tick runs the active handler for in and applies any transition it asks
// for. When the screen changes, the new screen's handler runs once with a
// no-op input so the terminal shows it right away. Ticks after termination
// are ignored.
func (d *Dispatcher) Tick(in Input) {
	if d.Done() {
		return
	}
	if in.Kind != InputNoop {
		events.Screen.Input(d.current.Name(), in.String())
	}
	req, ok := d.handle(d.current, in)
	if !ok {
		return
	}
	next, changed := transition(d.current, req)
	if !changed {
		events.Screen.Ignored(d.current.Name(), req.String())
		return
	}
	events.Screen.Transition(d.current.Name(), req.String(), next.Name())
	d.current = next
	if !d.Done() {
		d.handle(d.current, Key(InputNoop))
	}
}

func (d *Dispatcher) handle(s Screen, in Input) (Request, bool) {
	switch s := s.(type) {
	case *Overview:
		return handleOverview(s, in, d.store, d.renderer)
	case *LogDetail:
		return handleLogDetail(s, in, d.store, d.renderer)
	case *PurchaseForm:
		return handlePurchaseForm(s, in, d.store, d.renderer)
	case Terminated:
		return Request{}, false
	}
	return Request{}, false
}

// transition applies the screen table. Pairs not listed leave the screen
// unchanged and report false.
func transition(cur Screen, req Request) (Screen, bool) {
	switch s := cur.(type) {
	case *Overview:
		switch req.Kind {
		case RequestTerminate:
			return Terminated{}, true
		case RequestLogDetail:
			return NewLogDetail(req.LogID), true
		}
	case *LogDetail:
		switch req.Kind {
		case RequestPop:
			return NewOverview(), true
		case RequestPurchaseForm:
			return NewPurchaseForm(req.LogID), true
		}
	case *PurchaseForm:
		if req.Kind == RequestPop {
			return NewLogDetail(s.LogID), true
		}
	}
	return cur, false
}
