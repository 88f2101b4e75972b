package events

import "github.com/budgr/budgr/internal/logging"

type ScreenTracer struct{}

type FormTracer struct{}

var (
	Screen = ScreenTracer{}
	Form   = FormTracer{}
)

func (ScreenTracer) Input(screen, input string) {
	logging.Trace("screen.input", map[string]interface{}{"screen": screen, "input": input})
}

func (ScreenTracer) Transition(from, request, to string) {
	logging.Trace("screen.transition", map[string]interface{}{"from": from, "request": request, "to": to})
}

func (ScreenTracer) Ignored(from, request string) {
	logging.Trace("screen.transition.ignored", map[string]interface{}{"from": from, "request": request})
}

func (ScreenTracer) Cursor(screen string, cursor int) {
	logging.Trace("screen.cursor", map[string]interface{}{"screen": screen, "cursor": cursor})
}

func (FormTracer) Focus(field int) {
	logging.Trace("form.focus", map[string]interface{}{"field": field})
}

func (FormTracer) Invalid(field int, err error) {
	if err == nil {
		return
	}
	logging.Trace("form.invalid", map[string]interface{}{"field": field, "error": err.Error()})
}

func (FormTracer) Submit(log, name string, cost int64) {
	logging.Trace("form.submit", map[string]interface{}{"log": log, "name": name, "cost": cost})
}
