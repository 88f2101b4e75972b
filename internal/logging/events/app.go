package events

import "github.com/budgr/budgr/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Persist(logs int, err error) {
	payload := map[string]interface{}{"logs": logs}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("app.persist", payload)
}

func (AppTracer) Exit(screen string, err error) {
	payload := map[string]interface{}{"screen": screen}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("app.exit", payload)
}

func (AppTracer) Interrupt() {
	logging.Trace("app.interrupt", nil)
}
