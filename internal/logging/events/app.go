package events

import "github.com/atomicstack/gemtui/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Shutdown(historyLen int) {
	logging.Trace("app.shutdown", map[string]interface{}{"history": historyLen})
}

func (AppTracer) Quit() {
	logging.Trace("app.quit", nil)
}

func (AppTracer) Resize(width, height int) {
	logging.Trace("app.resize", map[string]interface{}{"width": width, "height": height})
}

// Launch records the process context before the application starts.
func (AppTracer) Launch(payload map[string]interface{}) {
	logging.Trace("app.launch", payload)
}
