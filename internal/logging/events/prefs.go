package events

import "github.com/atomicstack/gemtui/internal/logging"

type PrefsTracer struct{}

var Prefs = PrefsTracer{}

func (PrefsTracer) Load(path string, lines int) {
	logging.Trace("prefs.load", map[string]interface{}{"path": path, "lines": lines})
}

func (PrefsTracer) Save(path string) {
	logging.Trace("prefs.save", map[string]interface{}{"path": path})
}

func (PrefsTracer) Scale(value float64) {
	logging.Trace("prefs.uiscale", map[string]interface{}{"value": value})
}
