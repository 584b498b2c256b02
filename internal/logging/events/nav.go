package events

import "github.com/atomicstack/gemtui/internal/logging"

type NavTracer struct{}

var Nav = NavTracer{}

func (NavTracer) Open(url string, suppress, redirect bool) {
	logging.Trace("nav.open", map[string]interface{}{"url": url, "history": suppress, "redirect": redirect})
}

func (NavTracer) Back(url string, pos int) {
	logging.Trace("nav.back", map[string]interface{}{"url": url, "pos": pos})
}

func (NavTracer) Forward(url string, pos int) {
	logging.Trace("nav.forward", map[string]interface{}{"url": url, "pos": pos})
}

func (NavTracer) Home(url string) {
	logging.Trace("nav.home", map[string]interface{}{"url": url})
}

func (NavTracer) Reload(url string) {
	logging.Trace("nav.reload", map[string]interface{}{"url": url})
}

func (NavTracer) Clear() {
	logging.Trace("nav.clear", nil)
}

func (NavTracer) Load(path string, records int) {
	logging.Trace("nav.load", map[string]interface{}{"path": path, "records": records})
}
