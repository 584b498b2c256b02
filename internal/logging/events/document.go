package events

import "github.com/atomicstack/gemtui/internal/logging"

type DocumentTracer struct{}

var Document = DocumentTracer{}

func (DocumentTracer) Request(id, url string) {
	logging.Trace("document.request", map[string]interface{}{"id": id, "url": url})
}

func (DocumentTracer) Finished(id, url string, status int) {
	logging.Trace("document.finished", map[string]interface{}{"id": id, "url": url, "status": status})
}

func (DocumentTracer) Cancelled(id string) {
	logging.Trace("document.cancelled", map[string]interface{}{"id": id})
}

func (DocumentTracer) Stale(id string) {
	logging.Trace("document.stale", map[string]interface{}{"id": id})
}

func (DocumentTracer) Redirect(from, to string, count int) {
	logging.Trace("document.redirect", map[string]interface{}{"from": from, "to": to, "count": count})
}

func (DocumentTracer) Link(index int, url string) {
	logging.Trace("document.link", map[string]interface{}{"index": index, "url": url})
}
