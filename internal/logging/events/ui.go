package events

import "github.com/atomicstack/gemtui/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

var (
	UI     = UITracer{}
	Filter = FilterTracer{}
)

func (UITracer) Focus(widget string) {
	logging.Trace("ui.focus", map[string]interface{}{"widget": widget})
}

func (UITracer) Key(key, command string) {
	logging.Trace("ui.key", map[string]interface{}{"key": key, "command": command})
}

func (UITracer) Paste(path string) {
	logging.Trace("ui.paste", map[string]interface{}{"path": path})
}

func (UITracer) Rebind(id, key string) {
	logging.Trace("ui.rebind", map[string]interface{}{"id": id, "key": key})
}

func (UITracer) ListCursor(list string, cursor int) {
	logging.Trace("ui.list.cursor", map[string]interface{}{"list": list, "cursor": cursor})
}

func (FilterTracer) Cleared(list string) {
	logging.Trace("filter.clear", map[string]interface{}{"list": list})
}

func (FilterTracer) Append(list, filter string) {
	logging.Trace("filter.append", map[string]interface{}{"list": list, "filter": filter})
}

func (FilterTracer) Backspace(list, filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"list": list, "filter": filter})
}

func (UITracer) Bindings(count int) {
	logging.Trace("ui.bindings.changed", map[string]interface{}{"count": count})
}
