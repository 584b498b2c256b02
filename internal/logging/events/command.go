package events

import "github.com/atomicstack/gemtui/internal/logging"

type CommandTracer struct{}

var Command = CommandTracer{}

func (CommandTracer) Post(text string) {
	logging.Trace("command.post", map[string]interface{}{"text": text})
}

func (CommandTracer) Dispatch(verb string, handler int) {
	logging.Trace("command.dispatch", map[string]interface{}{"verb": verb, "handler": handler})
}

func (CommandTracer) Unhandled(text string) {
	logging.Trace("command.unhandled", map[string]interface{}{"text": text})
}

func (CommandTracer) Ignored(verb string) {
	logging.Trace("command.ignored", map[string]interface{}{"verb": verb})
}

func (CommandTracer) Drain(count, remaining int) {
	logging.Trace("command.drain", map[string]interface{}{"count": count, "remaining": remaining})
}
