package command

import "github.com/atomicstack/gemtui/internal/logging/events"

// Handler consumes a command. It returns true when the command was handled,
// which stops the dispatch chain.
type Handler interface {
	HandleCommand(Command) bool
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(Command) bool

func (f HandlerFunc) HandleCommand(c Command) bool { return f(c) }

// Dispatch offers cmd to each handler in order until one accepts it. Nil
// handlers are skipped.
func Dispatch(cmd Command, handlers ...Handler) bool {
	for i, h := range handlers {
		if h == nil {
			continue
		}
		if h.HandleCommand(cmd) {
			events.Command.Dispatch(cmd.Verb(), i)
			return true
		}
	}
	events.Command.Unhandled(cmd.Text())
	return false
}
