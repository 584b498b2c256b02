package ui

import (
	"github.com/atomicstack/gemtui/internal/bindings"
	"github.com/atomicstack/gemtui/internal/command"
	"github.com/atomicstack/gemtui/internal/history"
	"github.com/atomicstack/gemtui/internal/prefs"
	"github.com/atomicstack/gemtui/internal/state"
)

// Engine is the application context the model drives. *app.App satisfies it.
type Engine interface {
	Post(text string)
	Postf(format string, args ...interface{})
	Bus() *command.Bus
	ProcessCommands(chain func() []command.Handler) int
	RunTickers() bool
	TickersPending() bool
	TakeRefresh() bool
	Running() bool
	Resize(width, height int)

	Document() state.Document
	History() *history.History
	Bindings() *bindings.Table
	Prefs() prefs.Prefs
	Spinner() string
}
