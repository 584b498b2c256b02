package app

import (
	"github.com/atomicstack/gemtui/internal/command"
	"github.com/atomicstack/gemtui/internal/logging/events"
)

// SpinnerFrames are drawn in turn while a document loads.
var SpinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// ProcessCommands drains at most maxCommandsPerFrame commands from the bus.
// Each command is offered to chain() in order and then to the App itself;
// chain is re-evaluated per command because a handler may move focus. It
// returns the number of commands processed.
func (a *App) ProcessCommands(chain func() []command.Handler) int {
	n := 0
	for n < maxCommandsPerFrame {
		text, ok := a.bus.Next()
		if !ok {
			break
		}
		n++
		var handlers []command.Handler
		if chain != nil {
			handlers = chain()
		}
		handlers = append(handlers, command.HandlerFunc(a.HandleCommand))
		command.Dispatch(command.Parse(text), handlers...)
	}
	remaining := a.bus.Len()
	if n > 0 {
		events.Command.Drain(n, remaining)
	}
	if remaining > 0 {
		a.bus.Wake()
	}
	return n
}

// RunTickers runs every registered ticker once and reports whether any ran.
func (a *App) RunTickers() bool {
	return a.tickers.Run()
}

// TickersPending reports whether a frame should be scheduled for tickers.
func (a *App) TickersPending() bool {
	return a.tickers.Len() > 0
}

// PostRefresh asks for a redraw. Safe from any goroutine.
func (a *App) PostRefresh() {
	a.pendingRefresh.Store(true)
	a.bus.Wake()
}

// TakeRefresh consumes a pending refresh request.
func (a *App) TakeRefresh() bool {
	return a.pendingRefresh.Swap(false)
}

// Spinner returns the glyph for the current loading frame, or "" when idle.
func (a *App) Spinner() string {
	if !a.document.Loading() {
		return ""
	}
	return SpinnerFrames[a.spinnerFrame%len(SpinnerFrames)]
}

// startSpinner registers a ticker that advances the loading indicator and
// re-registers itself until the document stops loading.
func (a *App) startSpinner() {
	a.tickers.Add(a.spinner, a.spin)
}

func (a *App) spin() {
	if !a.document.Loading() {
		return
	}
	a.spinnerFrame++
	a.tickers.Add(a.spinner, a.spin)
	a.PostRefresh()
}

func (a *App) stopSpinner() {
	a.tickers.Remove(a.spinner)
	a.spinnerFrame = 0
}
