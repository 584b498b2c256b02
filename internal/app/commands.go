package app

import (
	"fmt"

	"github.com/atomicstack/gemtui/internal/command"
	"github.com/atomicstack/gemtui/internal/logging"
	"github.com/atomicstack/gemtui/internal/logging/events"
	"github.com/atomicstack/gemtui/internal/prefs"
)

// HandleCommand is the last link of the dispatch chain. It reports whether
// the command was consumed; unknown verbs leave the state untouched.
func (a *App) HandleCommand(cmd command.Command) bool {
	switch cmd.Verb() {
	case "open":
		return a.open(cmd)
	case "navigate.back":
		url, ok := a.history.Back()
		if ok {
			events.Nav.Back(url, a.history.Pos())
			a.bus.Post(command.Open(url, true, false))
		}
		return true
	case "navigate.forward":
		url, ok := a.history.Forward()
		if ok {
			events.Nav.Forward(url, a.history.Pos())
			a.bus.Post(command.Open(url, true, false))
		}
		return true
	case "navigate.home":
		home := a.HomeURL()
		events.Nav.Home(home)
		a.bus.Post(command.Open(home, false, false))
		return true
	case "navigate.reload":
		url := a.currentURL()
		if url != "" {
			events.Nav.Reload(url)
			a.bus.Post(command.Open(url, true, false))
		}
		return true
	case "quit":
		a.running = false
		events.App.Quit()
		return true
	case "restorewindow":
		x, y := cmd.Coord()
		a.prefs.RetainWindowSize = true
		a.prefs.Window = prefs.Window{
			Width:  cmd.ArgInt("width"),
			Height: cmd.ArgInt("height"),
			X:      x,
			Y:      y,
		}
		return true
	case "uiscale":
		a.setUIScale(cmd.ArgFloat("arg"))
		a.PostRefresh()
		return true
	case "prefs.retainwindow":
		a.prefs.RetainWindowSize = cmd.Arg() != 0
		return true
	case "document.request.finished":
		a.finishRequest(cmd.String("reqid"))
		return true
	case "document.request.cancelled", "document.changed":
		events.Command.Ignored(cmd.Verb())
		return false
	case "document.stop":
		if a.fetcher.Cancel() || a.document.Loading() {
			a.document.Cancel()
			a.stopSpinner()
			a.PostRefresh()
		}
		return true
	case "history.clear":
		a.history.Clear()
		events.Nav.Clear()
		a.PostRefresh()
		return true
	case "bindings.set":
		id, key := cmd.String("id"), cmd.String("key")
		if err := a.bindings.Set(id, key); err != nil {
			logging.Error(fmt.Errorf("rebind %s: %w", id, err))
			return true
		}
		events.UI.Rebind(id, key)
		a.bus.Post("bindings.changed")
		return true
	case "bindings.changed":
		events.UI.Bindings(len(a.bindings.List()))
		a.PostRefresh()
		return true
	}
	return false
}

func (a *App) open(cmd command.Command) bool {
	url := cmd.Suffix("url")
	if url == "" {
		return false
	}
	suppress := cmd.ArgInt("history") != 0
	redirect := cmd.ArgInt("redirect") != 0
	events.Nav.Open(url, suppress, redirect)

	a.history.Open(url, suppress, redirect)
	id := a.fetcher.Start(url)
	a.document.Begin(url, id, redirect)
	a.startSpinner()
	a.PostRefresh()
	return true
}

func (a *App) finishRequest(id string) {
	resp, ok := a.fetcher.Take(id)
	if !ok {
		events.Document.Stale(id)
		return
	}
	res := a.dispatcher.Handle(resp)
	for _, follow := range res.Commands {
		a.bus.Post(follow)
	}
	if !res.Updated {
		return
	}
	if !a.document.Loading() {
		a.stopSpinner()
		a.bus.Post("document.changed")
	}
	a.PostRefresh()
}

// currentURL prefers the shown document, falling back to the history cursor.
func (a *App) currentURL() string {
	if url := a.document.URL(); url != "" {
		return url
	}
	if rec, ok := a.history.Current(); ok {
		return rec.URL
	}
	return ""
}
