package app

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/atomicstack/gemtui/internal/bindings"
	"github.com/atomicstack/gemtui/internal/command"
	"github.com/atomicstack/gemtui/internal/data/dispatcher"
	"github.com/atomicstack/gemtui/internal/fetch"
	"github.com/atomicstack/gemtui/internal/history"
	"github.com/atomicstack/gemtui/internal/prefs"
	"github.com/atomicstack/gemtui/internal/state"
	"github.com/atomicstack/gemtui/internal/ticker"
	"github.com/atomicstack/gemtui/internal/ui"
	"github.com/atomicstack/gemtui/internal/uri"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	DataDir       string
	HomeURL       string
	Width         int
	Height        int
	OpenURLs      []string
	FetchInterval time.Duration
	Keys          map[string][]string
}

const (
	historyFile = "history.txt"
	homeFile    = "home.gmi"

	// maxCommandsPerFrame bounds a single drain so a command storm cannot
	// starve rendering.
	maxCommandsPerFrame = 64
)

// App is the application context: it owns the command bus, navigation
// history, tickers, preferences and the current document. Everything except
// Post and PostRefresh must be called from the main loop.
type App struct {
	cfg Config

	bus        *command.Bus
	history    *history.History
	tickers    *ticker.Scheduler
	prefs      prefs.Prefs
	document   state.DocumentStore
	fetcher    *fetch.Fetcher
	dispatcher *dispatcher.Dispatcher
	bindings   *bindings.Table

	running        bool
	pendingRefresh atomic.Bool
	width          int
	height         int

	spinner      ticker.Handle
	spinnerFrame int
}

// New builds the context. Nothing touches the filesystem until Start.
func New(cfg Config) *App {
	a := &App{
		cfg:      cfg,
		bus:      command.NewBus(),
		history:  history.New(),
		tickers:  ticker.New(),
		prefs:    prefs.Defaults(),
		document: state.NewDocumentStore(),
		bindings: bindings.Defaults(),
		running:  true,
		width:    cfg.Width,
		height:   cfg.Height,
		spinner:  ticker.NewHandle(),
	}
	a.fetcher = fetch.New(a.bus.Post, fetch.Options{MinInterval: cfg.FetchInterval})
	a.fetcher.Register("about", fetch.NewAboutTransport(map[string]string{
		"home": defaultHomePage,
	}))
	a.dispatcher = dispatcher.New(a.document)
	return a
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	a := New(cfg)
	if err := a.Start(); err != nil {
		return fmt.Errorf("start: %w", err)
	}
	model := ui.NewModel(a, cfg.Width, cfg.Height)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	// Saving prefs and history is best-effort; Shutdown logs its failures.
	_ = a.Shutdown()
	return exitError(err)
}

// exitError maps the program result to the error that sets the exit status.
func exitError(err error) error {
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// Bus returns the command bus. Producers on any goroutine may post to it.
func (a *App) Bus() *command.Bus { return a.bus }

// Post queues a command line.
func (a *App) Post(text string) { a.bus.Post(text) }

// Postf formats and queues a command line.
func (a *App) Postf(format string, args ...interface{}) { a.bus.Postf(format, args...) }

// History exposes the navigation history.
func (a *App) History() *history.History { return a.history }

// Tickers exposes the per-frame scheduler.
func (a *App) Tickers() *ticker.Scheduler { return a.tickers }

// Bindings exposes the key map.
func (a *App) Bindings() *bindings.Table { return a.bindings }

// Prefs returns a copy of the current preferences.
func (a *App) Prefs() prefs.Prefs { return a.prefs }

// Document returns a snapshot of the current document.
func (a *App) Document() state.Document { return a.document.Snapshot() }

// Running reports whether quit has been requested.
func (a *App) Running() bool { return a.running }

// DataDir returns the directory holding prefs, history and the home page.
func (a *App) DataDir() string { return a.cfg.DataDir }

// HomeURL is where navigate.home goes.
func (a *App) HomeURL() string {
	if a.cfg.HomeURL != "" {
		return a.cfg.HomeURL
	}
	return uri.MakeFileURL(filepath.Join(a.cfg.DataDir, homeFile))
}

// Resize records the terminal size; it is persisted as the window geometry.
func (a *App) Resize(width, height int) {
	a.width = width
	a.height = height
	a.prefs.Window.Width = width
	a.prefs.Window.Height = height
}

func (a *App) prefsPath() string   { return filepath.Join(a.cfg.DataDir, prefs.FileName) }
func (a *App) historyPath() string { return filepath.Join(a.cfg.DataDir, historyFile) }
