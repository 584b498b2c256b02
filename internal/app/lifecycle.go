package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/atomicstack/gemtui/internal/command"
	"github.com/atomicstack/gemtui/internal/logging"
	"github.com/atomicstack/gemtui/internal/logging/events"
	"github.com/atomicstack/gemtui/internal/prefs"
	"github.com/atomicstack/gemtui/internal/uri"
)

const defaultHomePage = `# Welcome to gemtui

This is your home page. Edit it to keep the links you use most.

=> about:help Key bindings and commands
=> about:blank A blank page
`

// Start prepares the data directory, replays preferences and history, and
// queues the first navigation. The UI scale is applied before anything is
// drawn; every other preference line goes through the bus.
func (a *App) Start() error {
	if a.cfg.DataDir == "" {
		return errors.New("data directory is not set")
	}
	if err := os.MkdirAll(a.cfg.DataDir, 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	if err := a.writeHomePage(); err != nil {
		logging.Error(err)
	}
	if err := a.bindings.Apply(a.cfg.Keys); err != nil {
		logging.Error(fmt.Errorf("key overrides: %w", err))
	}

	n, err := prefs.Load(a.prefsPath(), a.setUIScale, a.bus.Post)
	if err != nil {
		logging.Error(err)
	}
	events.Prefs.Load(a.prefsPath(), n)

	if err := a.history.Load(a.historyPath()); err != nil {
		logging.Error(err)
	}
	events.Nav.Load(a.historyPath(), a.history.Len())

	if len(a.cfg.OpenURLs) == 0 {
		a.bus.Post("navigate.home")
	}
	for _, target := range a.cfg.OpenURLs {
		a.bus.Post(command.Open(uri.FromInput(target), false, false))
	}
	events.App.Start(map[string]interface{}{
		"dataDir": a.cfg.DataDir,
		"open":    a.cfg.OpenURLs,
		"history": a.history.Len(),
	})
	return nil
}

// Shutdown stops outstanding requests and persists preferences and history.
func (a *App) Shutdown() error {
	a.fetcher.Stop()
	a.fetcher.Wait()
	a.bus.Close()
	events.App.Shutdown(a.history.Len())

	var errs []error
	if err := a.prefs.Save(a.prefsPath()); err != nil {
		errs = append(errs, err)
	} else {
		events.Prefs.Save(a.prefsPath())
	}
	if err := a.history.Save(a.historyPath()); err != nil {
		errs = append(errs, err)
	}
	err := errors.Join(errs...)
	logging.Error(err)
	return err
}

func (a *App) writeHomePage() error {
	path := filepath.Join(a.cfg.DataDir, homeFile)
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat home page: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultHomePage), 0o644); err != nil {
		return fmt.Errorf("write home page: %w", err)
	}
	return nil
}

func (a *App) setUIScale(v float64) {
	a.prefs.UIScale = prefs.ClampScale(v)
	events.Prefs.Scale(a.prefs.UIScale)
}
