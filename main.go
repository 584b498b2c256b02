package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/gemtui/internal/app"
	"github.com/atomicstack/gemtui/internal/config"
	"github.com/atomicstack/gemtui/internal/logging"
	"github.com/atomicstack/gemtui/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	cfg := config.MustLoad()
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)

	events.App.Launch(launchPayload(cfg))

	if err := app.Run(cfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// launchPayload bundles the runtime context for the trace log.
func launchPayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":       cfg.Args,
		"flags":      flags,
		"configFile": cfg.ConfigFile,
		"dataDir":    cfg.App.DataDir,
		"open":       cfg.App.OpenURLs,
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	payload["tty"] = probeTerminals()
	return payload
}

type ttyProbe struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// probeTerminals reports terminal support and size for the standard
// descriptors.
func probeTerminals() []ttyProbe {
	files := []struct {
		name string
		f    *os.File
	}{
		{"stdin", os.Stdin},
		{"stdout", os.Stdout},
		{"stderr", os.Stderr},
	}
	probes := make([]ttyProbe, 0, len(files))
	for _, file := range files {
		p := ttyProbe{Name: file.name}
		fd := int(file.f.Fd())
		if term.IsTerminal(fd) {
			p.IsTerminal = true
			if w, h, err := term.GetSize(fd); err == nil {
				p.Width, p.Height = w, h
			} else {
				p.Error = err.Error()
			}
		}
		probes = append(probes, p)
	}
	return probes
}
