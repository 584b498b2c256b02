package main

import (
	"testing"

	"github.com/atomicstack/gemtui/internal/app"
	"github.com/atomicstack/gemtui/internal/config"
)

func TestProbeTerminalsCoversStandardDescriptors(t *testing.T) {
	probes := probeTerminals()
	if len(probes) != 3 {
		t.Fatalf("expected 3 probes, got %d", len(probes))
	}
	for i, name := range []string{"stdin", "stdout", "stderr"} {
		if probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, probes[i].Name)
		}
	}
}

func TestLaunchPayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			DataDir:  "/tmp/gemtui",
			OpenURLs: []string{"gemini://example.org/"},
		},
		Logging:    config.Logging{FilePath: "trace.log", Trace: true},
		ConfigFile: "/tmp/gemtui/config.toml",
		Flags:      map[string]string{"data-dir": "/tmp/gemtui", "width": "80"},
		Args:       []string{"-data-dir", "/tmp/gemtui", "gemini://example.org/"},
	}

	payload := launchPayload(cfg)

	flags, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flags["data-dir"] != "/tmp/gemtui" {
		t.Fatalf("expected data-dir flag, got %v", flags["data-dir"])
	}
	if flags["width"] != "80" {
		t.Fatalf("expected width 80, got %v", flags["width"])
	}
	if flags["trace"] != true {
		t.Fatalf("expected trace true, got %v", flags["trace"])
	}
	if flags["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flags["logFile"])
	}
	if payload["configFile"] != cfg.ConfigFile {
		t.Fatalf("expected config file %q, got %v", cfg.ConfigFile, payload["configFile"])
	}
	if payload["dataDir"] != "/tmp/gemtui" {
		t.Fatalf("expected data dir, got %v", payload["dataDir"])
	}
	if _, ok := payload["tty"].([]ttyProbe); !ok {
		t.Fatalf("expected tty probes in payload")
	}
	if _, ok := payload["cwd"]; !ok {
		if _, ok := payload["cwdError"]; !ok {
			t.Fatalf("expected cwd or cwdError in payload")
		}
	}
}
