package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadArgsDefaults(t *testing.T) {
	home := t.TempDir()
	cfg, err := LoadArgs(nil, []string{"HOME=" + home})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantDir := filepath.Join(home, ".config", "gemtui")
	if cfg.App.DataDir != wantDir {
		t.Fatalf("expected data dir %q, got %q", wantDir, cfg.App.DataDir)
	}
	if cfg.Logging.FilePath != filepath.Join(wantDir, "gemtui.log") {
		t.Fatalf("unexpected log file %q", cfg.Logging.FilePath)
	}
	if cfg.App.Width != 0 || cfg.App.Height != 0 || cfg.Logging.Trace {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.ConfigFile != "" {
		t.Fatalf("no config file should be loaded, got %q", cfg.ConfigFile)
	}
}

func TestLoadArgsXDGConfigHome(t *testing.T) {
	xdg := t.TempDir()
	cfg, err := LoadArgs(nil, []string{"XDG_CONFIG_HOME=" + xdg, "HOME=/nonexistent"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.DataDir != filepath.Join(xdg, "gemtui") {
		t.Fatalf("unexpected data dir %q", cfg.App.DataDir)
	}
}

func TestLoadArgsUsesEnvironment(t *testing.T) {
	env := []string{
		"GEMTUI_DATA_DIR=/tmp/gemtui-data",
		"GEMTUI_HOME=gemini://example.org/",
		"GEMTUI_WIDTH=120",
		"GEMTUI_HEIGHT=40",
		"GEMTUI_TRACE=true",
		"GEMTUI_LOG_FILE=/tmp/gemtui.log",
		"GEMTUI_FETCH_INTERVAL=250ms",
	}
	cfg, err := LoadArgs(nil, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.DataDir != "/tmp/gemtui-data" || cfg.App.HomeURL != "gemini://example.org/" {
		t.Fatalf("unexpected app config %+v", cfg.App)
	}
	if cfg.App.Width != 120 || cfg.App.Height != 40 {
		t.Fatalf("unexpected size %dx%d", cfg.App.Width, cfg.App.Height)
	}
	if !cfg.Logging.Trace || cfg.Logging.FilePath != "/tmp/gemtui.log" {
		t.Fatalf("unexpected logging %+v", cfg.Logging)
	}
	if cfg.App.FetchInterval != 250*time.Millisecond {
		t.Fatalf("unexpected interval %s", cfg.App.FetchInterval)
	}
}

func TestLoadArgsIgnoresMalformedNumbers(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"GEMTUI_DATA_DIR=/d", "GEMTUI_WIDTH=wide", "GEMTUI_TRACE=maybe"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 0 || cfg.Logging.Trace {
		t.Fatalf("malformed values should fall back, got %+v", cfg)
	}
}

func TestFlagsOverrideEnvironmentAndFile(t *testing.T) {
	path := writeConfig(t, "width = 10\nheight = 11\nhome = \"about:blank\"\n")
	env := []string{"GEMTUI_DATA_DIR=/env", "GEMTUI_WIDTH=100", "GEMTUI_CONFIG=" + path}
	cfg, err := LoadArgs([]string{"-width", "200", "-data-dir", "/flag", "notes.gmi", "gemini://h/"}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 200 {
		t.Fatalf("flag should win, got %d", cfg.App.Width)
	}
	if cfg.App.Height != 11 {
		t.Fatalf("file should fill unset values, got %d", cfg.App.Height)
	}
	if cfg.App.DataDir != "/flag" {
		t.Fatalf("unexpected data dir %q", cfg.App.DataDir)
	}
	if cfg.App.HomeURL != "about:blank" {
		t.Fatalf("unexpected home %q", cfg.App.HomeURL)
	}
	if len(cfg.App.OpenURLs) != 2 || cfg.App.OpenURLs[0] != "notes.gmi" {
		t.Fatalf("unexpected positional args %v", cfg.App.OpenURLs)
	}
	if cfg.ConfigFile != path {
		t.Fatalf("expected config file %q, got %q", path, cfg.ConfigFile)
	}
	if cfg.Flags["width"] != "200" {
		t.Fatalf("unexpected flags map %v", cfg.Flags)
	}
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, "width = 10\ntrace = true\n")
	cfg, err := LoadArgs([]string{"-config", path}, []string{"GEMTUI_DATA_DIR=/d", "GEMTUI_WIDTH=30"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 30 {
		t.Fatalf("env should beat file, got %d", cfg.App.Width)
	}
	if !cfg.Logging.Trace {
		t.Fatalf("file trace should apply")
	}
}

func TestConfigFileKeyOverrides(t *testing.T) {
	path := writeConfig(t, "fetch_interval = \"1s\"\n\n[keys]\nback = [\"backspace\", \"b\"]\nquit = [\"ctrl+c\"]\n")
	cfg, err := LoadArgs([]string{"-config", path}, []string{"GEMTUI_DATA_DIR=/d"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.FetchInterval != time.Second {
		t.Fatalf("unexpected interval %s", cfg.App.FetchInterval)
	}
	back := cfg.App.Keys["back"]
	if len(back) != 2 || back[0] != "backspace" || back[1] != "b" {
		t.Fatalf("unexpected back keys %v", back)
	}
	if quit := cfg.App.Keys["quit"]; len(quit) != 1 || quit[0] != "ctrl+c" {
		t.Fatalf("unexpected quit keys %v", quit)
	}
}

func TestMissingExplicitConfigFails(t *testing.T) {
	_, err := LoadArgs([]string{"-config", filepath.Join(t.TempDir(), "missing.toml")}, nil)
	if err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

func TestLoadArgsRejectsNegativeSizes(t *testing.T) {
	if _, err := LoadArgs([]string{"-width", "-1"}, []string{"HOME=/h"}); err == nil {
		t.Fatalf("expected width validation error")
	}
	if _, err := LoadArgs([]string{"-height", "-5"}, []string{"HOME=/h"}); err == nil {
		t.Fatalf("expected height validation error")
	}
}

func TestLoadArgsRejectsUnknownFlag(t *testing.T) {
	if _, err := LoadArgs([]string{"-bogus"}, nil); err == nil {
		t.Fatalf("expected unknown flag error")
	}
}

func TestValidateRequiresDataDir(t *testing.T) {
	if err := Validate(Config{}); err == nil {
		t.Fatalf("expected error for empty data dir")
	}
	cfg, err := LoadArgs(nil, []string{"GEMTUI_DATA_DIR=/d"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}
