package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/gemtui/internal/app"
	"github.com/spf13/viper"
)

// Config captures runtime configuration for the application.
type Config struct {
	App        app.Config
	Logging    Logging
	ConfigFile string
	Flags      map[string]string
	Args       []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envDataDir  = "GEMTUI_DATA_DIR"
	envHome     = "GEMTUI_HOME"
	envWidth    = "GEMTUI_WIDTH"
	envHeight   = "GEMTUI_HEIGHT"
	envTrace    = "GEMTUI_TRACE"
	envLogFile  = "GEMTUI_LOG_FILE"
	envConfig   = "GEMTUI_CONFIG"
	envInterval = "GEMTUI_FETCH_INTERVAL"

	configFileName = "config.toml"
	logFileName    = "gemtui.log"
)

// Load parses configuration from CLI arguments, environment variables and the
// optional config file.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Values resolve
// flag first, then environment, then config file, then built-in default.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("gemtui", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	dataDirFlag := fs.String("data-dir", "", "directory for preferences, history and the home page")
	fs.String("home", "", "URL opened by navigate.home (defaults to the home page in the data directory)")
	fs.Int("width", 0, "desired viewport width in cells (0 uses terminal width)")
	fs.Int("height", 0, "desired viewport height in rows (0 uses terminal height)")
	fs.Bool("trace", false, "enable verbose JSON trace logging")
	fs.String("log-file", "", "path to the log file")
	fs.Duration("fetch-interval", 0, "minimum spacing between request starts")
	configPath := fs.String("config", envOrDefault(env, envConfig, ""), "path to a TOML config file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	v := viper.New()
	v.SetDefault("data_dir", defaultDataDir(env))
	v.SetDefault("home", "")
	v.SetDefault("width", 0)
	v.SetDefault("height", 0)
	v.SetDefault("trace", false)
	v.SetDefault("log_file", "")
	v.SetDefault("fetch_interval", "0s")

	path := *configPath
	explicit := path != ""
	if !explicit {
		dir := *dataDirFlag
		if dir == "" {
			dir = envOrDefault(env, envDataDir, defaultDataDir(env))
		}
		path = filepath.Join(dir, configFileName)
	}
	loaded, err := readConfigFile(v, path, explicit)
	if err != nil {
		return Config{}, err
	}

	if err := applyEnv(v, env); err != nil {
		return Config{}, err
	}
	fs.Visit(func(f *flag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		if key == "config" {
			return
		}
		v.Set(key, f.Value.String())
	})

	width := v.GetInt("width")
	height := v.GetInt("height")
	if width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", width)
	}
	if height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", height)
	}
	interval, err := time.ParseDuration(v.GetString("fetch_interval"))
	if err != nil {
		return Config{}, fmt.Errorf("fetch_interval: %w", err)
	}
	if interval < 0 {
		return Config{}, fmt.Errorf("fetch_interval must be >= 0 (got %s)", interval)
	}

	dataDir := v.GetString("data_dir")
	logFile := v.GetString("log_file")
	if logFile == "" && dataDir != "" {
		logFile = filepath.Join(dataDir, logFileName)
	}
	trace := v.GetBool("trace")

	cfg := Config{
		App: app.Config{
			DataDir:       dataDir,
			HomeURL:       v.GetString("home"),
			Width:         width,
			Height:        height,
			OpenURLs:      append([]string(nil), fs.Args()...),
			FetchInterval: interval,
			Keys:          v.GetStringMapStringSlice("keys"),
		},
		Logging: Logging{
			FilePath: logFile,
			Trace:    trace,
		},
		Flags: map[string]string{
			"dataDir":       dataDir,
			"home":          v.GetString("home"),
			"width":         strconv.Itoa(width),
			"height":        strconv.Itoa(height),
			"trace":         strconv.FormatBool(trace),
			"logFile":       logFile,
			"fetchInterval": interval.String(),
		},
		Args: append([]string(nil), args...),
	}
	if loaded {
		cfg.ConfigFile = path
	}
	return cfg, nil
}

// readConfigFile loads path into v. A missing file is only an error when the
// user named it explicitly.
func readConfigFile(v *viper.Viper, path string, explicit bool) (bool, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return false, nil
		}
		return false, fmt.Errorf("config file: %w", err)
	}
	v.SetConfigType("toml")
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return false, fmt.Errorf("read config %s: %w", path, err)
	}
	return true, nil
}

// applyEnv overlays environment variables on top of the config file. Numeric
// and boolean values that fail to parse are ignored.
func applyEnv(v *viper.Viper, env map[string]string) error {
	for key, name := range map[string]string{
		"data_dir": envDataDir,
		"home":     envHome,
		"log_file": envLogFile,
	} {
		if value, ok := env[name]; ok {
			v.Set(key, value)
		}
	}
	if n, ok := envInt(env, envWidth); ok {
		v.Set("width", n)
	}
	if n, ok := envInt(env, envHeight); ok {
		v.Set("height", n)
	}
	if b, ok := envBool(env, envTrace); ok {
		v.Set("trace", b)
	}
	if value, ok := env[envInterval]; ok && strings.TrimSpace(value) != "" {
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("%s: %w", envInterval, err)
		}
		v.Set("fetch_interval", value)
	}
	return nil
}

// defaultDataDir follows the XDG layout, using the supplied environment so
// tests never touch the real home directory.
func defaultDataDir(env map[string]string) string {
	if dir := env["XDG_CONFIG_HOME"]; dir != "" {
		return filepath.Join(dir, "gemtui")
	}
	if home := env["HOME"]; home != "" {
		return filepath.Join(home, ".config", "gemtui")
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "gemtui")
	}
	return ".gemtui"
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envInt(env map[string]string, key string) (int, bool) {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return 0, false
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return parsed, true
}

func envBool(env map[string]string, key string) (bool, bool) {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return false, false
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return false, false
	}
	return parsed, true
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	if err := Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.App.DataDir) == "" {
		return errors.New("data directory must not be empty")
	}
	return nil
}
