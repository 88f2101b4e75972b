package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/budgr/budgr/internal/app"
	"github.com/budgr/budgr/internal/storage"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envDataDir    = "BUDGR_DATA_DIR"
	envBackend    = "BUDGR_BACKEND"
	envNewLog     = "BUDGR_NEW_LOG"
	envWidth      = "BUDGR_WIDTH"
	envHeight     = "BUDGR_HEIGHT"
	envShowFooter = "BUDGR_FOOTER"
	envTrace      = "BUDGR_TRACE"
	envLogFile    = "BUDGR_LOG_FILE"
	envXDGData    = "XDG_DATA_HOME"
	envHome       = "HOME"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("budgr", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	dataDir := fs.String("data-dir", envOrDefault(env, envDataDir, defaultDataDir(env)), "directory holding the expense logs")
	backend := fs.String("backend", envOrDefault(env, envBackend, string(storage.KindJSON)), "storage backend: json or sqlite")
	newLog := fs.String("new-log", envOrDefault(env, envNewLog, ""), "comma separated names of logs to create at startup")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, true), "show the key hint row")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			DataDir:    *dataDir,
			Backend:    storage.Kind(strings.ToLower(strings.TrimSpace(*backend))),
			NewLogs:    splitNames(*newLog),
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"dataDir": *dataDir,
			"backend": *backend,
			"newLog":  *newLog,
			"width":   strconv.Itoa(*width),
			"height":  strconv.Itoa(*height),
			"footer":  strconv.FormatBool(*footer),
			"trace":   strconv.FormatBool(*trace),
			"logFile": *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// defaultDataDir follows the XDG data directory, falling back to
// ~/.local/share.
func defaultDataDir(env map[string]string) string {
	if xdg := strings.TrimSpace(env[envXDGData]); xdg != "" {
		return filepath.Join(xdg, "budgr", "logs")
	}
	home := strings.TrimSpace(env[envHome])
	if home == "" {
		if h, err := os.UserHomeDir(); err == nil {
			home = h
		}
	}
	if home == "" {
		return filepath.Join("budgr", "logs")
	}
	return filepath.Join(home, ".local", "share", "budgr", "logs")
}

func splitNames(value string) []string {
	var names []string
	for _, part := range strings.Split(value, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
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

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if !cfg.App.Backend.IsValid() {
		return fmt.Errorf("unknown backend %q (want json or sqlite)", cfg.App.Backend)
	}
	if strings.TrimSpace(cfg.App.DataDir) == "" {
		return fmt.Errorf("data directory must not be empty")
	}
	return nil
}
