package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/budgr/budgr/internal/app"
	"github.com/budgr/budgr/internal/config"
	"github.com/budgr/budgr/internal/logging"
	"github.com/budgr/budgr/internal/logging/events"
	"github.com/joho/godotenv"
	"golang.org/x/term"
)

func main() {
	if err := loadDotEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	traceStartup(runtimeCfg)

	if err := app.Run(runtimeCfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v (details in %s)\n", err, logging.Path())
		os.Exit(1)
	}
}

// loadDotEnv exports variables from path when it exists. Variables already set
// in the environment win.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg, logging.Path(), describeTerminal(int(os.Stdout.Fd()))))
}

// startupTracePayload records the settings the run was started with.
func startupTracePayload(cfg config.Config, logPath string, tty terminalInfo) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	return map[string]interface{}{
		"args":     cfg.Args,
		"flags":    flags,
		"dataDir":  cfg.App.DataDir,
		"backend":  string(cfg.App.Backend),
		"newLogs":  cfg.App.NewLogs,
		"logFile":  logPath,
		"trace":    cfg.Logging.Trace,
		"terminal": tty,
	}
}

// terminalInfo is the size of the screen budgr draws on, when it has one.
type terminalInfo struct {
	Terminal bool   `json:"terminal"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
	Error    string `json:"error,omitempty"`
}

func describeTerminal(fd int) terminalInfo {
	if fd < 0 || !term.IsTerminal(fd) {
		return terminalInfo{}
	}
	width, height, err := term.GetSize(fd)
	if err != nil {
		return terminalInfo{Terminal: true, Error: err.Error()}
	}
	return terminalInfo{Terminal: true, Width: width, Height: height}
}
