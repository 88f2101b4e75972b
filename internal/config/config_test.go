package config

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/budgr/budgr/internal/storage"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"HOME=/home/ada"})
	if err != nil {
		t.Fatalf("LoadArgs failed: %v", err)
	}
	if want := filepath.Join("/home/ada", ".local", "share", "budgr", "logs"); cfg.App.DataDir != want {
		t.Fatalf("expected data dir %q, got %q", want, cfg.App.DataDir)
	}
	if cfg.App.Backend != storage.KindJSON {
		t.Fatalf("expected json backend, got %q", cfg.App.Backend)
	}
	if !cfg.App.ShowFooter || cfg.Logging.Trace || cfg.App.Width != 0 || cfg.App.Height != 0 {
		t.Fatalf("unexpected defaults %#v", cfg)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected defaults to validate: %v", err)
	}
}

func TestLoadArgsXDGDataHome(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"HOME=/home/ada", "XDG_DATA_HOME=/data"})
	if err != nil {
		t.Fatalf("LoadArgs failed: %v", err)
	}
	if want := filepath.Join("/data", "budgr", "logs"); cfg.App.DataDir != want {
		t.Fatalf("expected data dir %q, got %q", want, cfg.App.DataDir)
	}
}

func TestLoadArgsEnvironment(t *testing.T) {
	env := []string{
		"BUDGR_DATA_DIR=/tmp/logs",
		"BUDGR_BACKEND=SQLite",
		"BUDGR_NEW_LOG=Groceries, Misc,,",
		"BUDGR_WIDTH=80",
		"BUDGR_HEIGHT=24",
		"BUDGR_FOOTER=false",
		"BUDGR_TRACE=true",
		"BUDGR_LOG_FILE=/tmp/budgr.log",
	}
	cfg, err := LoadArgs(nil, env)
	if err != nil {
		t.Fatalf("LoadArgs failed: %v", err)
	}
	if cfg.App.DataDir != "/tmp/logs" || cfg.App.Backend != storage.KindSQLite {
		t.Fatalf("unexpected storage config %#v", cfg.App)
	}
	if !reflect.DeepEqual(cfg.App.NewLogs, []string{"Groceries", "Misc"}) {
		t.Fatalf("unexpected new logs %q", cfg.App.NewLogs)
	}
	if cfg.App.Width != 80 || cfg.App.Height != 24 || cfg.App.ShowFooter {
		t.Fatalf("unexpected view config %#v", cfg.App)
	}
	if !cfg.Logging.Trace || cfg.Logging.FilePath != "/tmp/budgr.log" {
		t.Fatalf("unexpected logging config %#v", cfg.Logging)
	}
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	args := []string{"-data-dir", "/flag/logs", "-backend", "json", "-width", "100", "-new-log", "School"}
	cfg, err := LoadArgs(args, []string{"BUDGR_DATA_DIR=/env/logs", "BUDGR_BACKEND=sqlite", "BUDGR_WIDTH=10"})
	if err != nil {
		t.Fatalf("LoadArgs failed: %v", err)
	}
	if cfg.App.DataDir != "/flag/logs" || cfg.App.Backend != storage.KindJSON || cfg.App.Width != 100 {
		t.Fatalf("flags did not win: %#v", cfg.App)
	}
	if len(cfg.App.NewLogs) != 1 || cfg.App.NewLogs[0] != "School" {
		t.Fatalf("unexpected new logs %q", cfg.App.NewLogs)
	}
	if !reflect.DeepEqual(cfg.Args, args) {
		t.Fatalf("expected args recorded, got %q", cfg.Args)
	}
	if cfg.Flags["dataDir"] != "/flag/logs" || cfg.Flags["width"] != "100" {
		t.Fatalf("unexpected flag map %#v", cfg.Flags)
	}
}

func TestLoadArgsRejectsNegativeSizes(t *testing.T) {
	if _, err := LoadArgs([]string{"-width", "-1"}, nil); err == nil {
		t.Fatalf("expected error for negative width")
	}
	if _, err := LoadArgs([]string{"-height", "-5"}, nil); err == nil {
		t.Fatalf("expected error for negative height")
	}
}

func TestLoadArgsIgnoresBadEnvNumbers(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"BUDGR_WIDTH=wide", "BUDGR_FOOTER=maybe"})
	if err != nil {
		t.Fatalf("LoadArgs failed: %v", err)
	}
	if cfg.App.Width != 0 || !cfg.App.ShowFooter {
		t.Fatalf("expected fallbacks, got %#v", cfg.App)
	}
}

func TestLoadArgsUnknownFlag(t *testing.T) {
	if _, err := LoadArgs([]string{"-socket", "x"}, nil); err == nil {
		t.Fatalf("expected error for unknown flag")
	}
}

func TestValidateBackend(t *testing.T) {
	cfg, err := LoadArgs([]string{"-backend", "postgres", "-data-dir", "/tmp"}, nil)
	if err != nil {
		t.Fatalf("LoadArgs failed: %v", err)
	}
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected unknown backend to fail validation")
	}
	cfg.App.Backend = storage.KindSQLite
	cfg.App.DataDir = " "
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected empty data dir to fail validation")
	}
}
