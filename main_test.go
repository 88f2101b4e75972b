package main

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/budgr/budgr/internal/app"
	"github.com/budgr/budgr/internal/config"
	"github.com/budgr/budgr/internal/storage"
)

func TestDescribeTerminalWithoutTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatalf("create temp: %v", err)
	}
	defer f.Close()
	if got := describeTerminal(int(f.Fd())); got != (terminalInfo{}) {
		t.Fatalf("expected regular file to report no terminal, got %+v", got)
	}
	if got := describeTerminal(-1); got.Terminal {
		t.Fatalf("expected invalid descriptor to report no terminal")
	}
}

func TestStartupTracePayloadRecordsSettings(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			DataDir:    "/tmp/budgr",
			Backend:    storage.KindSQLite,
			NewLogs:    []string{"Misc"},
			Width:      80,
			Height:     24,
			ShowFooter: true,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"dataDir": "/tmp/budgr",
			"backend": "sqlite",
		},
		Args: []string{"-data-dir", "/tmp/budgr", "-backend", "sqlite"},
	}
	tty := terminalInfo{Terminal: true, Width: 100, Height: 30}

	payload := startupTracePayload(cfg, "/var/log/budgr.log", tty)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["backend"] != "sqlite" {
		t.Fatalf("expected backend flag sqlite, got %v", flagsValue["backend"])
	}
	if payload["dataDir"] != "/tmp/budgr" {
		t.Fatalf("expected data dir %q, got %v", "/tmp/budgr", payload["dataDir"])
	}
	if payload["backend"] != "sqlite" {
		t.Fatalf("expected backend sqlite, got %v", payload["backend"])
	}
	if !reflect.DeepEqual(payload["newLogs"], []string{"Misc"}) {
		t.Fatalf("expected new logs [Misc], got %v", payload["newLogs"])
	}
	if payload["logFile"] != "/var/log/budgr.log" {
		t.Fatalf("expected resolved log path, got %v", payload["logFile"])
	}
	if payload["trace"] != true {
		t.Fatalf("expected trace true, got %v", payload["trace"])
	}
	if payload["terminal"] != tty {
		t.Fatalf("expected terminal %+v, got %v", tty, payload["terminal"])
	}
}

func TestLoadDotEnvExportsVariables(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("BUDGR_TEST_DOTENV=sqlite\n"), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	t.Cleanup(func() { os.Unsetenv("BUDGR_TEST_DOTENV") })
	if err := loadDotEnv(path); err != nil {
		t.Fatalf("loadDotEnv failed: %v", err)
	}
	if got := os.Getenv("BUDGR_TEST_DOTENV"); got != "sqlite" {
		t.Fatalf("expected variable exported, got %q", got)
	}
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	if err := loadDotEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("expected missing file to be ignored, got %v", err)
	}
}
