package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/budgr/budgr/internal/ledger"
)

func TestBookKeepsOrderAndIDs(t *testing.T) {
	b := Book(t,
		ledger.Log{Name: "Groceries", Purchases: Purchases("Milk", 200, "Eggs", 350)},
		ledger.Log{Name: "Misc"},
	)
	logs := b.Logs()
	if len(logs) != 2 || logs[0].Name != "Groceries" || logs[1].Name != "Misc" {
		t.Fatalf("unexpected logs %#v", logs)
	}
	if logs[0].Total != 550 {
		t.Fatalf("expected total 550, got %d", logs[0].Total)
	}
	if LogID(t, b, "Misc") != logs[1].ID {
		t.Fatalf("LogID returned the wrong id")
	}
}

func TestDataDirWritesFiles(t *testing.T) {
	dir := DataDir(t, map[string]string{"a.json": "{}"})
	data, err := os.ReadFile(filepath.Join(dir, "a.json"))
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if string(data) != "{}" {
		t.Fatalf("unexpected contents %q", data)
	}
}

func TestRepoRootHoldsGoMod(t *testing.T) {
	if _, err := os.Stat(filepath.Join(RepoRoot(t), "go.mod")); err != nil {
		t.Fatalf("expected go.mod at repo root: %v", err)
	}
}
