package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/budgr/budgr/internal/ledger"
)

// Book returns an in-memory book holding logs in the given order.
func Book(t *testing.T, logs ...ledger.Log) *ledger.Book {
	t.Helper()
	b := ledger.NewBook(nil)
	b.Seed(logs...)
	return b
}

// Purchases builds untagged purchases from alternating name and cost pairs.
func Purchases(pairs ...interface{}) []ledger.Purchase {
	if len(pairs)%2 != 0 {
		panic("testutil.Purchases: odd number of arguments")
	}
	out := make([]ledger.Purchase, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, ledger.Purchase{Name: pairs[i].(string), Cost: int64(pairs[i+1].(int))})
	}
	return out
}

// LogID returns the id of the log called name, failing the test when there is
// none.
func LogID(t *testing.T, b *ledger.Book, name string) ledger.LogID {
	t.Helper()
	for _, l := range b.Logs() {
		if l.Name == name {
			return l.ID
		}
	}
	t.Fatalf("log %q not found", name)
	return ""
}

// DataDir returns an empty directory for log files. When files is non-empty
// each entry is written as name -> contents.
func DataDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("failed to create data dir: %v", err)
	}
	for name, contents := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(contents), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	return dir
}
