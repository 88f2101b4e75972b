package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/budgr/budgr/internal/ledger"
	"github.com/budgr/budgr/internal/logging"
	"github.com/budgr/budgr/internal/logging/events"
)

const jsonExt = ".json"

// JSONDir stores each log as <name>.json inside a single directory.
type JSONDir struct {
	dir string
}

// NewJSONDir returns a backend rooted at dir. The directory is created on the
// first save.
func NewJSONDir(dir string) *JSONDir {
	return &JSONDir{dir: dir}
}

// Path returns the file used for the named log.
func (d *JSONDir) Path(name string) string {
	return filepath.Join(d.dir, name+jsonExt)
}

// Load reads every *.json file in the directory. Files that cannot be parsed
// are logged and skipped so one bad file does not hide the others.
func (d *JSONDir) Load() ([]ledger.Log, error) {
	if _, err := os.Stat(d.dir); os.IsNotExist(err) {
		return nil, nil
	}
	paths, err := filepath.Glob(filepath.Join(d.dir, "*"+jsonExt))
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", d.dir, err)
	}
	logs := make([]ledger.Log, 0, len(paths))
	for _, path := range paths {
		l, err := readLog(path)
		if err != nil {
			logging.Error(err)
			events.Ledger.SkipFile(path, err)
			continue
		}
		logs = append(logs, l)
	}
	return logs, nil
}

func readLog(path string) (ledger.Log, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ledger.Log{}, fmt.Errorf("read %s: %w", path, err)
	}
	var l ledger.Log
	if err := json.Unmarshal(data, &l); err != nil {
		return ledger.Log{}, fmt.Errorf("decode %s: %w", path, err)
	}
	if strings.TrimSpace(l.Name) == "" {
		l.Name = strings.TrimSuffix(filepath.Base(path), jsonExt)
	}
	for i, p := range l.Purchases {
		if !p.Tag.Known() {
			events.Ledger.UnknownTag(l.Name, string(p.Tag))
			l.Purchases[i].Tag = ledger.TagNone
		}
	}
	return l, nil
}

// Save writes the log to its file, replacing any previous content.
func (d *JSONDir) Save(l ledger.Log) error {
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", d.dir, err)
	}
	if l.Purchases == nil {
		l.Purchases = []ledger.Purchase{}
	}
	data, err := json.Marshal(l)
	if err != nil {
		return fmt.Errorf("encode %s: %w", l.Name, err)
	}
	path := d.Path(l.Name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Close is a no-op; files are closed after every write.
func (d *JSONDir) Close() error { return nil }
