package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/budgr/budgr/internal/ledger"
	"github.com/budgr/budgr/internal/logging/events"
	_ "modernc.org/sqlite"
)

// SQLite keeps every log in a single database file.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path.
func OpenSQLite(path string) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate %s: %w", path, err)
	}
	return s, nil
}

func (s *SQLite) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS logs (
		name TEXT PRIMARY KEY,
		id TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS purchases (
		log_name TEXT NOT NULL REFERENCES logs(name) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		name TEXT NOT NULL,
		tag TEXT NOT NULL DEFAULT '',
		cost INTEGER NOT NULL,
		PRIMARY KEY (log_name, position)
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Load returns every log in insertion order with purchases in position order.
func (s *SQLite) Load() ([]ledger.Log, error) {
	rows, err := s.db.Query(`SELECT name, id FROM logs ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("query logs: %w", err)
	}
	var logs []ledger.Log
	for rows.Next() {
		var l ledger.Log
		var id string
		if err := rows.Scan(&l.Name, &id); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan log: %w", err)
		}
		l.ID = ledger.LogID(id)
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	for i := range logs {
		purchases, err := s.purchases(logs[i].Name)
		if err != nil {
			return nil, err
		}
		logs[i].Purchases = purchases
	}
	return logs, nil
}

func (s *SQLite) purchases(logName string) ([]ledger.Purchase, error) {
	rows, err := s.db.Query(`SELECT name, tag, cost FROM purchases WHERE log_name = ? ORDER BY position`, logName)
	if err != nil {
		return nil, fmt.Errorf("query purchases for %s: %w", logName, err)
	}
	defer rows.Close()
	var out []ledger.Purchase
	for rows.Next() {
		var p ledger.Purchase
		var tag string
		if err := rows.Scan(&p.Name, &tag, &p.Cost); err != nil {
			return nil, fmt.Errorf("scan purchase for %s: %w", logName, err)
		}
		p.Tag = ledger.Tag(tag)
		if !p.Tag.Known() {
			events.Ledger.UnknownTag(logName, tag)
			p.Tag = ledger.TagNone
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Save replaces the stored purchases of the log in one transaction.
func (s *SQLite) Save(l ledger.Log) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin save %s: %w", l.Name, err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`
		INSERT INTO logs (name, id) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET id = excluded.id
	`, l.Name, string(l.ID)); err != nil {
		return fmt.Errorf("upsert log %s: %w", l.Name, err)
	}
	if _, err := tx.Exec(`DELETE FROM purchases WHERE log_name = ?`, l.Name); err != nil {
		return fmt.Errorf("clear purchases for %s: %w", l.Name, err)
	}
	stmt, err := tx.Prepare(`INSERT INTO purchases (log_name, position, name, tag, cost) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare purchases for %s: %w", l.Name, err)
	}
	defer stmt.Close()
	for i, p := range l.Purchases {
		if _, err := stmt.Exec(l.Name, i, p.Name, string(p.Tag), p.Cost); err != nil {
			return fmt.Errorf("insert purchase %d for %s: %w", i, l.Name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save %s: %w", l.Name, err)
	}
	return nil
}

// Close releases the database handle.
func (s *SQLite) Close() error {
	return s.db.Close()
}
