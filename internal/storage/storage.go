// Package storage provides the persistence backends used by ledger.Book.
package storage

import (
	"fmt"
	"path/filepath"

	"github.com/budgr/budgr/internal/ledger"
)

// Kind selects a backend implementation.
type Kind string

const (
	KindJSON   Kind = "json"
	KindSQLite Kind = "sqlite"
)

// sqliteFile is the database name used inside the data directory.
const sqliteFile = "budgr.db"

// IsValid reports whether k names a supported backend.
func (k Kind) IsValid() bool {
	return k == KindJSON || k == KindSQLite
}

// Backend is a ledger.Backend that holds resources until closed.
type Backend interface {
	ledger.Backend
	Close() error
}

// Open creates the backend of the requested kind rooted at dir.
func Open(kind Kind, dir string) (Backend, error) {
	switch kind {
	case KindJSON, "":
		return NewJSONDir(dir), nil
	case KindSQLite:
		db, err := OpenSQLite(filepath.Join(dir, sqliteFile))
		if err != nil {
			return nil, fmt.Errorf("open sqlite backend: %w", err)
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", kind)
	}
}
