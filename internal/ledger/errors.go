package ledger

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Book operations.
var (
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrUnknownLog      = errors.New("unknown log")
	ErrLogExists       = errors.New("log already exists")
	ErrInvalidLogName  = errors.New("invalid log name")
)

// PersistenceError records a failed write for a single log.
type PersistenceError struct {
	Log string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persist log %q: %v", e.Log, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
