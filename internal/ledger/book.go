package ledger

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/budgr/budgr/internal/logging/events"
	"github.com/hashicorp/go-multierror"
)

// Backend loads and stores logs. Implementations live in internal/storage.
type Backend interface {
	Load() ([]Log, error)
	Save(Log) error
}

// Book is the in-memory set of logs. It has a single owner and is not safe
// for concurrent use.
type Book struct {
	logs    []*Log
	backend Backend
}

// NewBook creates an empty book. backend may be nil, in which case Load and
// Persist are no-ops.
func NewBook(backend Backend) *Book {
	return &Book{backend: backend}
}

// Load replaces the book contents with whatever the backend holds.
func (b *Book) Load() error {
	if b.backend == nil {
		return nil
	}
	logs, err := b.backend.Load()
	if err != nil {
		return fmt.Errorf("load logs: %w", err)
	}
	b.logs = b.logs[:0]
	for _, l := range logs {
		b.insert(l)
	}
	events.Ledger.Load(len(b.logs))
	return nil
}

// Seed appends logs directly, assigning IDs where missing.
func (b *Book) Seed(logs ...Log) {
	for _, l := range logs {
		b.insert(l)
	}
}

func (b *Book) insert(l Log) {
	dup := l.Clone()
	if dup.ID == "" {
		dup.ID = NewLogID()
	}
	b.logs = append(b.logs, &dup)
}

// NewLog adds an empty log. Names must be unique and may not contain
// whitespace or path separators, since they become file names.
func (b *Book) NewLog(name string) (LogID, error) {
	if err := validateLogName(name); err != nil {
		return "", err
	}
	for _, l := range b.logs {
		if strings.EqualFold(l.Name, name) {
			return "", fmt.Errorf("%w: %s", ErrLogExists, name)
		}
	}
	l := &Log{ID: NewLogID(), Name: name}
	b.logs = append(b.logs, l)
	events.Ledger.NewLog(name)
	return l.ID, nil
}

func validateLogName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidLogName)
	}
	if name == "." || name == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidLogName, name)
	}
	for _, r := range name {
		if unicode.IsSpace(r) {
			return fmt.Errorf("%w: %q contains whitespace", ErrInvalidLogName, name)
		}
		if r == '/' || r == '\\' {
			return fmt.Errorf("%w: %q contains a path separator", ErrInvalidLogName, name)
		}
	}
	return nil
}

// Logs returns one summary per log in book order.
func (b *Book) Logs() []Summary {
	out := make([]Summary, 0, len(b.logs))
	for _, l := range b.logs {
		out = append(out, Summary{
			ID:            l.ID,
			Name:          l.Name,
			PurchaseCount: len(l.Purchases),
			Total:         l.Total(),
		})
	}
	return out
}

// Purchases returns a copy of the purchases in the given log, or nil when the
// log does not exist.
func (b *Book) Purchases(id LogID) []Purchase {
	l := b.find(id)
	if l == nil {
		return nil
	}
	return clonePurchases(l.Purchases)
}

// AddPurchase appends an untagged purchase to the log.
func (b *Book) AddPurchase(id LogID, name string, cost int64) error {
	return b.AddTaggedPurchase(id, Purchase{Name: name, Cost: cost})
}

// AddTaggedPurchase appends p to the log.
func (b *Book) AddTaggedPurchase(id LogID, p Purchase) error {
	l := b.find(id)
	if l == nil {
		return fmt.Errorf("add purchase: %w: %s", ErrUnknownLog, id)
	}
	l.Purchases = append(l.Purchases, p)
	events.Ledger.Add(l.Name, p.Name, p.Cost)
	return nil
}

// RemovePurchase deletes the purchase at index, keeping the order of the rest.
func (b *Book) RemovePurchase(id LogID, index int) error {
	l := b.find(id)
	if l == nil {
		return fmt.Errorf("remove purchase: %w: %s", ErrUnknownLog, id)
	}
	if index < 0 || index >= len(l.Purchases) {
		events.Ledger.RemoveOutOfRange(l.Name, index, len(l.Purchases))
		return fmt.Errorf("remove purchase %d of %d: %w", index, len(l.Purchases), ErrIndexOutOfRange)
	}
	removed := l.Purchases[index]
	l.Purchases = append(l.Purchases[:index], l.Purchases[index+1:]...)
	events.Ledger.Remove(l.Name, index, removed.Name)
	return nil
}

// Persist saves every log through the backend. A failure for one log does not
// stop the others; all failures are returned together as PersistenceErrors.
func (b *Book) Persist() error {
	if b.backend == nil {
		return nil
	}
	var result *multierror.Error
	for _, l := range b.logs {
		if err := b.backend.Save(l.Clone()); err != nil {
			events.Ledger.SaveFailed(l.Name, err)
			result = multierror.Append(result, &PersistenceError{Log: l.Name, Err: err})
			continue
		}
		events.Ledger.Save(l.Name, len(l.Purchases))
	}
	return result.ErrorOrNil()
}

func (b *Book) find(id LogID) *Log {
	for _, l := range b.logs {
		if l.ID == id {
			return l
		}
	}
	return nil
}
