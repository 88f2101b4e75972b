// Package ledger holds the expense logs shown by the interface and the
// operations the screens use to read and change them.
package ledger

import "github.com/google/uuid"

// LogID identifies a log for the lifetime of the process.
type LogID string

// NewLogID returns a fresh random identifier.
func NewLogID() LogID {
	return LogID(uuid.NewString())
}

// Tag is an optional purchase category.
type Tag string

const (
	TagNone      Tag = ""
	TagGroceries Tag = "Groceries"
	TagLeisure   Tag = "Leisure"
	TagBill      Tag = "Bill"
	TagSchool    Tag = "School"
)

// Known reports whether t is empty or one of the predefined categories.
func (t Tag) Known() bool {
	switch t {
	case TagNone, TagGroceries, TagLeisure, TagBill, TagSchool:
		return true
	}
	return false
}

// Purchase is a single expense record. Cost is in the smallest currency unit.
type Purchase struct {
	Name string `json:"name"`
	Tag  Tag    `json:"tag,omitempty"`
	Cost int64  `json:"cost"`
}

// Log is a named collection of purchases.
type Log struct {
	ID        LogID      `json:"-"`
	Name      string     `json:"name"`
	Purchases []Purchase `json:"purchases"`
}

// Total sums the cost of every purchase in the log.
func (l Log) Total() int64 {
	var total int64
	for _, p := range l.Purchases {
		total += p.Cost
	}
	return total
}

// Clone returns a copy that shares no purchase storage with l.
func (l Log) Clone() Log {
	dup := l
	dup.Purchases = clonePurchases(l.Purchases)
	return dup
}

// Summary is the overview row for one log.
type Summary struct {
	ID            LogID
	Name          string
	PurchaseCount int
	Total         int64
}

func clonePurchases(in []Purchase) []Purchase {
	if len(in) == 0 {
		return nil
	}
	dup := make([]Purchase, len(in))
	copy(dup, in)
	return dup
}
