package screen

import (
	"github.com/budgr/budgr/internal/ledger"
	"github.com/budgr/budgr/internal/ui/state"
)

// Screen is the state of the visible screen. The set of implementations is
// closed: Overview, LogDetail, PurchaseForm and Terminated.
type Screen interface {
	Name() string
	isScreen()
}

// Overview lists every log.
type Overview struct {
	Cursor state.Cursor
}

// LogDetail lists the purchases of one log.
type LogDetail struct {
	LogID  ledger.LogID
	Cursor state.Cursor
}

// Purchase form field indexes.
const (
	FieldName = iota
	FieldCost
	FieldSubmit
	FieldCount
)

// PurchaseForm collects a new purchase for a log. The submit slot holds no
// text; it only marks the button as the focus target.
type PurchaseForm struct {
	LogID  ledger.LogID
	Fields [FieldCount]state.Field
	Active int
	Err    error
}

// Terminated means the program should exit. No further input is handled.
type Terminated struct{}

func NewOverview() *Overview { return &Overview{} }

func NewLogDetail(id ledger.LogID) *LogDetail { return &LogDetail{LogID: id} }

func NewPurchaseForm(id ledger.LogID) *PurchaseForm { return &PurchaseForm{LogID: id, Active: FieldName} }

func (*Overview) Name() string     { return "overview" }
func (*LogDetail) Name() string    { return "log-detail" }
func (*PurchaseForm) Name() string { return "purchase-form" }
func (Terminated) Name() string    { return "terminated" }

func (*Overview) isScreen()     {}
func (*LogDetail) isScreen()    {}
func (*PurchaseForm) isScreen() {}
func (Terminated) isScreen()    {}
