package screen

import (
	"fmt"

	"github.com/budgr/budgr/internal/ledger"
)

// RequestKind enumerates the transitions a handler may ask for.
type RequestKind int

const (
	RequestTerminate RequestKind = iota
	RequestPop
	RequestLogDetail
	RequestPurchaseForm
)

// Request is a transition asked for by a screen handler. LogID is set for
// RequestLogDetail and RequestPurchaseForm.
type Request struct {
	Kind  RequestKind
	LogID ledger.LogID
}

func Terminate() Request { return Request{Kind: RequestTerminate} }

func Pop() Request { return Request{Kind: RequestPop} }

func OpenLog(id ledger.LogID) Request { return Request{Kind: RequestLogDetail, LogID: id} }

func NewPurchase(id ledger.LogID) Request { return Request{Kind: RequestPurchaseForm, LogID: id} }

func (r Request) String() string {
	switch r.Kind {
	case RequestTerminate:
		return "terminate"
	case RequestPop:
		return "pop"
	case RequestLogDetail:
		return fmt.Sprintf("log-detail(%s)", r.LogID)
	case RequestPurchaseForm:
		return fmt.Sprintf("purchase-form(%s)", r.LogID)
	}
	return fmt.Sprintf("request(%d)", int(r.Kind))
}
