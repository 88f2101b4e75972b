package screen

import "github.com/budgr/budgr/internal/ledger"

// Store is the data the screens read and change. *ledger.Book satisfies it.
type Store interface {
	Logs() []ledger.Summary
	Purchases(id ledger.LogID) []ledger.Purchase
	AddPurchase(id ledger.LogID, name string, cost int64) error
	RemovePurchase(id ledger.LogID, index int) error
}

var _ Store = (*ledger.Book)(nil)

func logName(store Store, id ledger.LogID) (string, bool) {
	for _, l := range store.Logs() {
		if l.ID == id {
			return l.Name, true
		}
	}
	return "", false
}
