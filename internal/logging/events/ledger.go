package events

import "github.com/budgr/budgr/internal/logging"

type LedgerTracer struct{}

var Ledger = LedgerTracer{}

func (LedgerTracer) Load(logs int) {
	logging.Trace("ledger.load", map[string]interface{}{"logs": logs})
}

func (LedgerTracer) NewLog(name string) {
	logging.Trace("ledger.log.new", map[string]interface{}{"name": name})
}

func (LedgerTracer) Add(log, name string, cost int64) {
	logging.Trace("ledger.purchase.add", map[string]interface{}{"log": log, "name": name, "cost": cost})
}

func (LedgerTracer) Remove(log string, index int, name string) {
	logging.Trace("ledger.purchase.remove", map[string]interface{}{"log": log, "index": index, "name": name})
}

func (LedgerTracer) RemoveOutOfRange(log string, index, length int) {
	logging.Trace("ledger.purchase.remove.range", map[string]interface{}{"log": log, "index": index, "length": length})
}

func (LedgerTracer) Save(log string, purchases int) {
	logging.Trace("ledger.save", map[string]interface{}{"log": log, "purchases": purchases})
}

func (LedgerTracer) SaveFailed(log string, err error) {
	logging.Trace("ledger.save.error", map[string]interface{}{"log": log, "error": err.Error()})
}

func (LedgerTracer) SkipFile(path string, err error) {
	logging.Trace("ledger.load.skip", map[string]interface{}{"path": path, "error": err.Error()})
}

func (LedgerTracer) UnknownTag(log, tag string) {
	logging.Trace("ledger.load.unknown_tag", map[string]interface{}{"log": log, "tag": tag})
}
