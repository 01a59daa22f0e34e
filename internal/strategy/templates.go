// Package strategy builds fully-priced multi-leg option strategies from a
// fixed catalog of declarative leg templates.
package strategy

import "options-desk/internal/models"

// legTemplate describes one leg of a catalog strategy: its kind, signed
// quantity, fixed strike offset from spot, and the fraction of the caller's
// delta target it aims for under the delta policy. Only strike values vary by
// policy; signs and counts are fixed per strategy.
type legTemplate struct {
	role      string
	kind      models.OptionKind
	quantity  int
	offset    float64 // strike = spot * (1 + offset) under the fixed policy
	deltaFrac float64 // multiplier on the call/put delta target
}

// Strike offsets per leg role: ATM legs sit at spot, near OTM legs 5% out,
// far OTM legs 10% out. Under the delta policy the same roles map to the full
// target, 0.6x, and 0.3x of it.
const (
	atmOffset  = 0.0
	nearOffset = 0.05
	farOffset  = 0.10

	atmFrac  = 1.0
	nearFrac = 0.6
	farFrac  = 0.3
)

var catalog = map[models.StrategyName][]legTemplate{
	models.LongCall: {
		{role: "atm call", kind: models.Call, quantity: 1, offset: atmOffset, deltaFrac: atmFrac},
	},
	models.LongPut: {
		{role: "atm put", kind: models.Put, quantity: 1, offset: atmOffset, deltaFrac: atmFrac},
	},
	models.BullCallSpread: {
		{role: "long atm call", kind: models.Call, quantity: 1, offset: atmOffset, deltaFrac: atmFrac},
		{role: "short otm call", kind: models.Call, quantity: -1, offset: nearOffset, deltaFrac: nearFrac},
	},
	models.BearPutSpread: {
		{role: "long atm put", kind: models.Put, quantity: 1, offset: atmOffset, deltaFrac: atmFrac},
		{role: "short otm put", kind: models.Put, quantity: -1, offset: -nearOffset, deltaFrac: nearFrac},
	},
	models.BullPutSpread: {
		{role: "short near put", kind: models.Put, quantity: -1, offset: -nearOffset, deltaFrac: nearFrac},
		{role: "long far put", kind: models.Put, quantity: 1, offset: -farOffset, deltaFrac: farFrac},
	},
	models.BearCallSpread: {
		{role: "short near call", kind: models.Call, quantity: -1, offset: nearOffset, deltaFrac: nearFrac},
		{role: "long far call", kind: models.Call, quantity: 1, offset: farOffset, deltaFrac: farFrac},
	},
	models.IronCondor: {
		{role: "long far put", kind: models.Put, quantity: 1, offset: -farOffset, deltaFrac: farFrac},
		{role: "short near put", kind: models.Put, quantity: -1, offset: -nearOffset, deltaFrac: nearFrac},
		{role: "short near call", kind: models.Call, quantity: -1, offset: nearOffset, deltaFrac: nearFrac},
		{role: "long far call", kind: models.Call, quantity: 1, offset: farOffset, deltaFrac: farFrac},
	},
	models.LongStraddle: {
		{role: "atm call", kind: models.Call, quantity: 1, offset: atmOffset, deltaFrac: atmFrac},
		{role: "atm put", kind: models.Put, quantity: 1, offset: atmOffset, deltaFrac: atmFrac},
	},
	models.ShortStrangle: {
		{role: "short otm call", kind: models.Call, quantity: -1, offset: nearOffset, deltaFrac: nearFrac},
		{role: "short otm put", kind: models.Put, quantity: -1, offset: -nearOffset, deltaFrac: nearFrac},
	},
	models.CashSecuredPut: {
		{role: "short otm put", kind: models.Put, quantity: -1, offset: -nearOffset, deltaFrac: nearFrac},
	},
}

// catalogOrder fixes the presentation order of the catalog.
var catalogOrder = []models.StrategyName{
	models.LongCall,
	models.LongPut,
	models.BullCallSpread,
	models.BearPutSpread,
	models.BullPutSpread,
	models.BearCallSpread,
	models.IronCondor,
	models.LongStraddle,
	models.ShortStrangle,
	models.CashSecuredPut,
}

// Catalog returns the fixed strategy catalog in presentation order.
// Downstream callers must treat this as a closed enumeration.
func Catalog() []models.StrategyName {
	out := make([]models.StrategyName, len(catalogOrder))
	copy(out, catalogOrder)
	return out
}
