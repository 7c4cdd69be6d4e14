package model

// SlotUsage compares an account's stored slot counter against the quantity sum of
// active order items. ActiveQuantity != CurrentUsers means the ledger drifted.
type SlotUsage struct {
	AccountID      int64
	AccountEmail   string
	CurrentUsers   int
	ActiveQuantity int
}

// Drift is nonzero when stored counters disagree with the item sum.
func (u SlotUsage) Drift() int {
	return u.CurrentUsers - u.ActiveQuantity
}
