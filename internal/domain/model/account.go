package model

import "time"

// Account is a purchasable shared subscription with a finite number of user slots.
type Account struct {
	ID           int64
	ServiceName  string
	Email        string
	MaxUserSlots int
	CurrentUsers int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AvailableSlots derives remaining capacity. Only CurrentUsers is persisted,
// so maxUserSlots == currentUsers + availableSlots holds by construction.
func (a Account) AvailableSlots() int {
	return a.MaxUserSlots - a.CurrentUsers
}
