package model

// Credential holds login details handed to the customer for a purchased slot.
// It is owned by its order and removed together with it.
type Credential struct {
	ID             int64
	OrderID        int64
	Username       string
	Password       string
	LoginURL       string
	AdditionalInfo string
	IsActive       bool
}
