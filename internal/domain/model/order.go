package model

import "time"

// OrderStatus marks whether slots are still considered consumed by the order.
type OrderStatus string

const (
	OrderStatusActive    OrderStatus = "active"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// CustomerType distinguishes regular buyers from resellers eligible for discount.
type CustomerType string

const (
	CustomerTypeStandard CustomerType = "standard"
	CustomerTypeReseller CustomerType = "reseller"
)

// Order is a persisted purchase tying a customer to slot-consuming line items.
type Order struct {
	ID             int64
	Number         string
	CustomerName   string
	CustomerEmail  string
	CustomerType   CustomerType
	DiscountRate   float64
	Subtotal       float64
	DiscountAmount float64
	TotalAmount    float64
	Status         OrderStatus
	Items          []OrderItem
	Credentials    []Credential
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// OrderItem consumes Quantity slots on the referenced account. AccountID is the
// stable reference; AccountEmail is denormalized for display only.
type OrderItem struct {
	ID           int64
	OrderID      int64
	AccountID    int64
	AccountEmail string
	ProductName  string
	UnitPrice    float64
	Quantity     int
}
