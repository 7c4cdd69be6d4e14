package dto

import "time"

// CreateOrderRequest is the POST /api/orders body.
type CreateOrderRequest struct {
	CustomerName  string              `json:"customerName"`
	CustomerEmail string              `json:"customerEmail"`
	CustomerType  string              `json:"customerType"`
	DiscountRate  float64             `json:"discountRate"`
	Items         []OrderItemRequest  `json:"items"`
	Credentials   []CredentialRequest `json:"credentials"`
}

// OrderItemRequest references an account by stable id or, as a fallback, by email.
type OrderItemRequest struct {
	AccountID    int64   `json:"accountId"`
	AccountEmail string  `json:"accountEmail"`
	ProductName  string  `json:"productName"`
	UnitPrice    float64 `json:"unitPrice"`
	Quantity     int     `json:"quantity"`
}

// CredentialRequest carries optional login details attached to the order.
type CredentialRequest struct {
	Username       string `json:"username"`
	Password       string `json:"password"`
	LoginURL       string `json:"loginUrl"`
	AdditionalInfo string `json:"additionalInfo"`
	IsActive       *bool  `json:"isActive"`
}

// UpdateOrderRequest patches the order status; anything touching line items is
// rejected.
type UpdateOrderRequest struct {
	Status string `json:"status"`
}

// OrderResponse mirrors a persisted order.
type OrderResponse struct {
	OrderNumber    string               `json:"orderNumber"`
	CustomerName   string               `json:"customerName"`
	CustomerEmail  string               `json:"customerEmail"`
	CustomerType   string               `json:"customerType"`
	DiscountRate   float64              `json:"discountRate"`
	Subtotal       float64              `json:"subtotal"`
	DiscountAmount float64              `json:"discountAmount"`
	TotalAmount    float64              `json:"totalAmount"`
	Status         string               `json:"status"`
	Items          []OrderItemResponse  `json:"items"`
	Credentials    []CredentialResponse `json:"credentials,omitempty"`
	CreatedAt      time.Time            `json:"createdAt"`
}

// OrderItemResponse mirrors a persisted line item.
type OrderItemResponse struct {
	AccountID    int64   `json:"accountId"`
	AccountEmail string  `json:"accountEmail"`
	ProductName  string  `json:"productName"`
	UnitPrice    float64 `json:"unitPrice"`
	Quantity     int     `json:"quantity"`
}

// CredentialResponse mirrors stored login details.
type CredentialResponse struct {
	Username       string `json:"username"`
	Password       string `json:"password"`
	LoginURL       string `json:"loginUrl"`
	AdditionalInfo string `json:"additionalInfo"`
	IsActive       bool   `json:"isActive"`
}

// DeleteOrderResponse reports slots returned by a deletion.
type DeleteOrderResponse struct {
	OrderNumber   string `json:"orderNumber"`
	SlotsReleased int    `json:"slotsReleased"`
}

// ErrorResponse is the uniform error body. Account is set on capacity conflicts
// to name the offending account.
type ErrorResponse struct {
	Error   string              `json:"error"`
	Account *AccountCapacityRef `json:"account,omitempty"`
}

// AccountCapacityRef identifies the account that could not satisfy a reservation.
type AccountCapacityRef struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	Requested int    `json:"requested"`
	Available int    `json:"available"`
}
