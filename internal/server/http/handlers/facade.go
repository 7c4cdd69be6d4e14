package handlers

import (
	"context"

	"slotdesk/internal/domain/model"
)

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	CreateOrder(ctx context.Context, order *model.Order) (*model.Order, error)
	Order(ctx context.Context, number string) (*model.Order, error)
	Orders(ctx context.Context) ([]model.Order, error)
	UpdateOrderStatus(ctx context.Context, number string, status model.OrderStatus) (*model.Order, error)
	DeleteOrder(ctx context.Context, number string) (int, error)
}

// AccountFacade provides administrative account operations.
type AccountFacade interface {
	CreateAccount(ctx context.Context, account *model.Account) (*model.Account, error)
	Account(ctx context.Context, id int64) (*model.Account, error)
	Accounts(ctx context.Context) ([]model.Account, error)
	UpdateAccountCapacity(ctx context.Context, id int64, maxUserSlots int) error
}

// BackofficeFacade aggregates the full set of operations used across handlers.
type BackofficeFacade interface {
	OrderFacade
	AccountFacade
}

// HealthChecker verifies the storage is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}
