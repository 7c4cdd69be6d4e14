package test

import (
	"context"

	domainErrors "slotdesk/internal/domain/errors"
	"slotdesk/internal/domain/model"
)

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	CreateOrderFn       func(context.Context, *model.Order) (*model.Order, error)
	OrderFn             func(context.Context, string) (*model.Order, error)
	OrdersFn            func(context.Context) ([]model.Order, error)
	UpdateOrderStatusFn func(context.Context, string, model.OrderStatus) (*model.Order, error)
	DeleteOrderFn       func(context.Context, string) (int, error)
}

func (s OrderFacadeStub) CreateOrder(ctx context.Context, order *model.Order) (*model.Order, error) {
	if s.CreateOrderFn != nil {
		return s.CreateOrderFn(ctx, order)
	}
	created := *order
	created.Number = "SLT-TEST-00000001"
	return &created, nil
}

func (s OrderFacadeStub) Order(ctx context.Context, number string) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, number)
	}
	return nil, domainErrors.ErrNotFound
}

func (s OrderFacadeStub) Orders(ctx context.Context) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx)
	}
	return nil, nil
}

func (s OrderFacadeStub) UpdateOrderStatus(ctx context.Context, number string, status model.OrderStatus) (*model.Order, error) {
	if s.UpdateOrderStatusFn != nil {
		return s.UpdateOrderStatusFn(ctx, number, status)
	}
	return nil, domainErrors.ErrNotFound
}

func (s OrderFacadeStub) DeleteOrder(ctx context.Context, number string) (int, error) {
	if s.DeleteOrderFn != nil {
		return s.DeleteOrderFn(ctx, number)
	}
	return 0, domainErrors.ErrNotFound
}

// AccountFacadeStub provides controllable behaviour for account endpoints.
type AccountFacadeStub struct {
	CreateAccountFn         func(context.Context, *model.Account) (*model.Account, error)
	AccountFn               func(context.Context, int64) (*model.Account, error)
	AccountsFn              func(context.Context) ([]model.Account, error)
	UpdateAccountCapacityFn func(context.Context, int64, int) error
}

func (s AccountFacadeStub) CreateAccount(ctx context.Context, account *model.Account) (*model.Account, error) {
	if s.CreateAccountFn != nil {
		return s.CreateAccountFn(ctx, account)
	}
	created := *account
	created.ID = 1
	return &created, nil
}

func (s AccountFacadeStub) Account(ctx context.Context, id int64) (*model.Account, error) {
	if s.AccountFn != nil {
		return s.AccountFn(ctx, id)
	}
	return nil, domainErrors.ErrAccountNotFound
}

func (s AccountFacadeStub) Accounts(ctx context.Context) ([]model.Account, error) {
	if s.AccountsFn != nil {
		return s.AccountsFn(ctx)
	}
	return nil, nil
}

func (s AccountFacadeStub) UpdateAccountCapacity(ctx context.Context, id int64, maxUserSlots int) error {
	if s.UpdateAccountCapacityFn != nil {
		return s.UpdateAccountCapacityFn(ctx, id, maxUserSlots)
	}
	return nil
}

// BackofficeFacadeStub aggregates stubs for router-level tests.
type BackofficeFacadeStub struct {
	OrderFacadeStub
	AccountFacadeStub
}

// HealthCheckerStub reports a configurable health state.
type HealthCheckerStub struct {
	Err error
}

func (s HealthCheckerStub) HealthCheck(ctx context.Context) error {
	return s.Err
}
