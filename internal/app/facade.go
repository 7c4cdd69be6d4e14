package app

import (
	"context"

	"slotdesk/internal/domain/model"
	"slotdesk/internal/usecase"
)

// BackofficeFacade aggregates the use cases behind one surface for the HTTP
// handlers and the reconciler worker.
type BackofficeFacade struct {
	orders   *usecase.OrderUseCase
	accounts *usecase.AccountUseCase
}

// NewBackofficeFacade constructs the facade.
func NewBackofficeFacade(orders *usecase.OrderUseCase, accounts *usecase.AccountUseCase) *BackofficeFacade {
	return &BackofficeFacade{orders: orders, accounts: accounts}
}

func (f *BackofficeFacade) CreateOrder(ctx context.Context, order *model.Order) (*model.Order, error) {
	return f.orders.Create(ctx, order)
}

func (f *BackofficeFacade) Order(ctx context.Context, number string) (*model.Order, error) {
	return f.orders.Get(ctx, number)
}

func (f *BackofficeFacade) Orders(ctx context.Context) ([]model.Order, error) {
	return f.orders.List(ctx)
}

func (f *BackofficeFacade) UpdateOrderStatus(ctx context.Context, number string, status model.OrderStatus) (*model.Order, error) {
	return f.orders.UpdateStatus(ctx, number, status)
}

func (f *BackofficeFacade) DeleteOrder(ctx context.Context, number string) (int, error) {
	return f.orders.Delete(ctx, number)
}

func (f *BackofficeFacade) CreateAccount(ctx context.Context, account *model.Account) (*model.Account, error) {
	return f.accounts.Create(ctx, account)
}

func (f *BackofficeFacade) Account(ctx context.Context, id int64) (*model.Account, error) {
	return f.accounts.Get(ctx, id)
}

func (f *BackofficeFacade) Accounts(ctx context.Context) ([]model.Account, error) {
	return f.accounts.List(ctx)
}

func (f *BackofficeFacade) UpdateAccountCapacity(ctx context.Context, id int64, maxUserSlots int) error {
	return f.accounts.UpdateCapacity(ctx, id, maxUserSlots)
}

func (f *BackofficeFacade) SlotUsage(ctx context.Context) ([]model.SlotUsage, error) {
	return f.accounts.SlotUsage(ctx)
}
