package usecase

import (
	"context"
	"errors"

	domainErrors "slotdesk/internal/domain/errors"
	"slotdesk/internal/domain/model"
	"slotdesk/internal/domain/repository"
	"slotdesk/internal/metrics"
	"slotdesk/internal/pkg/idgen"
	"slotdesk/internal/pricing"
)

// OrderUseCase coordinates order creation and deletion: pricing, order number
// generation, and the slot-reserving transaction in the repository.
type OrderUseCase struct {
	orders  repository.OrderRepository
	numbers *idgen.Generator
	metrics *metrics.Metrics
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, numbers *idgen.Generator, m *metrics.Metrics) *OrderUseCase {
	return &OrderUseCase{orders: orders, numbers: numbers, metrics: m}
}

// Create validates the request, prices it, assigns an order number and hands the
// whole thing to the repository as one transaction. Validation failures never
// open a transaction.
func (u *OrderUseCase) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	if err := ValidateOrderInput(order); err != nil {
		return nil, err
	}

	order.DiscountRate = pricing.ClampRate(order.DiscountRate)
	totals := pricing.ComputeTotals(order.Items, order.DiscountRate)
	order.Subtotal = totals.Subtotal
	order.DiscountAmount = totals.DiscountAmount
	order.TotalAmount = totals.Total

	if order.CustomerType == "" {
		order.CustomerType = model.CustomerTypeStandard
	}
	if order.Status == "" {
		order.Status = model.OrderStatusActive
	}
	order.Number = u.numbers.OrderNumber()

	created, err := u.orders.Create(ctx, order)
	if err != nil {
		if errors.Is(err, domainErrors.ErrInsufficientCapacity) {
			u.metrics.ReservationConflicts.Inc()
		}
		return nil, err
	}

	u.metrics.OrdersCreated.Inc()
	u.metrics.SlotsReserved.Add(float64(totalQuantity(created.Items)))
	return created, nil
}

// Get returns the order with items and credentials.
func (u *OrderUseCase) Get(ctx context.Context, number string) (*model.Order, error) {
	return u.orders.GetByNumber(ctx, number)
}

// List returns all orders, newest first.
func (u *OrderUseCase) List(ctx context.Context) ([]model.Order, error) {
	return u.orders.List(ctx)
}

// UpdateStatus patches the order status. Line items are immutable after creation;
// quantity or price changes go through delete and recreate so the slot ledger
// stays consistent.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, number string, status model.OrderStatus) (*model.Order, error) {
	if err := ValidateOrderStatus(status); err != nil {
		return nil, err
	}
	return u.orders.UpdateStatus(ctx, number, status)
}

// Delete removes the order and releases its slots in one transaction, reporting
// how many slots came back.
func (u *OrderUseCase) Delete(ctx context.Context, number string) (int, error) {
	released, err := u.orders.Delete(ctx, number)
	if err != nil {
		return 0, err
	}
	u.metrics.OrdersDeleted.Inc()
	u.metrics.SlotsReleased.Add(float64(released))
	return released, nil
}

func totalQuantity(items []model.OrderItem) int {
	var total int
	for _, item := range items {
		total += item.Quantity
	}
	return total
}
