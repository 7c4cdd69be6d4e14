package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	domainErrors "slotdesk/internal/domain/errors"
	"slotdesk/internal/domain/model"
	"slotdesk/internal/metrics"
	"slotdesk/internal/pkg/idgen"
	testhelpers "slotdesk/internal/test"
)

func newOrderUseCase(orders *testhelpers.OrderRepositoryStub) *OrderUseCase {
	return NewOrderUseCase(orders, idgen.New(1), metrics.New(prometheus.NewRegistry()))
}

func validOrder() *model.Order {
	return &model.Order{
		CustomerName: "Alice",
		CustomerType: model.CustomerTypeReseller,
		DiscountRate: 15,
		Items: []model.OrderItem{
			{AccountID: 7, ProductName: "family plan seat", UnitPrice: 100, Quantity: 2},
		},
	}
}

func TestOrderCreateValidation(t *testing.T) {
	repo := &testhelpers.OrderRepositoryStub{CreateFn: func(context.Context, *model.Order) (*model.Order, error) {
		t.Fatal("repository should not be reached on validation errors")
		return nil, nil
	}}
	uc := newOrderUseCase(repo)

	tests := []struct {
		name  string
		order *model.Order
	}{
		{"missing customer name", &model.Order{Items: []model.OrderItem{{AccountID: 1, Quantity: 1}}}},
		{"no items", &model.Order{CustomerName: "Bob"}},
		{"zero quantity", &model.Order{CustomerName: "Bob", Items: []model.OrderItem{{AccountID: 1, Quantity: 0}}}},
		{"negative price", &model.Order{CustomerName: "Bob", Items: []model.OrderItem{{AccountID: 1, Quantity: 1, UnitPrice: -3}}}},
		{"no account reference", &model.Order{CustomerName: "Bob", Items: []model.OrderItem{{Quantity: 1}}}},
		{"bad customer type", &model.Order{CustomerName: "Bob", CustomerType: "vip", Items: []model.OrderItem{{AccountID: 1, Quantity: 1}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Create(context.Background(), tt.order)
			if !errors.Is(err, domainErrors.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestOrderCreateComputesTotalsAndNumber(t *testing.T) {
	var persisted *model.Order
	repo := &testhelpers.OrderRepositoryStub{CreateFn: func(_ context.Context, order *model.Order) (*model.Order, error) {
		persisted = order
		created := *order
		created.ID = 11
		return &created, nil
	}}
	uc := newOrderUseCase(repo)

	created, err := uc.Create(context.Background(), validOrder())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if persisted.Subtotal != 200 || persisted.DiscountAmount != 30 || persisted.TotalAmount != 170 {
		t.Fatalf("unexpected totals: %+v", persisted)
	}
	if persisted.Number == "" {
		t.Fatal("expected generated order number")
	}
	if persisted.Status != model.OrderStatusActive {
		t.Fatalf("expected active status, got %s", persisted.Status)
	}
	if created.ID != 11 {
		t.Fatalf("expected repository result returned, got %+v", created)
	}
}

func TestOrderCreateClampsDiscountRate(t *testing.T) {
	repo := &testhelpers.OrderRepositoryStub{}
	uc := newOrderUseCase(repo)

	order := validOrder()
	order.DiscountRate = 140
	created, err := uc.Create(context.Background(), order)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.DiscountRate != 100 {
		t.Fatalf("expected rate clamped to 100, got %v", created.DiscountRate)
	}
	if created.TotalAmount != 0 {
		t.Fatalf("expected zero total under full discount, got %v", created.TotalAmount)
	}
}

func TestOrderCreateDefaultsCustomerType(t *testing.T) {
	repo := &testhelpers.OrderRepositoryStub{}
	uc := newOrderUseCase(repo)

	order := validOrder()
	order.CustomerType = ""
	created, err := uc.Create(context.Background(), order)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.CustomerType != model.CustomerTypeStandard {
		t.Fatalf("expected standard customer type, got %s", created.CustomerType)
	}
}

func TestOrderCreatePropagatesCapacityError(t *testing.T) {
	capacityErr := &domainErrors.InsufficientCapacityError{AccountID: 7, AccountEmail: "a@x.io", Requested: 2, Available: 1}
	repo := &testhelpers.OrderRepositoryStub{CreateFn: func(context.Context, *model.Order) (*model.Order, error) {
		return nil, capacityErr
	}}
	uc := newOrderUseCase(repo)

	_, err := uc.Create(context.Background(), validOrder())
	if !errors.Is(err, domainErrors.ErrInsufficientCapacity) {
		t.Fatalf("expected insufficient capacity, got %v", err)
	}
	var got *domainErrors.InsufficientCapacityError
	if !errors.As(err, &got) || got.AccountEmail != "a@x.io" {
		t.Fatalf("expected offending account preserved, got %v", err)
	}
}

func TestOrderUpdateStatusValidation(t *testing.T) {
	repo := &testhelpers.OrderRepositoryStub{UpdateStatusFn: func(context.Context, string, model.OrderStatus) (*model.Order, error) {
		t.Fatal("repository should not be reached for unknown status")
		return nil, nil
	}}
	uc := newOrderUseCase(repo)

	if _, err := uc.UpdateStatus(context.Background(), "SLT-1", "archived"); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestOrderUpdateStatusSuccess(t *testing.T) {
	repo := &testhelpers.OrderRepositoryStub{UpdateStatusFn: func(_ context.Context, number string, status model.OrderStatus) (*model.Order, error) {
		return &model.Order{Number: number, Status: status}, nil
	}}
	uc := newOrderUseCase(repo)

	order, err := uc.UpdateStatus(context.Background(), "SLT-1", model.OrderStatusCompleted)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Status != model.OrderStatusCompleted {
		t.Fatalf("unexpected status %s", order.Status)
	}
}

func TestOrderDelete(t *testing.T) {
	repo := &testhelpers.OrderRepositoryStub{DeleteFn: func(_ context.Context, number string) (int, error) {
		if number != "SLT-1" {
			t.Fatalf("unexpected number %s", number)
		}
		return 3, nil
	}}
	uc := newOrderUseCase(repo)

	released, err := uc.Delete(context.Background(), "SLT-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if released != 3 {
		t.Fatalf("expected 3 slots released, got %d", released)
	}
}

func TestOrderDeleteNotFound(t *testing.T) {
	uc := newOrderUseCase(&testhelpers.OrderRepositoryStub{})
	if _, err := uc.Delete(context.Background(), "missing"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
