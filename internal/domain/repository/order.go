package repository

import (
	"context"

	"slotdesk/internal/domain/model"
)

// OrderRepository persists orders. Create and Delete run as single database
// transactions covering both the order rows and the slot reservations they imply.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) (*model.Order, error)
	GetByNumber(ctx context.Context, number string) (*model.Order, error)
	List(ctx context.Context) ([]model.Order, error)
	UpdateStatus(ctx context.Context, number string, status model.OrderStatus) (*model.Order, error)
	Delete(ctx context.Context, number string) (slotsReleased int, err error)
}
