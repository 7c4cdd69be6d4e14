package repository

import (
	"context"

	"slotdesk/internal/domain/model"
)

// AccountRepository manages shared-account records and their slot counters.
// Slot counters themselves only move through order create/delete transactions,
// never through direct writes.
type AccountRepository interface {
	Create(ctx context.Context, account *model.Account) (*model.Account, error)
	GetByID(ctx context.Context, id int64) (*model.Account, error)
	GetByEmail(ctx context.Context, email string) (*model.Account, error)
	List(ctx context.Context) ([]model.Account, error)
	UpdateCapacity(ctx context.Context, id int64, maxUserSlots int) error
	SlotUsage(ctx context.Context) ([]model.SlotUsage, error)
}
