package postgres

import (
	"context"
	"errors"
	"sort"

	"github.com/jackc/pgx/v5"

	domainErrors "slotdesk/internal/domain/errors"
	"slotdesk/internal/domain/model"
)

// The slot ledger. current_users moves only through reserveSlotsTx/releaseSlotsTx,
// always under a row lock on the account, always inside the caller's transaction.

// reservation is the per-account quantity an order consumes or returns.
type reservation struct {
	accountID    int64
	accountEmail string
	quantity     int
}

// aggregateReservations folds line items into one reservation per account and
// sorts them by ascending account id. Locking accounts in this fixed global order
// keeps two concurrent orders over the same accounts from deadlocking, no matter
// how their items were submitted.
func aggregateReservations(items []model.OrderItem) []reservation {
	byAccount := make(map[int64]*reservation, len(items))
	for _, item := range items {
		if res, ok := byAccount[item.AccountID]; ok {
			res.quantity += item.Quantity
			continue
		}
		byAccount[item.AccountID] = &reservation{
			accountID:    item.AccountID,
			accountEmail: item.AccountEmail,
			quantity:     item.Quantity,
		}
	}

	result := make([]reservation, 0, len(byAccount))
	for _, res := range byAccount {
		result = append(result, *res)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].accountID < result[j].accountID })
	return result
}

// reserveSlotsTx consumes quantity slots on the account. The SELECT ... FOR UPDATE
// serializes concurrent reservations on the same row, so the capacity check can
// never pass against a stale read.
func (s *Storage) reserveSlotsTx(ctx context.Context, tx pgx.Tx, accountID int64, quantity int) error {
	const lockQuery = `SELECT email, max_user_slots, current_users FROM accounts WHERE id=$1 FOR UPDATE`
	var (
		email        string
		maxSlots     int
		currentUsers int
	)
	if err := tx.QueryRow(ctx, lockQuery, accountID).Scan(&email, &maxSlots, &currentUsers); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainErrors.ErrAccountNotFound
		}
		return err
	}

	if maxSlots-currentUsers < quantity {
		return &domainErrors.InsufficientCapacityError{
			AccountID:    accountID,
			AccountEmail: email,
			Requested:    quantity,
			Available:    maxSlots - currentUsers,
		}
	}

	const updateQuery = `UPDATE accounts SET current_users = current_users + $2, updated_at = NOW() WHERE id=$1`
	_, err := tx.Exec(ctx, updateQuery, accountID, quantity)
	return err
}

// releaseSlotsTx returns slots to the account, clamped at zero consumed so a
// replayed delete cannot push availability past max_user_slots. It reports how
// many slots actually came back.
func (s *Storage) releaseSlotsTx(ctx context.Context, tx pgx.Tx, accountID int64, quantity int) (int, error) {
	const lockQuery = `SELECT current_users FROM accounts WHERE id=$1 FOR UPDATE`
	var currentUsers int
	if err := tx.QueryRow(ctx, lockQuery, accountID).Scan(&currentUsers); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domainErrors.ErrAccountNotFound
		}
		return 0, err
	}

	released := quantity
	if released > currentUsers {
		released = currentUsers
	}

	const updateQuery = `UPDATE accounts SET current_users = GREATEST(current_users - $2, 0), updated_at = NOW() WHERE id=$1`
	if _, err := tx.Exec(ctx, updateQuery, accountID, quantity); err != nil {
		return 0, err
	}
	return released, nil
}
