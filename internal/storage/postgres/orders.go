package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domainErrors "slotdesk/internal/domain/errors"
	"slotdesk/internal/domain/model"
)

// --- OrderRepository implementation ---

// Create persists the order and reserves its slots as one atomic unit. Any failed
// reservation or insert rolls the whole transaction back; no partial slot
// consumption or partial order row is ever observable.
func (r *orderRepository) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	created := *order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		items, err := resolveItemsTx(ctx, tx, order.Items)
		if err != nil {
			return err
		}
		created.Items = items

		for _, res := range aggregateReservations(items) {
			if err := r.storage.reserveSlotsTx(ctx, tx, res.accountID, res.quantity); err != nil {
				return err
			}
		}

		const insertOrder = `INSERT INTO orders
                (number, customer_name, customer_email, customer_type, discount_rate,
                 subtotal, discount_amount, total_amount, status)
             VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
             RETURNING id, created_at, updated_at`
		err = tx.QueryRow(ctx, insertOrder,
			order.Number, order.CustomerName, order.CustomerEmail, order.CustomerType,
			order.DiscountRate, order.Subtotal, order.DiscountAmount, order.TotalAmount, order.Status,
		).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return fmt.Errorf("%w: order number %s", domainErrors.ErrAlreadyExists, order.Number)
			}
			return err
		}

		const insertItem = `INSERT INTO order_items
                (order_id, account_id, account_email, product_name, unit_price, quantity)
             VALUES ($1, $2, $3, $4, $5, $6)
             RETURNING id`
		for i := range created.Items {
			item := &created.Items[i]
			item.OrderID = created.ID
			if err := tx.QueryRow(ctx, insertItem,
				created.ID, item.AccountID, item.AccountEmail, item.ProductName, item.UnitPrice, item.Quantity,
			).Scan(&item.ID); err != nil {
				return err
			}
		}

		const insertCredential = `INSERT INTO credentials
                (order_id, username, password, login_url, additional_info, is_active)
             VALUES ($1, $2, $3, $4, $5, $6)
             RETURNING id`
		created.Credentials = append([]model.Credential(nil), order.Credentials...)
		for i := range created.Credentials {
			cred := &created.Credentials[i]
			cred.OrderID = created.ID
			if err := tx.QueryRow(ctx, insertCredential,
				created.ID, cred.Username, cred.Password, cred.LoginURL, cred.AdditionalInfo, cred.IsActive,
			).Scan(&cred.ID); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// resolveItemsTx fills stable account ids for items submitted by email and the
// denormalized email for items submitted by id. A reference to a missing account
// is fatal for the whole order.
func resolveItemsTx(ctx context.Context, tx pgx.Tx, items []model.OrderItem) ([]model.OrderItem, error) {
	resolved := append([]model.OrderItem(nil), items...)
	for i := range resolved {
		item := &resolved[i]
		switch {
		case item.AccountID != 0:
			const query = `SELECT email FROM accounts WHERE id=$1`
			if err := tx.QueryRow(ctx, query, item.AccountID).Scan(&item.AccountEmail); err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return nil, fmt.Errorf("%w: id %d", domainErrors.ErrAccountNotFound, item.AccountID)
				}
				return nil, err
			}
		default:
			const query = `SELECT id FROM accounts WHERE email=$1`
			if err := tx.QueryRow(ctx, query, item.AccountEmail).Scan(&item.AccountID); err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return nil, fmt.Errorf("%w: %s", domainErrors.ErrAccountNotFound, item.AccountEmail)
				}
				return nil, err
			}
		}
	}
	return resolved, nil
}

const orderColumns = `id, number, customer_name, customer_email, customer_type, discount_rate,
       subtotal, discount_amount, total_amount, status, created_at, updated_at`

func scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	err := row.Scan(&o.ID, &o.Number, &o.CustomerName, &o.CustomerEmail, &o.CustomerType, &o.DiscountRate,
		&o.Subtotal, &o.DiscountAmount, &o.TotalAmount, &o.Status, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, translateErr(err)
	}
	return &o, nil
}

func (r *orderRepository) GetByNumber(ctx context.Context, number string) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE number=$1`
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, number))
	if err != nil {
		return nil, err
	}

	if order.Items, err = r.loadItems(ctx, order.ID); err != nil {
		return nil, err
	}
	if order.Credentials, err = r.loadCredentials(ctx, order.ID); err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) loadItems(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	const query = `SELECT id, order_id, account_id, account_email, product_name, unit_price, quantity
                   FROM order_items WHERE order_id=$1 ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()

	var items []model.OrderItem
	for rows.Next() {
		var it model.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.AccountID, &it.AccountEmail, &it.ProductName, &it.UnitPrice, &it.Quantity); err != nil {
			return nil, translateErr(err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, translateErr(err)
	}
	return items, nil
}

func (r *orderRepository) loadCredentials(ctx context.Context, orderID int64) ([]model.Credential, error) {
	const query = `SELECT id, order_id, username, password, login_url, additional_info, is_active
                   FROM credentials WHERE order_id=$1 ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()

	var creds []model.Credential
	for rows.Next() {
		var c model.Credential
		if err := rows.Scan(&c.ID, &c.OrderID, &c.Username, &c.Password, &c.LoginURL, &c.AdditionalInfo, &c.IsActive); err != nil {
			return nil, translateErr(err)
		}
		creds = append(creds, c)
	}
	if err := rows.Err(); err != nil {
		return nil, translateErr(err)
	}
	return creds, nil
}

func (r *orderRepository) List(ctx context.Context) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.Number, &o.CustomerName, &o.CustomerEmail, &o.CustomerType, &o.DiscountRate,
			&o.Subtotal, &o.DiscountAmount, &o.TotalAmount, &o.Status, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, translateErr(err)
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, translateErr(err)
	}
	return result, nil
}

// UpdateStatus patches the status field only. Quantities and prices are immutable
// after creation; callers that need them changed must delete and recreate.
func (r *orderRepository) UpdateStatus(ctx context.Context, number string, status model.OrderStatus) (*model.Order, error) {
	const query = `UPDATE orders SET status=$2, updated_at=NOW() WHERE number=$1 RETURNING id`
	var id int64
	if err := r.storage.pool.QueryRow(ctx, query, number, status).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, translateErr(err)
	}
	return r.GetByNumber(ctx, number)
}

// Delete releases every slot the order holds and removes the order row in one
// transaction; credentials go with it via cascade. A line item pointing at an
// account that no longer exists is logged and skipped: the slots are moot and
// aborting would strand the order forever.
func (r *orderRepository) Delete(ctx context.Context, number string) (int, error) {
	var released int
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const lockOrder = `SELECT id FROM orders WHERE number=$1 FOR UPDATE`
		var orderID int64
		if err := tx.QueryRow(ctx, lockOrder, number).Scan(&orderID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}

		const itemQuery = `SELECT account_id, account_email, SUM(quantity)
                           FROM order_items WHERE order_id=$1
                           GROUP BY account_id, account_email
                           ORDER BY account_id`
		rows, err := tx.Query(ctx, itemQuery, orderID)
		if err != nil {
			return err
		}
		var reservations []reservation
		for rows.Next() {
			var res reservation
			if err := rows.Scan(&res.accountID, &res.accountEmail, &res.quantity); err != nil {
				rows.Close()
				return err
			}
			reservations = append(reservations, res)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return err
		}

		for _, res := range reservations {
			n, err := r.storage.releaseSlotsTx(ctx, tx, res.accountID, res.quantity)
			if err != nil {
				if errors.Is(err, domainErrors.ErrAccountNotFound) {
					r.storage.logger.Warn("account missing on release, skipping",
						slog.String("order", number),
						slog.Int64("account_id", res.accountID),
						slog.String("account_email", res.accountEmail),
					)
					continue
				}
				return err
			}
			released += n
		}

		_, err = tx.Exec(ctx, `DELETE FROM orders WHERE id=$1`, orderID)
		return err
	})
	if err != nil {
		return 0, err
	}
	return released, nil
}
