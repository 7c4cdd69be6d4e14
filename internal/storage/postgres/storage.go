package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "slotdesk/internal/domain/errors"
	"slotdesk/internal/domain/model"
	"slotdesk/internal/domain/repository"
)

// pgxPool is the subset of pgxpool.Pool the storage uses; tests substitute a mock.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type accountRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

// New migrates the schema and opens the connection pool.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	if err := runMigrations(dsn); err != nil {
		return nil, err
	}

	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	return &Storage{pool: pool, logger: logger}, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Accounts() repository.AccountRepository {
	return &accountRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

// WithinTransaction executes fn inside a transaction boundary. Lock waits, deadlocks
// and serialization failures surface as ErrTransientStore so callers can retry the
// whole operation; nothing partial commits.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return translateErr(err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = translateErr(tx.Commit(ctx))
		}
	}()

	err = translateErr(fn(tx))
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}

func translateErr(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "40001", "40P01", "55P03": // serialization failure, deadlock, lock not available
			return fmt.Errorf("%w: %s", domainErrors.ErrTransientStore, pgErr.Code)
		}
	}
	return err
}

// --- AccountRepository implementation ---

const accountColumns = `id, service_name, email, max_user_slots, current_users, created_at, updated_at`

func scanAccount(row pgx.Row) (*model.Account, error) {
	var a model.Account
	err := row.Scan(&a.ID, &a.ServiceName, &a.Email, &a.MaxUserSlots, &a.CurrentUsers, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrAccountNotFound
		}
		return nil, translateErr(err)
	}
	return &a, nil
}

func (r *accountRepository) Create(ctx context.Context, account *model.Account) (*model.Account, error) {
	const query = `INSERT INTO accounts (service_name, email, max_user_slots)
                   VALUES ($1, $2, $3)
                   RETURNING id, current_users, created_at, updated_at`
	created := *account
	err := r.storage.pool.QueryRow(ctx, query, account.ServiceName, account.Email, account.MaxUserSlots).
		Scan(&created.ID, &created.CurrentUsers, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, translateErr(err)
	}
	return &created, nil
}

func (r *accountRepository) GetByID(ctx context.Context, id int64) (*model.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id=$1`
	return scanAccount(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *accountRepository) GetByEmail(ctx context.Context, email string) (*model.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE email=$1`
	return scanAccount(r.storage.pool.QueryRow(ctx, query, email))
}

func (r *accountRepository) List(ctx context.Context) ([]model.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()

	var result []model.Account
	for rows.Next() {
		var a model.Account
		if err := rows.Scan(&a.ID, &a.ServiceName, &a.Email, &a.MaxUserSlots, &a.CurrentUsers, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, translateErr(err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, translateErr(err)
	}
	return result, nil
}

// UpdateCapacity changes max_user_slots, refusing to shrink below already consumed
// slots so the range check never strands an active order.
func (r *accountRepository) UpdateCapacity(ctx context.Context, id int64, maxUserSlots int) error {
	if maxUserSlots < 1 {
		return &domainErrors.ValidationError{Reason: "maxUserSlots must be at least 1"}
	}
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const lockQuery = `SELECT current_users FROM accounts WHERE id=$1 FOR UPDATE`
		var current int
		if err := tx.QueryRow(ctx, lockQuery, id).Scan(&current); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrAccountNotFound
			}
			return err
		}
		if maxUserSlots < current {
			return &domainErrors.ValidationError{Reason: fmt.Sprintf("cannot lower capacity below %d consumed slots", current)}
		}
		_, err := tx.Exec(ctx, `UPDATE accounts SET max_user_slots=$2, updated_at=NOW() WHERE id=$1`, id, maxUserSlots)
		return err
	})
}

// SlotUsage pairs each account's stored counter with the quantity sum of existing
// order items, for ledger drift auditing.
func (r *accountRepository) SlotUsage(ctx context.Context) ([]model.SlotUsage, error) {
	const query = `SELECT a.id, a.email, a.current_users, COALESCE(SUM(oi.quantity), 0)
                   FROM accounts a
                   LEFT JOIN order_items oi ON oi.account_id = a.id
                   GROUP BY a.id, a.email, a.current_users
                   ORDER BY a.id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()

	var result []model.SlotUsage
	for rows.Next() {
		var u model.SlotUsage
		if err := rows.Scan(&u.AccountID, &u.AccountEmail, &u.CurrentUsers, &u.ActiveQuantity); err != nil {
			return nil, translateErr(err)
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, translateErr(err)
	}
	return result, nil
}
