package depositrepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/monopolygame/monopolybot/internal/domain"
	"github.com/monopolygame/monopolybot/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

const depositColumns = `id, user_id, amount_usd, amount_mc, payment_id, order_id, status, pay_address, pay_amount, pay_currency, payment_url, created_at, updated_at, paid_at`

func scanDeposit(row pgx.Row, d *domain.Deposit) error {
	return row.Scan(
		&d.ID, &d.UserID, &d.AmountUSD, &d.AmountMC, &d.PaymentID, &d.OrderID, &d.Status,
		&d.PayAddress, &d.PayAmount, &d.PayCurrency, &d.PaymentURL,
		&d.CreatedAt, &d.UpdatedAt, &d.PaidAt,
	)
}

func (r *Repository) Create(ctx context.Context, dep *domain.Deposit) (*domain.Deposit, error) {
	query := `
		INSERT INTO deposits (user_id, amount_usd, amount_mc, payment_id, order_id, status, pay_address, pay_amount, pay_currency, payment_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		dep.UserID, dep.AmountUSD, dep.AmountMC, dep.PaymentID, dep.OrderID, dep.Status,
		dep.PayAddress, dep.PayAmount, dep.PayCurrency, dep.PaymentURL,
	).Scan(&dep.ID, &dep.CreatedAt, &dep.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save deposit", zap.Error(err))
		return nil, err
	}
	return dep, nil
}

func (r *Repository) GetByOrderID(ctx context.Context, orderID string) (*domain.Deposit, error) {
	var dep domain.Deposit
	query := `
		SELECT ` + depositColumns + `
		FROM deposits
		WHERE order_id = $1
	`
	err := scanDeposit(r.db.QueryRow(ctx, query, orderID), &dep)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find deposit by order id", zap.Error(err))
		return nil, err
	}
	return &dep, nil
}

func (r *Repository) ListPending(ctx context.Context, limit uint32) ([]domain.Deposit, error) {
	query := `
		SELECT ` + depositColumns + `
		FROM deposits
		WHERE status = 'pending'
		ORDER BY created_at
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("failed to fetch pending deposits", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var deps []domain.Deposit
	for rows.Next() {
		var d domain.Deposit
		if err := scanDeposit(rows, &d); err != nil {
			zap.L().Error("failed to scan deposit row", zap.Error(err))
			return nil, err
		}
		deps = append(deps, d)
	}
	return deps, rows.Err()
}

// MarkPaid transitions pending -> paid. Returns false without error when the
// deposit was not pending anymore, so re-deliveries stay idempotent.
func (r *Repository) MarkPaid(ctx context.Context, depositID int64, paidAt time.Time) (bool, error) {
	query := `
		UPDATE deposits
		SET status = 'paid', paid_at = $1, updated_at = now()
		WHERE id = $2 AND status = 'pending'
	`
	tag, err := r.db.Exec(ctx, query, paidAt, depositID)
	if err != nil {
		zap.L().Error("can't mark deposit paid", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// MarkStatus transitions pending -> failed|expired with the same
// no-op-on-terminal contract as MarkPaid.
func (r *Repository) MarkStatus(ctx context.Context, depositID int64, status domain.DepositStatus) (bool, error) {
	query := `
		UPDATE deposits
		SET status = $1, updated_at = now()
		WHERE id = $2 AND status = 'pending'
	`
	tag, err := r.db.Exec(ctx, query, status, depositID)
	if err != nil {
		zap.L().Error("can't update deposit status", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
