package withdrawalrepo

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

const withdrawalColumns = `id, user_id, amount_mc, currency, wallet_address, status, tx_hash, processed_by, created_at, processed_at`

func scanWithdrawal(row pgx.Row, w *domain.Withdrawal) error {
	return row.Scan(
		&w.ID, &w.UserID, &w.AmountMC, &w.Currency, &w.WalletAddress,
		&w.Status, &w.TxHash, &w.ProcessedBy, &w.CreatedAt, &w.ProcessedAt,
	)
}

func (r *Repository) Create(ctx context.Context, wd *domain.Withdrawal) (*domain.Withdrawal, error) {
	query := `
		INSERT INTO withdrawals (user_id, amount_mc, currency, wallet_address, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, wd.UserID, wd.AmountMC, wd.Currency, wd.WalletAddress, wd.Status).Scan(&wd.ID, &wd.CreatedAt)
	if err != nil {
		zap.L().Error("can't save withdrawal", zap.Error(err))
		return nil, err
	}
	return wd, nil
}

func (r *Repository) GetByID(ctx context.Context, withdrawalID int64) (*domain.Withdrawal, error) {
	var wd domain.Withdrawal
	query := `
		SELECT ` + withdrawalColumns + `
		FROM withdrawals
		WHERE id = $1
	`
	err := scanWithdrawal(r.db.QueryRow(ctx, query, withdrawalID), &wd)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find withdrawal", zap.Error(err))
		return nil, err
	}
	return &wd, nil
}

func (r *Repository) GetPendingByUser(ctx context.Context, userID int64) (*domain.Withdrawal, error) {
	var wd domain.Withdrawal
	query := `
		SELECT ` + withdrawalColumns + `
		FROM withdrawals
		WHERE user_id = $1 AND status = 'pending'
	`
	err := scanWithdrawal(r.db.QueryRow(ctx, query, userID), &wd)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find pending withdrawal", zap.Error(err))
		return nil, err
	}
	return &wd, nil
}

// GetLatestByUser returns the most recently created withdrawal regardless of
// status; the cooldown window is measured from it.
func (r *Repository) GetLatestByUser(ctx context.Context, userID int64) (*domain.Withdrawal, error) {
	var wd domain.Withdrawal
	query := `
		SELECT ` + withdrawalColumns + `
		FROM withdrawals
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`
	err := scanWithdrawal(r.db.QueryRow(ctx, query, userID), &wd)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find latest withdrawal", zap.Error(err))
		return nil, err
	}
	return &wd, nil
}

func (r *Repository) ListByUser(ctx context.Context, userID int64) ([]domain.Withdrawal, error) {
	query := `
		SELECT ` + withdrawalColumns + `
		FROM withdrawals
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch withdrawals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var withdrawals []domain.Withdrawal
	for rows.Next() {
		var wd domain.Withdrawal
		if err := scanWithdrawal(rows, &wd); err != nil {
			zap.L().Error("failed to scan withdrawal row", zap.Error(err))
			return nil, err
		}
		withdrawals = append(withdrawals, wd)
	}
	return withdrawals, rows.Err()
}

// MarkProcessed transitions pending -> processed, recording the settlement
// details. Returns false when the withdrawal was not pending.
func (r *Repository) MarkProcessed(ctx context.Context, withdrawalID, adminID int64, txHash string, processedAt time.Time) (bool, error) {
	query := `
		UPDATE withdrawals
		SET status = 'processed', tx_hash = $1, processed_by = $2, processed_at = $3
		WHERE id = $4 AND status = 'pending'
	`
	tag, err := r.db.Exec(ctx, query, txHash, adminID, processedAt, withdrawalID)
	if err != nil {
		zap.L().Error("can't mark withdrawal processed", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// MarkStatus transitions pending -> cancelled|refunded. Returns false when
// the withdrawal was not pending.
func (r *Repository) MarkStatus(ctx context.Context, withdrawalID, adminID int64, status domain.WithdrawalStatus, processedAt time.Time) (bool, error) {
	query := `
		UPDATE withdrawals
		SET status = $1, processed_by = $2, processed_at = $3
		WHERE id = $4 AND status = 'pending'
	`
	tag, err := r.db.Exec(ctx, query, status, adminID, processedAt, withdrawalID)
	if err != nil {
		zap.L().Error("can't update withdrawal status", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
