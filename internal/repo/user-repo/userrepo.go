package userrepo

import (
	"context"

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

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (id, balance, referral_code, referrer_id, language)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO NOTHING
		RETURNING created_at
	`
	err := repo.db.QueryRow(ctx, query, user.ID, user.Balance, user.ReferralCode, user.ReferrerID, user.Language).Scan(&user.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) GetByID(ctx context.Context, userID int64) (*domain.User, error) {
	var user domain.User
	query := `
		SELECT id, balance, referral_code, referrer_id, language, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	err := repo.db.QueryRow(ctx, query, userID).Scan(
		&user.ID, &user.Balance, &user.ReferralCode, &user.ReferrerID, &user.Language, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) GetByReferralCode(ctx context.Context, code string) (*domain.User, error) {
	var user domain.User
	query := `
		SELECT id, balance, referral_code, referrer_id, language, created_at, updated_at
		FROM users
		WHERE referral_code = $1
	`
	err := repo.db.QueryRow(ctx, query, code).Scan(
		&user.ID, &user.Balance, &user.ReferralCode, &user.ReferrerID, &user.Language, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user by referral code", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

// DebitBalance decrements the balance only when funds suffice; the balance
// row update serializes concurrent debits. Returns pgx.ErrNoRows when the
// condition fails.
func (repo *Repository) DebitBalance(ctx context.Context, userID int64, amount domain.MC) (domain.MC, error) {
	var newBalance domain.MC
	query := `
		UPDATE users
		SET balance = balance - $1, updated_at = now()
		WHERE id = $2 AND balance >= $1
		RETURNING balance
	`
	err := repo.db.QueryRow(ctx, query, amount, userID).Scan(&newBalance)
	if err != nil {
		if err == pgx.ErrNoRows {
			return 0, err
		}
		zap.L().Error("can't debit balance", zap.Error(err))
		return 0, err
	}
	return newBalance, nil
}

func (repo *Repository) CreditBalance(ctx context.Context, userID int64, amount domain.MC) (domain.MC, error) {
	var newBalance domain.MC
	query := `
		UPDATE users
		SET balance = balance + $1, updated_at = now()
		WHERE id = $2
		RETURNING balance
	`
	err := repo.db.QueryRow(ctx, query, amount, userID).Scan(&newBalance)
	if err != nil {
		zap.L().Error("can't credit balance", zap.Error(err))
		return 0, err
	}
	return newBalance, nil
}

func (repo *Repository) SetLanguage(ctx context.Context, userID int64, language string) error {
	query := `
		UPDATE users
		SET language = $1, updated_at = now()
		WHERE id = $2
	`
	if _, err := repo.db.Exec(ctx, query, language, userID); err != nil {
		zap.L().Error("can't set user language", zap.Error(err))
		return err
	}
	return nil
}
