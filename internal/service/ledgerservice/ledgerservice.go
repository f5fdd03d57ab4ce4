// Package ledgerservice is the single gate for balance mutations. Every
// debit or credit runs in one store transaction together with exactly one
// append-only audit record, so a balance can never go negative and never
// change without a matching transaction row.
package ledgerservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/monopolygame/monopolybot/internal/domain"
	"github.com/monopolygame/monopolybot/internal/pg"
)

type UserRepo interface {
	GetByID(ctx context.Context, userID int64) (*domain.User, error)
	DebitBalance(ctx context.Context, userID int64, amount domain.MC) (domain.MC, error)
	CreditBalance(ctx context.Context, userID int64, amount domain.MC) (domain.MC, error)
}

type TransactionRepo interface {
	Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error)
}

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrNonPositiveAmount = errors.New("amount must be positive")
)

// InsufficientBalanceError reports exactly how much is missing so callers
// can surface an actionable shortfall.
type InsufficientBalanceError struct {
	Needed domain.MC
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: %d MC more needed", e.Needed)
}

type Service struct {
	userRepo  UserRepo
	txRepo    TransactionRepo
	txManager pg.TXManager
}

func New(userRepo UserRepo, txRepo TransactionRepo, txManager pg.TXManager) *Service {
	return &Service{
		userRepo:  userRepo,
		txRepo:    txRepo,
		txManager: txManager,
	}
}

// Debit atomically checks funds, decrements the balance and appends the
// audit row. Insufficient funds is a normal outcome carried as
// *InsufficientBalanceError; nothing is mutated in that case.
func (s *Service) Debit(ctx context.Context, userID int64, amount domain.MC, txType domain.TransactionType, description string, metadata map[string]any) (domain.MC, error) {
	if amount <= 0 {
		return 0, ErrNonPositiveAmount
	}

	var newBalance domain.MC
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		balance, err := s.userRepo.DebitBalance(ctx, userID, amount)
		if err != nil {
			if !errors.Is(err, pgx.ErrNoRows) {
				return err
			}
			// The conditional update matched no row: either the user is
			// unknown or the balance is short.
			user, err := s.userRepo.GetByID(ctx, userID)
			if err != nil {
				return err
			}
			if user == nil {
				return ErrUserNotFound
			}
			return &InsufficientBalanceError{Needed: amount - user.Balance}
		}
		newBalance = balance

		_, err = s.txRepo.Create(ctx, &domain.Transaction{
			UserID:      userID,
			Type:        txType,
			Amount:      -amount,
			Description: description,
			Metadata:    metadata,
		})
		return err
	})
	if err != nil {
		return 0, err
	}
	return newBalance, nil
}

// Credit atomically increments the balance and appends the audit row.
func (s *Service) Credit(ctx context.Context, userID int64, amount domain.MC, txType domain.TransactionType, description string, metadata map[string]any) (domain.MC, error) {
	if amount <= 0 {
		return 0, ErrNonPositiveAmount
	}

	var newBalance domain.MC
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		balance, err := s.userRepo.CreditBalance(ctx, userID, amount)
		if err != nil {
			return err
		}
		newBalance = balance

		_, err = s.txRepo.Create(ctx, &domain.Transaction{
			UserID:      userID,
			Type:        txType,
			Amount:      amount,
			Description: description,
			Metadata:    metadata,
		})
		return err
	})
	if err != nil {
		zap.L().Error("failed to credit balance", zap.Int64("userID", userID), zap.Error(err))
		return 0, err
	}
	return newBalance, nil
}
