// Package withdrawalservice handles withdrawal requests and their
// admin-driven settlement. Funds are held (debited) at request time; at
// most one pending withdrawal may exist per user.
package withdrawalservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/monopolygame/monopolybot/internal/domain"
	"github.com/monopolygame/monopolybot/internal/pg"
	"github.com/monopolygame/monopolybot/pkg/validate"
)

type WithdrawalRepo interface {
	Create(ctx context.Context, wd *domain.Withdrawal) (*domain.Withdrawal, error)
	GetByID(ctx context.Context, withdrawalID int64) (*domain.Withdrawal, error)
	GetPendingByUser(ctx context.Context, userID int64) (*domain.Withdrawal, error)
	GetLatestByUser(ctx context.Context, userID int64) (*domain.Withdrawal, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Withdrawal, error)
	MarkProcessed(ctx context.Context, withdrawalID, adminID int64, txHash string, processedAt time.Time) (bool, error)
	MarkStatus(ctx context.Context, withdrawalID, adminID int64, status domain.WithdrawalStatus, processedAt time.Time) (bool, error)
}

type Ledger interface {
	Debit(ctx context.Context, userID int64, amount domain.MC, txType domain.TransactionType, description string, metadata map[string]any) (domain.MC, error)
	Credit(ctx context.Context, userID int64, amount domain.MC, txType domain.TransactionType, description string, metadata map[string]any) (domain.MC, error)
}

var (
	ErrPendingWithdrawalExists = errors.New("pending withdrawal already exists")
	ErrUnsupportedCurrency     = errors.New("unsupported withdrawal currency")
	ErrInvalidWallet           = errors.New("invalid wallet address")
	ErrNotFound                = errors.New("withdrawal not found")
	ErrNotPending              = errors.New("withdrawal is not pending")
	ErrNotAuthorized           = errors.New("not authorized")
)

// MinWithdrawalError reports the configured minimum.
type MinWithdrawalError struct {
	Min domain.MC
}

func (e *MinWithdrawalError) Error() string {
	return fmt.Sprintf("withdrawal below minimum of %d MC", e.Min)
}

// CooldownError reports when the next withdrawal becomes possible.
type CooldownError struct {
	Until time.Time
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("withdrawal cooldown active until %s", e.Until.Format(time.RFC3339))
}

type Service struct {
	withdrawalRepo WithdrawalRepo
	ledger         Ledger
	txManager      pg.TXManager

	minAmount  domain.MC
	cooldown   time.Duration
	currencies map[string]struct{}
	admins     map[int64]struct{}
	now        func() time.Time
}

func New(withdrawalRepo WithdrawalRepo, ledger Ledger, txManager pg.TXManager, minAmount domain.MC, cooldown time.Duration, currencies []string, admins map[int64]struct{}) *Service {
	currencySet := make(map[string]struct{}, len(currencies))
	for _, c := range currencies {
		currencySet[c] = struct{}{}
	}
	return &Service{
		withdrawalRepo: withdrawalRepo,
		ledger:         ledger,
		txManager:      txManager,
		minAmount:      minAmount,
		cooldown:       cooldown,
		currencies:     currencySet,
		admins:         admins,
		now:            time.Now,
	}
}

// Create validates the request and atomically debits the balance while
// inserting the pending withdrawal. The cooldown is measured from the
// creation time of the user's latest withdrawal regardless of its status.
func (s *Service) Create(ctx context.Context, userID int64, amount domain.MC, currency, walletAddress string) (*domain.Withdrawal, error) {
	if amount < s.minAmount {
		return nil, &MinWithdrawalError{Min: s.minAmount}
	}
	if _, ok := s.currencies[currency]; !ok {
		return nil, ErrUnsupportedCurrency
	}
	if !validate.IsWalletAddress(walletAddress) {
		return nil, ErrInvalidWallet
	}

	pending, err := s.withdrawalRepo.GetPendingByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if pending != nil {
		return nil, ErrPendingWithdrawalExists
	}

	latest, err := s.withdrawalRepo.GetLatestByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if latest != nil {
		if until := latest.CreatedAt.Add(s.cooldown); s.now().Before(until) {
			return nil, &CooldownError{Until: until}
		}
	}

	wd := &domain.Withdrawal{
		UserID:        userID,
		AmountMC:      amount,
		Currency:      currency,
		WalletAddress: walletAddress,
		Status:        domain.WithdrawalPending,
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.ledger.Debit(ctx, userID, amount, domain.TxWithdrawal,
			fmt.Sprintf("withdrawal of %d MC to %s", amount, currency),
			map[string]any{"currency": currency}); err != nil {
			return err
		}
		_, err := s.withdrawalRepo.Create(ctx, wd)
		return err
	})
	if err != nil {
		return nil, err
	}
	return wd, nil
}

// History returns the user's withdrawals, newest first.
func (s *Service) History(ctx context.Context, userID int64) ([]domain.Withdrawal, error) {
	return s.withdrawalRepo.ListByUser(ctx, userID)
}

// Process settles a pending withdrawal, recording the on-chain transaction
// hash and the acting admin.
func (s *Service) Process(ctx context.Context, adminID, withdrawalID int64, txHash string) error {
	if err := s.authorize(adminID); err != nil {
		return err
	}

	transitioned, err := s.withdrawalRepo.MarkProcessed(ctx, withdrawalID, adminID, txHash, s.now())
	if err != nil {
		return err
	}
	if !transitioned {
		return s.notPending(ctx, withdrawalID)
	}

	zap.L().Info("Withdrawal processed",
		zap.Int64("withdrawalID", withdrawalID),
		zap.Int64("adminID", adminID),
	)
	return nil
}

// Cancel closes a pending withdrawal without returning funds.
func (s *Service) Cancel(ctx context.Context, adminID, withdrawalID int64) error {
	if err := s.authorize(adminID); err != nil {
		return err
	}

	transitioned, err := s.withdrawalRepo.MarkStatus(ctx, withdrawalID, adminID, domain.WithdrawalCancelled, s.now())
	if err != nil {
		return err
	}
	if !transitioned {
		return s.notPending(ctx, withdrawalID)
	}
	return nil
}

// Refund closes a pending withdrawal and credits the held amount back.
func (s *Service) Refund(ctx context.Context, adminID, withdrawalID int64) error {
	if err := s.authorize(adminID); err != nil {
		return err
	}

	wd, err := s.withdrawalRepo.GetByID(ctx, withdrawalID)
	if err != nil {
		return err
	}
	if wd == nil {
		return ErrNotFound
	}

	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		transitioned, err := s.withdrawalRepo.MarkStatus(ctx, withdrawalID, adminID, domain.WithdrawalRefunded, s.now())
		if err != nil {
			return err
		}
		if !transitioned {
			return ErrNotPending
		}
		_, err = s.ledger.Credit(ctx, wd.UserID, wd.AmountMC, domain.TxWithdrawalRefund,
			fmt.Sprintf("refund of withdrawal %d", withdrawalID),
			map[string]any{"withdrawal_id": withdrawalID})
		return err
	})
}

func (s *Service) authorize(adminID int64) error {
	if _, ok := s.admins[adminID]; !ok {
		return ErrNotAuthorized
	}
	return nil
}

func (s *Service) notPending(ctx context.Context, withdrawalID int64) error {
	wd, err := s.withdrawalRepo.GetByID(ctx, withdrawalID)
	if err != nil {
		return err
	}
	if wd == nil {
		return ErrNotFound
	}
	return fmt.Errorf("%w: status is %s", ErrNotPending, wd.Status)
}
