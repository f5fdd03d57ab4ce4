// Package depositservice owns the deposit lifecycle: creation against the
// payment provider, signed webhook ingestion, and the polling reconciler.
// Both ingestion paths converge on the same status transition logic;
// terminal statuses are never mutated again.
package depositservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/monopolygame/monopolybot/internal/domain"
	"github.com/monopolygame/monopolybot/internal/pg"
	"github.com/monopolygame/monopolybot/pkg/metrics"
	"github.com/monopolygame/monopolybot/pkg/payment"
)

const (
	// amountToleranceUSD absorbs provider-side rounding of the requested
	// USD amount.
	amountToleranceUSD = 0.01
	// minPaidRatio tolerates network-fee rounding while rejecting
	// materially short payments.
	minPaidRatio = 0.95

	pendingBatchLimit = 500
)

type DepositRepo interface {
	Create(ctx context.Context, dep *domain.Deposit) (*domain.Deposit, error)
	GetByOrderID(ctx context.Context, orderID string) (*domain.Deposit, error)
	ListPending(ctx context.Context, limit uint32) ([]domain.Deposit, error)
	MarkPaid(ctx context.Context, depositID int64, paidAt time.Time) (bool, error)
	MarkStatus(ctx context.Context, depositID int64, status domain.DepositStatus) (bool, error)
}

type UserRepo interface {
	GetByID(ctx context.Context, userID int64) (*domain.User, error)
}

type Ledger interface {
	Credit(ctx context.Context, userID int64, amount domain.MC, txType domain.TransactionType, description string, metadata map[string]any) (domain.MC, error)
}

type PaymentClient interface {
	CreatePayment(ctx context.Context, req payment.CreatePaymentRequest) (*payment.Payment, error)
	PaymentStatus(ctx context.Context, paymentID string) (*payment.Payment, error)
	VerifyIPN(body []byte, signature string) error
}

var (
	ErrUnknownDeposit = errors.New("unknown deposit")
	ErrInvalidPayload = errors.New("invalid ipn payload")
	ErrAmountMismatch = errors.New("deposit amount mismatch")
	ErrUnderpaid      = errors.New("deposit underpaid")
)

// MinDepositError reports the configured minimum when a request is below it.
type MinDepositError struct {
	Min float64
}

func (e *MinDepositError) Error() string {
	return fmt.Sprintf("deposit below minimum of %.2f USD", e.Min)
}

type Service struct {
	depositRepo DepositRepo
	userRepo    UserRepo
	ledger      Ledger
	payClient   PaymentClient
	txManager   pg.TXManager

	rateMCPerUSD     int64
	minDepositUSD    float64
	referralBonusPct float64
	interval         time.Duration
	now              func() time.Time
}

func New(depositRepo DepositRepo, userRepo UserRepo, ledger Ledger, payClient PaymentClient, txManager pg.TXManager, rateMCPerUSD int64, minDepositUSD, referralBonusPct float64, interval time.Duration) *Service {
	return &Service{
		depositRepo:      depositRepo,
		userRepo:         userRepo,
		ledger:           ledger,
		payClient:        payClient,
		txManager:        txManager,
		rateMCPerUSD:     rateMCPerUSD,
		minDepositUSD:    minDepositUSD,
		referralBonusPct: referralBonusPct,
		interval:         interval,
		now:              time.Now,
	}
}

// CreateDeposit registers a payment with the provider and stores the
// pending deposit with its precomputed in-game amount.
func (s *Service) CreateDeposit(ctx context.Context, userID int64, amountUSD float64, payCurrency string) (*domain.Deposit, error) {
	if amountUSD < s.minDepositUSD {
		return nil, &MinDepositError{Min: s.minDepositUSD}
	}

	orderID := uuid.NewString()
	p, err := s.payClient.CreatePayment(ctx, payment.CreatePaymentRequest{
		PriceAmount:      amountUSD,
		PriceCurrency:    "usd",
		PayCurrency:      payCurrency,
		OrderID:          orderID,
		OrderDescription: fmt.Sprintf("balance top-up for user %d", userID),
	})
	if err != nil {
		zap.L().Error("failed to create provider payment", zap.Int64("userID", userID), zap.Error(err))
		return nil, err
	}

	dep := &domain.Deposit{
		UserID:      userID,
		AmountUSD:   amountUSD,
		AmountMC:    domain.MC(math.Round(amountUSD * float64(s.rateMCPerUSD))),
		PaymentID:   p.PaymentID,
		OrderID:     orderID,
		Status:      domain.DepositPending,
		PayAddress:  p.PayAddress,
		PayAmount:   p.PayAmount,
		PayCurrency: p.PayCurrency,
		PaymentURL:  p.PaymentURL,
	}
	return s.depositRepo.Create(ctx, dep)
}

// HandleIPN verifies and applies a provider webhook notification.
func (s *Service) HandleIPN(ctx context.Context, body []byte, signature string) error {
	if err := s.payClient.VerifyIPN(body, signature); err != nil {
		metrics.IPNRejected.WithLabelValues("signature").Inc()
		return err
	}

	var p payment.Payment
	if err := json.Unmarshal(body, &p); err != nil {
		metrics.IPNRejected.WithLabelValues("payload").Inc()
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if p.PaymentID == "" || p.PaymentStatus == "" || p.OrderID == "" {
		metrics.IPNRejected.WithLabelValues("payload").Inc()
		return ErrInvalidPayload
	}

	dep, err := s.depositRepo.GetByOrderID(ctx, p.OrderID)
	if err != nil {
		return err
	}
	if dep == nil {
		metrics.IPNRejected.WithLabelValues("unknown_order").Inc()
		return fmt.Errorf("%w: order %s", ErrUnknownDeposit, p.OrderID)
	}

	return s.applyUpdate(ctx, dep, &p)
}

// Start launches the polling reconciliation loop, the fallback path for
// notifications that never arrive.
func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Deposit reconciler started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping deposit reconciler")
			return
		case <-ticker.C:
			s.Reconcile(ctx)
		}
	}
}

// Reconcile polls the provider for every still-pending deposit and feeds
// the result through the same transition logic as the webhook path.
func (s *Service) Reconcile(ctx context.Context) {
	deps, err := s.depositRepo.ListPending(ctx, pendingBatchLimit)
	if err != nil {
		zap.L().Error("Failed to fetch pending deposits", zap.Error(err))
		return
	}

	for _, dep := range deps {
		dep := dep
		if dep.PaymentID == "" {
			continue
		}
		p, err := s.payClient.PaymentStatus(ctx, dep.PaymentID)
		if err != nil {
			zap.L().Warn("Failed to poll payment status",
				zap.String("paymentID", dep.PaymentID),
				zap.Error(err),
			)
			continue
		}
		if err := s.applyUpdate(ctx, &dep, p); err != nil {
			zap.L().Error("Failed to reconcile deposit",
				zap.Int64("depositID", dep.ID),
				zap.String("orderID", dep.OrderID),
				zap.Error(err),
			)
		}
	}
}

// mapStatus translates a provider status into a deposit transition. The
// second result is false while the payment is still in flight.
func mapStatus(providerStatus string) (domain.DepositStatus, bool) {
	switch providerStatus {
	case payment.StatusFinished, payment.StatusConfirmed:
		return domain.DepositPaid, true
	case payment.StatusFailed, payment.StatusRefunded:
		return domain.DepositFailed, true
	case payment.StatusExpired:
		return domain.DepositExpired, true
	default:
		return "", false
	}
}

func (s *Service) applyUpdate(ctx context.Context, dep *domain.Deposit, p *payment.Payment) error {
	// Re-delivery for an already terminal deposit is a no-op, not an error.
	if dep.Status.Terminal() {
		return nil
	}

	target, ok := mapStatus(p.PaymentStatus)
	if !ok {
		return nil
	}

	if target != domain.DepositPaid {
		if _, err := s.depositRepo.MarkStatus(ctx, dep.ID, target); err != nil {
			return err
		}
		zap.L().Info("Deposit closed without payment",
			zap.Int64("depositID", dep.ID),
			zap.String("orderID", dep.OrderID),
			zap.String("status", string(target)),
		)
		return nil
	}

	if math.Abs(p.PriceAmount-dep.AmountUSD) > amountToleranceUSD {
		metrics.IPNRejected.WithLabelValues("amount_mismatch").Inc()
		return fmt.Errorf("%w: expected %.2f USD, reported %.2f USD (order %s)", ErrAmountMismatch, dep.AmountUSD, p.PriceAmount, dep.OrderID)
	}
	expectedPay := p.PayAmount
	if expectedPay == 0 {
		expectedPay = dep.PayAmount
	}
	if expectedPay > 0 && p.ActuallyPaid < expectedPay*minPaidRatio {
		metrics.IPNRejected.WithLabelValues("underpaid").Inc()
		return fmt.Errorf("%w: paid %.8f of %.8f %s (order %s)", ErrUnderpaid, p.ActuallyPaid, expectedPay, dep.PayCurrency, dep.OrderID)
	}

	return s.markPaid(ctx, dep)
}

// markPaid is the only path by which external money becomes in-game
// currency: status flip, balance credit and the audit row commit together,
// and a lost race on the status flip just means someone else already
// credited it.
func (s *Service) markPaid(ctx context.Context, dep *domain.Deposit) error {
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		transitioned, err := s.depositRepo.MarkPaid(ctx, dep.ID, s.now())
		if err != nil {
			return err
		}
		if !transitioned {
			return nil
		}

		meta := map[string]any{"deposit_id": dep.ID, "order_id": dep.OrderID}
		if _, err := s.ledger.Credit(ctx, dep.UserID, dep.AmountMC, domain.TxDeposit,
			fmt.Sprintf("deposit of %.2f USD", dep.AmountUSD), meta); err != nil {
			return err
		}

		return s.creditReferrer(ctx, dep)
	})
	if err != nil {
		return err
	}

	metrics.DepositsCredited.Inc()
	zap.L().Info("Deposit credited",
		zap.Int64("depositID", dep.ID),
		zap.Int64("userID", dep.UserID),
		zap.Int64("amountMC", int64(dep.AmountMC)),
	)
	return nil
}

func (s *Service) creditReferrer(ctx context.Context, dep *domain.Deposit) error {
	if s.referralBonusPct <= 0 {
		return nil
	}
	user, err := s.userRepo.GetByID(ctx, dep.UserID)
	if err != nil {
		return err
	}
	if user == nil || user.ReferrerID == nil {
		return nil
	}
	bonus := domain.MC(math.Floor(float64(dep.AmountMC) * s.referralBonusPct))
	if bonus < 1 {
		return nil
	}
	_, err = s.ledger.Credit(ctx, *user.ReferrerID, bonus, domain.TxReferralBonus,
		fmt.Sprintf("referral bonus for deposit by user %d", dep.UserID),
		map[string]any{"deposit_id": dep.ID, "referred_user_id": dep.UserID})
	return err
}
