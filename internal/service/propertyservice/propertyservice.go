// Package propertyservice implements the buy, upgrade and claim protocols
// on top of the ledger primitives.
package propertyservice

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/monopolygame/monopolybot/internal/catalog"
	"github.com/monopolygame/monopolybot/internal/domain"
	"github.com/monopolygame/monopolybot/internal/earnings"
	"github.com/monopolygame/monopolybot/internal/pg"
)

type PropertyRepo interface {
	Create(ctx context.Context, prop *domain.OwnedProperty) (*domain.OwnedProperty, error)
	GetByUserAndIndex(ctx context.Context, userID int64, propertyIndex int) (*domain.OwnedProperty, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.OwnedProperty, error)
	UpdateLevel(ctx context.Context, propertyID int64, level, fromLevel int) (bool, error)
	ResetAccrual(ctx context.Context, propertyID int64, expectedGeneratedAt, claimedAt time.Time) (bool, error)
}

type ServiceRepo interface {
	Create(ctx context.Context, svc *domain.OwnedService) (*domain.OwnedService, error)
	GetByUserAndIndex(ctx context.Context, userID int64, serviceIndex int) (*domain.OwnedService, error)
}

type Ledger interface {
	Debit(ctx context.Context, userID int64, amount domain.MC, txType domain.TransactionType, description string, metadata map[string]any) (domain.MC, error)
	Credit(ctx context.Context, userID int64, amount domain.MC, txType domain.TransactionType, description string, metadata map[string]any) (domain.MC, error)
}

type BoostCalculator interface {
	TotalBoost(ctx context.Context, userID int64, color catalog.Color) (float64, error)
}

var (
	ErrAlreadyOwned         = errors.New("already owned")
	ErrNotOwned             = errors.New("property not owned")
	ErrStarterNotUpgradable = errors.New("starter property can't be upgraded")
	ErrMaxLevel             = errors.New("property already at max level")
	ErrNothingToClaim       = errors.New("nothing to claim")
	ErrConflict             = errors.New("property changed concurrently, try again")
)

// UpgradeRequirementError reports why the level-4 upgrade precondition
// failed: how many color-group members the user does not own and how many
// owned members are still under level 3.
type UpgradeRequirementError struct {
	Color        catalog.Color
	Missing      int
	UnderLeveled int
}

func (e *UpgradeRequirementError) Error() string {
	return fmt.Sprintf("color group %s incomplete: %d missing, %d under level 3", e.Color, e.Missing, e.UnderLeveled)
}

type Service struct {
	propertyRepo PropertyRepo
	serviceRepo  ServiceRepo
	ledger       Ledger
	boost        BoostCalculator
	txManager    pg.TXManager
	now          func() time.Time
}

func New(propertyRepo PropertyRepo, serviceRepo ServiceRepo, ledger Ledger, boost BoostCalculator, txManager pg.TXManager) *Service {
	return &Service{
		propertyRepo: propertyRepo,
		serviceRepo:  serviceRepo,
		ledger:       ledger,
		boost:        boost,
		txManager:    txManager,
		now:          time.Now,
	}
}

// BuyProperty debits the level-1 cost and creates the ownership row with a
// zeroed accrual baseline. A zero cost (the starter property) skips the
// debit but still creates the row.
func (s *Service) BuyProperty(ctx context.Context, userID int64, propertyIndex int) (*domain.OwnedProperty, error) {
	idx, err := catalog.NewPropertyIndex(propertyIndex)
	if err != nil {
		return nil, err
	}
	entry := catalog.PropertyByIndex(idx)

	existing, err := s.propertyRepo.GetByUserAndIndex(ctx, userID, propertyIndex)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyOwned
	}

	cost := entry.Costs[0]
	prop := &domain.OwnedProperty{
		UserID:        userID,
		PropertyIndex: propertyIndex,
		Level:         1,
		PurchasedAt:   s.now(),
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if cost > 0 {
			if _, err := s.ledger.Debit(ctx, userID, cost, domain.TxPurchase, "property purchase: "+entry.Name, map[string]any{"property_index": propertyIndex}); err != nil {
				return err
			}
		}
		_, err := s.propertyRepo.Create(ctx, prop)
		return err
	})
	if err != nil {
		return nil, err
	}
	return prop, nil
}

// BuyService debits the service cost and creates the ownership row.
func (s *Service) BuyService(ctx context.Context, userID int64, serviceIndex int) (*domain.OwnedService, error) {
	idx, err := catalog.NewServiceIndex(serviceIndex)
	if err != nil {
		return nil, err
	}
	entry := catalog.ServiceByIndex(idx)

	existing, err := s.serviceRepo.GetByUserAndIndex(ctx, userID, serviceIndex)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyOwned
	}

	svc := &domain.OwnedService{
		UserID:       userID,
		ServiceIndex: serviceIndex,
		PurchasedAt:  s.now(),
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if entry.Cost > 0 {
			if _, err := s.ledger.Debit(ctx, userID, entry.Cost, domain.TxPurchase, "service purchase: "+entry.Name, map[string]any{"service_index": serviceIndex}); err != nil {
				return err
			}
		}
		_, err := s.serviceRepo.Create(ctx, svc)
		return err
	})
	if err != nil {
		return nil, err
	}
	return svc, nil
}

// Upgrade advances the property by exactly one level for the incremental
// cost. The level-3 to level-4 step additionally requires the full color
// group at level >= 3, mirroring the completion-bonus precondition.
func (s *Service) Upgrade(ctx context.Context, userID int64, propertyIndex int) (*domain.OwnedProperty, error) {
	idx, err := catalog.NewPropertyIndex(propertyIndex)
	if err != nil {
		return nil, err
	}
	if idx == catalog.StarterPropertyIndex {
		return nil, ErrStarterNotUpgradable
	}
	entry := catalog.PropertyByIndex(idx)

	prop, err := s.propertyRepo.GetByUserAndIndex(ctx, userID, propertyIndex)
	if err != nil {
		return nil, err
	}
	if prop == nil {
		return nil, ErrNotOwned
	}
	if prop.Level >= catalog.MaxLevel {
		return nil, ErrMaxLevel
	}

	nextLevel := prop.Level + 1
	if nextLevel == catalog.MaxLevel {
		if err := s.checkColorSet(ctx, userID, entry.Color); err != nil {
			return nil, err
		}
	}

	cost := entry.Costs[nextLevel-1] - entry.Costs[prop.Level-1]

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.ledger.Debit(ctx, userID, cost, domain.TxUpgrade,
			fmt.Sprintf("upgrade %s to level %d", entry.Name, nextLevel),
			map[string]any{"property_index": propertyIndex, "level": nextLevel},
		); err != nil {
			return err
		}
		updated, err := s.propertyRepo.UpdateLevel(ctx, prop.ID, nextLevel, prop.Level)
		if err != nil {
			return err
		}
		if !updated {
			// The level moved under us; the rollback undoes the debit.
			return ErrConflict
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	prop.Level = nextLevel
	return prop, nil
}

func (s *Service) checkColorSet(ctx context.Context, userID int64, color catalog.Color) error {
	owned, err := s.propertyRepo.ListByUser(ctx, userID)
	if err != nil {
		return err
	}
	levels := make(map[int]int, len(owned))
	for _, p := range owned {
		levels[p.PropertyIndex] = p.Level
	}

	var missing, underLeveled int
	for _, m := range catalog.PropertiesByColor(color) {
		level, ok := levels[int(m.Index)]
		if !ok {
			missing++
			continue
		}
		if level < 3 {
			underLeveled++
		}
	}
	if missing > 0 || underLeveled > 0 {
		return &UpgradeRequirementError{Color: color, Missing: missing, UnderLeveled: underLeveled}
	}
	return nil
}

// Claim finalizes any accrual pending since the last generation point, then
// atomically zeroes the accumulator and credits the spendable balance. The
// fractional part below one whole MC is forfeited with the reset. The reset
// is conditional on the accrual point the total was computed from, so a
// concurrent claim or accrual pass fails with ErrConflict instead of
// crediting the same earnings twice.
func (s *Service) Claim(ctx context.Context, userID int64, propertyIndex int) (domain.MC, error) {
	if _, err := catalog.NewPropertyIndex(propertyIndex); err != nil {
		return 0, err
	}

	prop, err := s.propertyRepo.GetByUserAndIndex(ctx, userID, propertyIndex)
	if err != nil {
		return 0, err
	}
	if prop == nil {
		return 0, ErrNotOwned
	}

	now := s.now()
	total := prop.AccumulatedMC
	entry, ok := catalog.PropertyByRawIndex(prop.PropertyIndex)
	if ok {
		if income, ok := entry.IncomeAt(prop.Level); ok {
			boost, err := s.boost.TotalBoost(ctx, userID, entry.Color)
			if err != nil {
				return 0, err
			}
			total += earnings.Earned(income, boost, now.Sub(prop.LastGeneratedAt))
		}
	}

	amount := domain.MC(math.Floor(total))
	if amount < 1 {
		return 0, ErrNothingToClaim
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		reset, err := s.propertyRepo.ResetAccrual(ctx, prop.ID, prop.LastGeneratedAt, now)
		if err != nil {
			return err
		}
		if !reset {
			return ErrConflict
		}
		_, err = s.ledger.Credit(ctx, userID, amount, domain.TxClaim, "claim earnings: "+entry.Name, map[string]any{"property_index": propertyIndex})
		return err
	})
	if err != nil {
		zap.L().Error("failed to claim earnings", zap.Int64("userID", userID), zap.Error(err))
		return 0, err
	}
	return amount, nil
}
