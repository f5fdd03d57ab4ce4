// Package earnings runs the periodic passive-income accrual over all owned
// properties. Accrual is a valuation update, not a balance movement: no
// transaction rows are written here, only at claim time.
package earnings

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/monopolygame/monopolybot/internal/catalog"
	"github.com/monopolygame/monopolybot/internal/domain"
	"github.com/monopolygame/monopolybot/pkg/metrics"
)

// minElapsed is the accrual skip threshold: rows touched less than a minute
// ago are left alone to avoid write amplification.
const minElapsed = time.Minute

var processingProperties sync.Map

// Earned returns the income accrued over whole elapsed minutes. Sub-minute
// remainders are forfeited, matching the skip threshold.
func Earned(hourlyIncome, boost float64, elapsed time.Duration) float64 {
	minutes := int64(elapsed / time.Minute)
	if minutes < 1 {
		return 0
	}
	return hourlyIncome * boost / 60 * float64(minutes)
}

type PropertyRepo interface {
	ListDue(ctx context.Context, cutoff time.Time, limit uint32) ([]domain.OwnedProperty, error)
	ApplyEarnings(ctx context.Context, propertyID int64, earnings float64, generatedAt time.Time) error
}

type BoostCalculator interface {
	TotalBoost(ctx context.Context, userID int64, color catalog.Color) (float64, error)
}

type Engine struct {
	propertyRepo PropertyRepo
	boost        BoostCalculator
	limit        uint32
	workerPool   WorkerPoolI
	interval     time.Duration
	now          func() time.Time
}

func New(propertyRepo PropertyRepo, boost BoostCalculator, interval time.Duration) *Engine {
	return &Engine{
		propertyRepo: propertyRepo,
		boost:        boost,
		limit:        1000,
		workerPool:   NewWorkerPool(10),
		interval:     interval,
		now:          time.Now,
	}
}

func (e *Engine) Start(ctx context.Context) {
	zap.L().Info("Earnings engine started")
	go e.run(ctx)
}

func (e *Engine) run(ctx context.Context) {
	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping earnings engine")
			return
		case <-ticker.C:
			e.ProcessBatch(ctx)
		}
	}
}

// ProcessBatch accrues income for every due property. A failing row is
// logged and skipped; it never aborts the rest of the batch.
func (e *Engine) ProcessBatch(ctx context.Context) {
	metrics.EarningsRuns.Inc()

	cutoff := e.now().Add(-minElapsed)
	props, err := e.propertyRepo.ListDue(ctx, cutoff, atomic.LoadUint32(&e.limit))
	if err != nil {
		zap.L().Error("Failed to fetch properties for accrual", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, prop := range props {
		prop := prop

		if _, loaded := processingProperties.LoadOrStore(prop.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := e.workerPool.AddTask(ctx, func() error {
				defer processingProperties.Delete(prop.ID)
				if err := e.accrueProperty(ctx, prop); err != nil {
					zap.L().Error("Failed to accrue property",
						zap.Int64("propertyID", prop.ID),
						zap.Int64("userID", prop.UserID),
						zap.Error(err),
					)
				}
				return nil
			})
			if err != nil {
				processingProperties.Delete(prop.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error dispatching accrual tasks", zap.Error(err))
	}
}

func (e *Engine) accrueProperty(ctx context.Context, prop domain.OwnedProperty) error {
	now := e.now()
	elapsed := now.Sub(prop.LastGeneratedAt)
	if elapsed < minElapsed {
		return nil
	}

	entry, ok := catalog.PropertyByRawIndex(prop.PropertyIndex)
	if !ok {
		zap.L().Warn("Owned property missing from catalog, skipping",
			zap.Int64("propertyID", prop.ID),
			zap.Int("propertyIndex", prop.PropertyIndex),
		)
		return nil
	}
	income, ok := entry.IncomeAt(prop.Level)
	if !ok {
		zap.L().Warn("Owned property has invalid level, skipping",
			zap.Int64("propertyID", prop.ID),
			zap.Int("level", prop.Level),
		)
		return nil
	}

	boost, err := e.boost.TotalBoost(ctx, prop.UserID, entry.Color)
	if err != nil {
		return err
	}

	earned := Earned(income, boost, elapsed)
	if earned <= 0 {
		return nil
	}

	if err := e.propertyRepo.ApplyEarnings(ctx, prop.ID, earned, now); err != nil {
		return err
	}
	metrics.PropertiesAccrued.Inc()
	return nil
}
