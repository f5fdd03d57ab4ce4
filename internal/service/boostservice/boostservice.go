// Package boostservice computes income multipliers. It is strictly
// read-only so the same calculation can back both the accrual job and
// real-time display.
package boostservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/monopolygame/monopolybot/internal/catalog"
	"github.com/monopolygame/monopolybot/internal/domain"
)

type PropertyRepo interface {
	ListByUser(ctx context.Context, userID int64) ([]domain.OwnedProperty, error)
}

type ServiceRepo interface {
	ListByUser(ctx context.Context, userID int64) ([]domain.OwnedService, error)
}

type Service struct {
	propertyRepo PropertyRepo
	serviceRepo  ServiceRepo
}

func New(propertyRepo PropertyRepo, serviceRepo ServiceRepo) *Service {
	return &Service{
		propertyRepo: propertyRepo,
		serviceRepo:  serviceRepo,
	}
}

// TotalBoost returns the multiplier (>= 1.0) applied to base hourly income
// for the user's properties of the given color:
//
//	(1 + servicesBoost) * (1 + colorCompletionBoost)
func (s *Service) TotalBoost(ctx context.Context, userID int64, color catalog.Color) (float64, error) {
	owned, err := s.serviceRepo.ListByUser(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch owned services for boost", zap.Error(err))
		return 0, err
	}
	servicesBoost := ServicesBoost(owned)

	props, err := s.propertyRepo.ListByUser(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch owned properties for boost", zap.Error(err))
		return 0, err
	}
	completionBoost := ColorCompletionBoost(props, color)

	return (1 + servicesBoost) * (1 + completionBoost), nil
}

// ServicesBoost sums the flat boosts of non-train services and adds the
// progressive bonus for the owned-train count.
func ServicesBoost(owned []domain.OwnedService) float64 {
	var boost float64
	var trains int
	for _, svc := range owned {
		entry, ok := catalog.ServiceByRawIndex(svc.ServiceIndex)
		if !ok {
			continue
		}
		if entry.Type == catalog.ServiceTrain {
			trains++
			continue
		}
		boost += entry.BoostPct
	}
	return boost + catalog.TrainBoost(trains)
}

// ColorCompletionBoost is zero unless the user owns every property of the
// color group. With the full set at level >= 3 the group's level-3 bonus
// applies; with the full set at level >= 4 the level-4 bonus replaces it.
func ColorCompletionBoost(owned []domain.OwnedProperty, color catalog.Color) float64 {
	members := catalog.PropertiesByColor(color)
	if len(members) == 0 {
		return 0
	}
	bonus, ok := catalog.CompletionBonusFor(color)
	if !ok {
		return 0
	}

	levels := make(map[int]int, len(owned))
	for _, p := range owned {
		levels[p.PropertyIndex] = p.Level
	}

	minLevel := catalog.MaxLevel
	for _, m := range members {
		level, ok := levels[int(m.Index)]
		if !ok {
			return 0
		}
		if level < minLevel {
			minLevel = level
		}
	}

	switch {
	case minLevel >= 4:
		return bonus.Level4
	case minLevel >= 3:
		return bonus.Level3
	default:
		return 0
	}
}
