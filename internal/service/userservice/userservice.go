package userservice

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/monopolygame/monopolybot/internal/catalog"
	"github.com/monopolygame/monopolybot/internal/domain"
	"github.com/monopolygame/monopolybot/internal/pg"
)

type UserRepo interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, userID int64) (*domain.User, error)
	GetByReferralCode(ctx context.Context, code string) (*domain.User, error)
	SetLanguage(ctx context.Context, userID int64, language string) error
}

type PropertyBuyer interface {
	BuyProperty(ctx context.Context, userID int64, propertyIndex int) (*domain.OwnedProperty, error)
}

type Service struct {
	userRepo   UserRepo
	properties PropertyBuyer
	txManager  pg.TXManager
}

func New(userRepo UserRepo, properties PropertyBuyer, txManager pg.TXManager) *Service {
	return &Service{
		userRepo:   userRepo,
		properties: properties,
		txManager:  txManager,
	}
}

// Register creates the user on first contact and grants the free starter
// property. Re-registering an existing user returns it unchanged. The
// optional referral code links the new user to its referrer.
func (s *Service) Register(ctx context.Context, userID int64, referralCode string) (*domain.User, error) {
	existing, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	var referrerID *int64
	if code := strings.TrimSpace(referralCode); code != "" {
		referrer, err := s.userRepo.GetByReferralCode(ctx, code)
		if err != nil {
			return nil, err
		}
		if referrer != nil && referrer.ID != userID {
			referrerID = &referrer.ID
		}
	}

	user := &domain.User{
		ID:           userID,
		Balance:      0,
		ReferralCode: newReferralCode(),
		ReferrerID:   referrerID,
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		created, err := s.userRepo.Create(ctx, user)
		if err != nil {
			return err
		}
		if created == nil {
			// Lost a concurrent /start race; the other insert won.
			return nil
		}
		_, err = s.properties.BuyProperty(ctx, userID, catalog.StarterPropertyIndex)
		return err
	})
	if err != nil {
		zap.L().Error("failed to register user", zap.Int64("userID", userID), zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (s *Service) Get(ctx context.Context, userID int64) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func (s *Service) SetLanguage(ctx context.Context, userID int64, language string) error {
	return s.userRepo.SetLanguage(ctx, userID, language)
}

func newReferralCode() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:10]
}
