package userservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/monopolygame/monopolybot/internal/catalog"
	"github.com/monopolygame/monopolybot/internal/domain"
	"github.com/monopolygame/monopolybot/internal/pg"
)

func NewMock(t *testing.T) (*Service, *MockUserRepo, *MockPropertyBuyer) {
	ctrl := gomock.NewController(t)
	userRepo := NewMockUserRepo(ctrl)
	properties := NewMockPropertyBuyer(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()
	service := New(userRepo, properties, txManager)
	return service, userRepo, properties
}

func TestRegister(t *testing.T) {
	service, userRepo, properties := NewMock(t)

	referrer := &domain.User{ID: 99, ReferralCode: "ref99"}

	tests := []struct {
		name          string
		referralCode  string
		prepareMock   func()
		check         func(t *testing.T, user *domain.User)
		expectedError error
	}{
		{
			name: "New user gets the starter property",
			prepareMock: func() {
				userRepo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(nil, nil)
				userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, user *domain.User) (*domain.User, error) {
						assert.Len(t, user.ReferralCode, 10)
						return user, nil
					})
				properties.EXPECT().BuyProperty(gomock.Any(), int64(1), catalog.StarterPropertyIndex).Return(&domain.OwnedProperty{ID: 1}, nil)
			},
			check: func(t *testing.T, user *domain.User) {
				assert.Nil(t, user.ReferrerID)
			},
		},
		{
			name:         "Referral code links the referrer",
			referralCode: "ref99",
			prepareMock: func() {
				userRepo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(nil, nil)
				userRepo.EXPECT().GetByReferralCode(gomock.Any(), "ref99").Return(referrer, nil)
				userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, user *domain.User) (*domain.User, error) {
						return user, nil
					})
				properties.EXPECT().BuyProperty(gomock.Any(), int64(1), catalog.StarterPropertyIndex).Return(&domain.OwnedProperty{ID: 1}, nil)
			},
			check: func(t *testing.T, user *domain.User) {
				if assert.NotNil(t, user.ReferrerID) {
					assert.Equal(t, int64(99), *user.ReferrerID)
				}
			},
		},
		{
			name:         "Unknown referral code is ignored",
			referralCode: "nope",
			prepareMock: func() {
				userRepo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(nil, nil)
				userRepo.EXPECT().GetByReferralCode(gomock.Any(), "nope").Return(nil, nil)
				userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, user *domain.User) (*domain.User, error) {
						return user, nil
					})
				properties.EXPECT().BuyProperty(gomock.Any(), int64(1), catalog.StarterPropertyIndex).Return(&domain.OwnedProperty{ID: 1}, nil)
			},
			check: func(t *testing.T, user *domain.User) {
				assert.Nil(t, user.ReferrerID)
			},
		},
		{
			name: "Existing user is returned unchanged",
			prepareMock: func() {
				userRepo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&domain.User{ID: 1, Balance: 500}, nil)
			},
			check: func(t *testing.T, user *domain.User) {
				assert.Equal(t, domain.MC(500), user.Balance)
			},
		},
		{
			name: "Lost insert race skips the starter grant",
			prepareMock: func() {
				userRepo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(nil, nil)
				userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, nil)
			},
		},
		{
			name: "Starter grant failure rolls back",
			prepareMock: func() {
				userRepo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(nil, nil)
				userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, user *domain.User) (*domain.User, error) {
						return user, nil
					})
				properties.EXPECT().BuyProperty(gomock.Any(), int64(1), catalog.StarterPropertyIndex).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.Register(context.Background(), 1, tt.referralCode)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				return
			}
			assert.NoError(t, err)
			if tt.check != nil {
				tt.check(t, user)
			}
		})
	}
}

func TestSelfReferralIsIgnored(t *testing.T) {
	service, userRepo, properties := NewMock(t)

	userRepo.EXPECT().GetByID(gomock.Any(), int64(99)).Return(nil, nil)
	userRepo.EXPECT().GetByReferralCode(gomock.Any(), "ref99").Return(&domain.User{ID: 99, ReferralCode: "ref99"}, nil)
	userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, user *domain.User) (*domain.User, error) {
			return user, nil
		})
	properties.EXPECT().BuyProperty(gomock.Any(), int64(99), catalog.StarterPropertyIndex).Return(&domain.OwnedProperty{ID: 1}, nil)

	user, err := service.Register(context.Background(), 99, "ref99")
	assert.NoError(t, err)
	assert.Nil(t, user.ReferrerID)
}

func TestSetLanguage(t *testing.T) {
	service, userRepo, _ := NewMock(t)

	userRepo.EXPECT().SetLanguage(gomock.Any(), int64(1), "en").Return(nil)
	assert.NoError(t, service.SetLanguage(context.Background(), 1, "en"))
}
