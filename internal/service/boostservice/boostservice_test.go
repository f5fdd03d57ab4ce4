package boostservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/monopolygame/monopolybot/internal/catalog"
	"github.com/monopolygame/monopolybot/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockPropertyRepo, *MockServiceRepo) {
	ctrl := gomock.NewController(t)
	propertyRepo := NewMockPropertyRepo(ctrl)
	serviceRepo := NewMockServiceRepo(ctrl)
	service := New(propertyRepo, serviceRepo)
	return service, propertyRepo, serviceRepo
}

func ownedServices(indexes ...int) []domain.OwnedService {
	out := make([]domain.OwnedService, 0, len(indexes))
	for _, i := range indexes {
		out = append(out, domain.OwnedService{ServiceIndex: i})
	}
	return out
}

func TestServicesBoost(t *testing.T) {
	tests := []struct {
		name     string
		owned    []domain.OwnedService
		expected float64
	}{
		{
			name:     "No services",
			owned:    nil,
			expected: 0,
		},
		{
			name:     "Single train gives nothing",
			owned:    ownedServices(0),
			expected: 0,
		},
		{
			name:     "Two trains",
			owned:    ownedServices(0, 1),
			expected: 0.10,
		},
		{
			name:     "Three trains",
			owned:    ownedServices(0, 1, 2),
			expected: 0.20,
		},
		{
			name:     "All four trains",
			owned:    ownedServices(0, 1, 2, 3),
			expected: 0.35,
		},
		{
			name:     "Flat boosts sum",
			owned:    ownedServices(4, 6),
			expected: 0.15,
		},
		{
			name:     "Flat boosts plus train bonus",
			owned:    ownedServices(0, 1, 4, 8),
			expected: 0.35,
		},
		{
			name:     "Unknown index ignored",
			owned:    ownedServices(4, 99),
			expected: 0.05,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, ServicesBoost(tt.owned), 1e-9)
		})
	}
}

func TestColorCompletionBoost(t *testing.T) {
	set := func(levels ...int) []domain.OwnedProperty {
		// DarkBlue group is properties 20 and 21.
		out := make([]domain.OwnedProperty, 0, len(levels))
		for i, lvl := range levels {
			out = append(out, domain.OwnedProperty{PropertyIndex: 20 + i, Level: lvl})
		}
		return out
	}

	tests := []struct {
		name     string
		owned    []domain.OwnedProperty
		color    catalog.Color
		expected float64
	}{
		{
			name:     "Incomplete set gives nothing",
			owned:    set(4),
			color:    catalog.DarkBlue,
			expected: 0,
		},
		{
			name:     "Complete set below level three gives nothing",
			owned:    set(3, 2),
			color:    catalog.DarkBlue,
			expected: 0,
		},
		{
			name:     "Complete set at level three",
			owned:    set(3, 3),
			color:    catalog.DarkBlue,
			expected: 0.20,
		},
		{
			name:     "Level four supersedes level three",
			owned:    set(4, 4),
			color:    catalog.DarkBlue,
			expected: 0.40,
		},
		{
			name:     "Mixed levels use the minimum",
			owned:    set(4, 3),
			color:    catalog.DarkBlue,
			expected: 0.20,
		},
		{
			name:     "Unknown color gives nothing",
			owned:    set(4, 4),
			color:    catalog.Color("turquoise"),
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, ColorCompletionBoost(tt.owned, tt.color), 1e-9)
		})
	}
}

func TestTotalBoost(t *testing.T) {
	service, propertyRepo, serviceRepo := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		color         catalog.Color
		expected      float64
		expectedError error
	}{
		{
			name: "Multipliers combine",
			prepareMock: func() {
				serviceRepo.EXPECT().ListByUser(gomock.Any(), int64(1)).Return(ownedServices(0, 1), nil)
				propertyRepo.EXPECT().ListByUser(gomock.Any(), int64(1)).Return([]domain.OwnedProperty{
					{PropertyIndex: 20, Level: 4},
					{PropertyIndex: 21, Level: 4},
				}, nil)
			},
			color:    catalog.DarkBlue,
			expected: 1.10 * 1.40,
		},
		{
			name: "No boosts means multiplier of one",
			prepareMock: func() {
				serviceRepo.EXPECT().ListByUser(gomock.Any(), int64(1)).Return(nil, nil)
				propertyRepo.EXPECT().ListByUser(gomock.Any(), int64(1)).Return(nil, nil)
			},
			color:    catalog.Brown,
			expected: 1.0,
		},
		{
			name: "Service repo failure",
			prepareMock: func() {
				serviceRepo.EXPECT().ListByUser(gomock.Any(), int64(1)).Return(nil, errors.New("db error"))
			},
			color:         catalog.Brown,
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			got, err := service.TotalBoost(context.Background(), 1, tt.color)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.InDelta(t, tt.expected, got, 1e-9)
			}
		})
	}
}
