package earnings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/monopolygame/monopolybot/internal/catalog"
	"github.com/monopolygame/monopolybot/internal/domain"
)

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func NewMock(t *testing.T) (*Engine, *MockPropertyRepo, *MockBoostCalculator) {
	ctrl := gomock.NewController(t)
	propertyRepo := NewMockPropertyRepo(ctrl)
	boost := NewMockBoostCalculator(ctrl)
	engine := New(propertyRepo, boost, time.Minute)
	engine.now = func() time.Time { return fixedNow }
	return engine, propertyRepo, boost
}

func TestEarned(t *testing.T) {
	tests := []struct {
		name     string
		hourly   float64
		boost    float64
		elapsed  time.Duration
		expected float64
	}{
		{
			name:     "Half hour at base rate",
			hourly:   10,
			boost:    1.0,
			elapsed:  30 * time.Minute,
			expected: 5.0,
		},
		{
			name:     "Boost scales the rate",
			hourly:   10,
			boost:    1.5,
			elapsed:  60 * time.Minute,
			expected: 15.0,
		},
		{
			name:     "Sub-minute remainder is forfeited",
			hourly:   10,
			boost:    1.0,
			elapsed:  90 * time.Second,
			expected: 10.0 / 60,
		},
		{
			name:     "Under a minute earns nothing",
			hourly:   10,
			boost:    1.0,
			elapsed:  59 * time.Second,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Earned(tt.hourly, tt.boost, tt.elapsed), 1e-9)
		})
	}
}

func TestAccrueProperty(t *testing.T) {
	engine, propertyRepo, boost := NewMock(t)

	tests := []struct {
		name          string
		prop          domain.OwnedProperty
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Half hour of income is applied",
			// Property 5 earns 10 MC per hour at level 1.
			prop: domain.OwnedProperty{ID: 3, UserID: 1, PropertyIndex: 5, Level: 1, LastGeneratedAt: fixedNow.Add(-30 * time.Minute)},
			prepareMock: func() {
				boost.EXPECT().TotalBoost(gomock.Any(), int64(1), catalog.Pink).Return(1.0, nil)
				propertyRepo.EXPECT().ApplyEarnings(gomock.Any(), int64(3), 5.0, fixedNow).Return(nil)
			},
		},
		{
			name: "Boost multiplies the accrual",
			prop: domain.OwnedProperty{ID: 3, UserID: 1, PropertyIndex: 5, Level: 1, LastGeneratedAt: fixedNow.Add(-time.Hour)},
			prepareMock: func() {
				boost.EXPECT().TotalBoost(gomock.Any(), int64(1), catalog.Pink).Return(1.5, nil)
				propertyRepo.EXPECT().ApplyEarnings(gomock.Any(), int64(3), 15.0, fixedNow).Return(nil)
			},
		},
		{
			name: "Rows younger than a minute are skipped",
			prop: domain.OwnedProperty{ID: 3, UserID: 1, PropertyIndex: 5, Level: 1, LastGeneratedAt: fixedNow.Add(-30 * time.Second)},
		},
		{
			name: "Unknown catalog index is skipped",
			prop: domain.OwnedProperty{ID: 3, UserID: 1, PropertyIndex: 99, Level: 1, LastGeneratedAt: fixedNow.Add(-time.Hour)},
		},
		{
			name: "Invalid level is skipped",
			prop: domain.OwnedProperty{ID: 3, UserID: 1, PropertyIndex: 5, Level: 9, LastGeneratedAt: fixedNow.Add(-time.Hour)},
		},
		{
			name: "Boost failure propagates",
			prop: domain.OwnedProperty{ID: 3, UserID: 1, PropertyIndex: 5, Level: 1, LastGeneratedAt: fixedNow.Add(-time.Hour)},
			prepareMock: func() {
				boost.EXPECT().TotalBoost(gomock.Any(), int64(1), catalog.Pink).Return(0.0, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			err := engine.accrueProperty(context.Background(), tt.prop)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// inlinePool runs tasks synchronously so batch tests stay deterministic.
type inlinePool struct{}

func (inlinePool) AddTask(_ context.Context, task Task) error { return task() }
func (inlinePool) Close()                                     {}

func TestProcessBatch(t *testing.T) {
	engine, propertyRepo, boost := NewMock(t)
	engine.workerPool = inlinePool{}

	cutoff := fixedNow.Add(-minElapsed)
	due := []domain.OwnedProperty{
		{ID: 1, UserID: 1, PropertyIndex: 5, Level: 1, LastGeneratedAt: fixedNow.Add(-30 * time.Minute)},
		{ID: 2, UserID: 2, PropertyIndex: 1, Level: 1, LastGeneratedAt: fixedNow.Add(-60 * time.Minute)},
	}

	propertyRepo.EXPECT().ListDue(gomock.Any(), cutoff, uint32(1000)).Return(due, nil)
	boost.EXPECT().TotalBoost(gomock.Any(), int64(1), catalog.Pink).Return(1.0, nil)
	propertyRepo.EXPECT().ApplyEarnings(gomock.Any(), int64(1), 5.0, fixedNow).Return(nil)
	boost.EXPECT().TotalBoost(gomock.Any(), int64(2), catalog.Brown).Return(1.0, nil)
	propertyRepo.EXPECT().ApplyEarnings(gomock.Any(), int64(2), 4.0, fixedNow).Return(nil)

	engine.ProcessBatch(context.Background())
}

func TestProcessBatchSkipsInFlightRows(t *testing.T) {
	engine, propertyRepo, _ := NewMock(t)
	engine.workerPool = inlinePool{}

	processingProperties.Store(int64(1), struct{}{})
	defer processingProperties.Delete(int64(1))

	propertyRepo.EXPECT().ListDue(gomock.Any(), gomock.Any(), uint32(1000)).Return([]domain.OwnedProperty{
		{ID: 1, UserID: 1, PropertyIndex: 5, Level: 1, LastGeneratedAt: fixedNow.Add(-30 * time.Minute)},
	}, nil)

	engine.ProcessBatch(context.Background())
}

func TestProcessBatchSurvivesRowFailure(t *testing.T) {
	engine, propertyRepo, boost := NewMock(t)
	engine.workerPool = inlinePool{}

	due := []domain.OwnedProperty{
		{ID: 1, UserID: 1, PropertyIndex: 5, Level: 1, LastGeneratedAt: fixedNow.Add(-30 * time.Minute)},
		{ID: 2, UserID: 2, PropertyIndex: 1, Level: 1, LastGeneratedAt: fixedNow.Add(-60 * time.Minute)},
	}

	propertyRepo.EXPECT().ListDue(gomock.Any(), gomock.Any(), uint32(1000)).Return(due, nil)
	boost.EXPECT().TotalBoost(gomock.Any(), int64(1), catalog.Pink).Return(0.0, errors.New("db error"))
	boost.EXPECT().TotalBoost(gomock.Any(), int64(2), catalog.Brown).Return(1.0, nil)
	propertyRepo.EXPECT().ApplyEarnings(gomock.Any(), int64(2), 4.0, fixedNow).Return(nil)

	engine.ProcessBatch(context.Background())
}
