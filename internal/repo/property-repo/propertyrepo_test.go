package propertyrepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/monopolygame/monopolybot/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func propertyRows(now time.Time) *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "user_id", "property_index", "level", "accumulated_mc", "last_generated_at", "last_claimed_at", "purchased_at",
	}).AddRow(
		int64(3), int64(1), 5, 1, 7.5, now, nil, now,
	)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	now := time.Now()
	rows := pgxmock.NewRows([]string{"id"}).AddRow(int64(3))
	mock.ExpectQuery("INSERT INTO owned_properties").
		WithArgs(int64(1), 5, 1, now).
		WillReturnRows(rows)

	prop := &domain.OwnedProperty{UserID: 1, PropertyIndex: 5, Level: 1, PurchasedAt: now}
	result, err := repo.Create(context.Background(), prop)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), result.ID)
}

func TestRepository_GetByUserAndIndex(t *testing.T) {
	repo, mock := NewMock(t)

	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name: "Property found",
			mockSetup: func() {
				mock.ExpectQuery("SELECT (.+) FROM owned_properties").
					WithArgs(int64(1), 5).
					WillReturnRows(propertyRows(now))
			},
			found: true,
		},
		{
			name: "Property not owned",
			mockSetup: func() {
				mock.ExpectQuery("SELECT (.+) FROM owned_properties").
					WithArgs(int64(1), 5).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery("SELECT (.+) FROM owned_properties").
					WithArgs(int64(1), 5).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			prop, err := repo.GetByUserAndIndex(context.Background(), 1, 5)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if tt.found {
				assert.NotNil(t, prop)
				assert.Equal(t, 7.5, prop.AccumulatedMC)
			} else {
				assert.Nil(t, prop)
			}
		})
	}
}

func TestRepository_ListDue(t *testing.T) {
	repo, mock := NewMock(t)

	now := time.Now()
	cutoff := now.Add(-time.Minute)
	mock.ExpectQuery("SELECT (.+) FROM owned_properties").
		WithArgs(cutoff, uint32(1000)).
		WillReturnRows(propertyRows(now))

	props, err := repo.ListDue(context.Background(), cutoff, 1000)
	assert.NoError(t, err)
	assert.Len(t, props, 1)
	assert.Equal(t, int64(3), props[0].ID)
}

func TestRepository_ApplyEarnings(t *testing.T) {
	repo, mock := NewMock(t)

	now := time.Now()
	mock.ExpectExec("UPDATE owned_properties").
		WithArgs(5.0, now, int64(3)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, repo.ApplyEarnings(context.Background(), 3, 5.0, now))
}

func TestRepository_UpdateLevel(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		updated   bool
	}{
		{
			name: "Level advances from the expected step",
			mockSetup: func() {
				mock.ExpectExec("UPDATE owned_properties").
					WithArgs(2, int64(3), 1).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			updated: true,
		},
		{
			name: "Stale level leaves the row untouched",
			mockSetup: func() {
				mock.ExpectExec("UPDATE owned_properties").
					WithArgs(2, int64(3), 1).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			updated: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			updated, err := repo.UpdateLevel(context.Background(), 3, 2, 1)
			assert.NoError(t, err)
			assert.Equal(t, tt.updated, updated)
		})
	}
}

func TestRepository_ResetAccrual(t *testing.T) {
	repo, mock := NewMock(t)

	now := time.Now()
	prev := now.Add(-30 * time.Minute)

	tests := []struct {
		name      string
		mockSetup func()
		reset     bool
	}{
		{
			name: "Accumulator zeroed from the read snapshot",
			mockSetup: func() {
				mock.ExpectExec("UPDATE owned_properties").
					WithArgs(now, int64(3), prev).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			reset: true,
		},
		{
			name: "Advanced accrual point rejects the reset",
			mockSetup: func() {
				mock.ExpectExec("UPDATE owned_properties").
					WithArgs(now, int64(3), prev).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			reset: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			reset, err := repo.ResetAccrual(context.Background(), 3, prev, now)
			assert.NoError(t, err)
			assert.Equal(t, tt.reset, reset)
		})
	}
}
