package servicerepo

import (
	"context"
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

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	now := time.Now()
	rows := pgxmock.NewRows([]string{"id"}).AddRow(int64(2))
	mock.ExpectQuery("INSERT INTO owned_services").
		WithArgs(int64(1), 0, now).
		WillReturnRows(rows)

	svc := &domain.OwnedService{UserID: 1, ServiceIndex: 0, PurchasedAt: now}
	result, err := repo.Create(context.Background(), svc)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), result.ID)
}

func TestRepository_GetByUserAndIndex(t *testing.T) {
	repo, mock := NewMock(t)

	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		found     bool
	}{
		{
			name: "Service found",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "user_id", "service_index", "purchased_at"}).
					AddRow(int64(2), int64(1), 0, now)
				mock.ExpectQuery("SELECT id, user_id, service_index").
					WithArgs(int64(1), 0).
					WillReturnRows(rows)
			},
			found: true,
		},
		{
			name: "Service not owned",
			mockSetup: func() {
				mock.ExpectQuery("SELECT id, user_id, service_index").
					WithArgs(int64(1), 0).
					WillReturnError(pgx.ErrNoRows)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			svc, err := repo.GetByUserAndIndex(context.Background(), 1, 0)
			assert.NoError(t, err)
			if tt.found {
				assert.NotNil(t, svc)
				assert.Equal(t, 0, svc.ServiceIndex)
			} else {
				assert.Nil(t, svc)
			}
		})
	}
}

func TestRepository_ListByUser(t *testing.T) {
	repo, mock := NewMock(t)

	now := time.Now()
	rows := pgxmock.NewRows([]string{"id", "user_id", "service_index", "purchased_at"}).
		AddRow(int64(2), int64(1), 0, now).
		AddRow(int64(3), int64(1), 4, now)
	mock.ExpectQuery("SELECT id, user_id, service_index").
		WithArgs(int64(1)).
		WillReturnRows(rows)

	svcs, err := repo.ListByUser(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, svcs, 2)
	assert.Equal(t, 4, svcs[1].ServiceIndex)
}
