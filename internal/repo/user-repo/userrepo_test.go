package userrepo

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

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		created   bool
	}{
		{
			name: "User created",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"created_at"}).AddRow(now)
				mock.ExpectQuery("INSERT INTO users").
					WithArgs(int64(1), domain.MC(0), "abc123def0", (*int64)(nil), (*string)(nil)).
					WillReturnRows(rows)
			},
			created: true,
		},
		{
			name: "Conflicting insert returns nil",
			mockSetup: func() {
				mock.ExpectQuery("INSERT INTO users").
					WithArgs(int64(1), domain.MC(0), "abc123def0", (*int64)(nil), (*string)(nil)).
					WillReturnError(pgx.ErrNoRows)
			},
			created: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery("INSERT INTO users").
					WithArgs(int64(1), domain.MC(0), "abc123def0", (*int64)(nil), (*string)(nil)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			user := &domain.User{ID: 1, ReferralCode: "abc123def0"}
			result, err := repo.Create(context.Background(), user)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if tt.created {
				assert.NotNil(t, result)
				assert.Equal(t, now, result.CreatedAt)
			} else {
				assert.Nil(t, result)
			}
		})
	}
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := NewMock(t)

	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name: "User found",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "balance", "referral_code", "referrer_id", "language", "created_at", "updated_at"}).
					AddRow(int64(1), domain.MC(1000), "abc123def0", nil, nil, now, now)
				mock.ExpectQuery("SELECT id, balance, referral_code").
					WithArgs(int64(1)).
					WillReturnRows(rows)
			},
			result: &domain.User{ID: 1, Balance: 1000, ReferralCode: "abc123def0", CreatedAt: now, UpdatedAt: now},
		},
		{
			name: "User not found",
			mockSetup: func() {
				mock.ExpectQuery("SELECT id, balance, referral_code").
					WithArgs(int64(1)).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery("SELECT id, balance, referral_code").
					WithArgs(int64(1)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			result, err := repo.GetByID(context.Background(), 1)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_DebitBalance(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr error
		balance   domain.MC
	}{
		{
			name: "Debit succeeds",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"balance"}).AddRow(domain.MC(200))
				mock.ExpectQuery("UPDATE users").
					WithArgs(domain.MC(800), int64(1)).
					WillReturnRows(rows)
			},
			balance: 200,
		},
		{
			name: "Insufficient funds surfaces ErrNoRows",
			mockSetup: func() {
				mock.ExpectQuery("UPDATE users").
					WithArgs(domain.MC(800), int64(1)).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: pgx.ErrNoRows,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			balance, err := repo.DebitBalance(context.Background(), 1, 800)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.balance, balance)
		})
	}
}

func TestRepository_CreditBalance(t *testing.T) {
	repo, mock := NewMock(t)

	rows := pgxmock.NewRows([]string{"balance"}).AddRow(domain.MC(51000))
	mock.ExpectQuery("UPDATE users").
		WithArgs(domain.MC(50000), int64(7)).
		WillReturnRows(rows)

	balance, err := repo.CreditBalance(context.Background(), 7, 50000)
	assert.NoError(t, err)
	assert.Equal(t, domain.MC(51000), balance)
}

func TestRepository_SetLanguage(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec("UPDATE users").
		WithArgs("en", int64(1)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, repo.SetLanguage(context.Background(), 1, "en"))
}
