package service

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/monopolygame/monopolybot/internal/config"
	"github.com/monopolygame/monopolybot/internal/pg"
	"github.com/monopolygame/monopolybot/internal/repo"
	"github.com/monopolygame/monopolybot/internal/service/depositservice"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	cfg := &config.Config{
		RateMCPerUSD:         1000,
		MinDepositUSD:        5,
		MinWithdrawalMC:      10000,
		ReferralBonusPct:     0.10,
		WithdrawalCurrencies: []string{"btc"},
	}
	repos := repo.New(mockDB)
	txManager := pg.NewMockTXManager(ctrl)
	payClient := depositservice.NewMockPaymentClient(ctrl)

	services := New(cfg, repos, txManager, payClient)

	assert.NotNil(t, services.User)
	assert.NotNil(t, services.Ledger)
	assert.NotNil(t, services.Boost)
	assert.NotNil(t, services.Property)
	assert.NotNil(t, services.Deposit)
	assert.NotNil(t, services.Withdrawal)
}
