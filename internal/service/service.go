package service

import (
	"github.com/monopolygame/monopolybot/internal/config"
	"github.com/monopolygame/monopolybot/internal/domain"
	"github.com/monopolygame/monopolybot/internal/pg"
	"github.com/monopolygame/monopolybot/internal/repo"
	"github.com/monopolygame/monopolybot/internal/service/boostservice"
	"github.com/monopolygame/monopolybot/internal/service/depositservice"
	"github.com/monopolygame/monopolybot/internal/service/ledgerservice"
	"github.com/monopolygame/monopolybot/internal/service/propertyservice"
	"github.com/monopolygame/monopolybot/internal/service/userservice"
	"github.com/monopolygame/monopolybot/internal/service/withdrawalservice"
)

type Services struct {
	User       *userservice.Service
	Ledger     *ledgerservice.Service
	Boost      *boostservice.Service
	Property   *propertyservice.Service
	Deposit    *depositservice.Service
	Withdrawal *withdrawalservice.Service
}

func New(cfg *config.Config, repo *repo.Repositories, txManager pg.TXManager, payClient depositservice.PaymentClient) *Services {
	ledger := ledgerservice.New(repo.User, repo.Transaction, txManager)
	boost := boostservice.New(repo.Property, repo.Service)
	property := propertyservice.New(repo.Property, repo.Service, ledger, boost, txManager)
	user := userservice.New(repo.User, property, txManager)
	deposit := depositservice.New(repo.Deposit, repo.User, ledger, payClient, txManager,
		cfg.RateMCPerUSD, cfg.MinDepositUSD, cfg.ReferralBonusPct, cfg.ReconcileInterval)
	withdrawal := withdrawalservice.New(repo.Withdrawal, ledger, txManager,
		domain.MC(cfg.MinWithdrawalMC), cfg.WithdrawalCooldown, cfg.WithdrawalCurrencies, cfg.AdminIDs())

	return &Services{
		User:       user,
		Ledger:     ledger,
		Boost:      boost,
		Property:   property,
		Deposit:    deposit,
		Withdrawal: withdrawal,
	}
}
