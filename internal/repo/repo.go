package repo

import (
	"github.com/monopolygame/monopolybot/internal/pg"
	depositrepo "github.com/monopolygame/monopolybot/internal/repo/deposit-repo"
	propertyrepo "github.com/monopolygame/monopolybot/internal/repo/property-repo"
	servicerepo "github.com/monopolygame/monopolybot/internal/repo/service-repo"
	transactionrepo "github.com/monopolygame/monopolybot/internal/repo/transaction-repo"
	userrepo "github.com/monopolygame/monopolybot/internal/repo/user-repo"
	withdrawalrepo "github.com/monopolygame/monopolybot/internal/repo/withdrawal-repo"
)

type Repositories struct {
	User        *userrepo.Repository
	Property    *propertyrepo.Repository
	Service     *servicerepo.Repository
	Deposit     *depositrepo.Repository
	Withdrawal  *withdrawalrepo.Repository
	Transaction *transactionrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		User:        userrepo.New(conn),
		Property:    propertyrepo.New(conn),
		Service:     servicerepo.New(conn),
		Deposit:     depositrepo.New(conn),
		Withdrawal:  withdrawalrepo.New(conn),
		Transaction: transactionrepo.New(conn),
	}
}
