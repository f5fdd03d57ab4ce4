package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EarningsRuns = promauto.NewCounter(prometheus.CounterOpts{
		Name: "monopoly_earnings_runs_total",
		Help: "Accrual batch runs",
	})

	PropertiesAccrued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "monopoly_properties_accrued_total",
		Help: "Property rows that received accrued earnings",
	})

	DepositsCredited = promauto.NewCounter(prometheus.CounterOpts{
		Name: "monopoly_deposits_credited_total",
		Help: "Deposits transitioned to paid",
	})

	IPNRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "monopoly_ipn_rejected_total",
		Help: "Rejected payment notifications",
	}, []string{"reason"})
)
