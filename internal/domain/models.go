package domain

import "time"

// MC is the in-game currency unit ("MonopolyCoin"). Spendable balances are
// whole MC; only per-property unclaimed accruals carry fractions.
type MC int64

type User struct {
	ID           int64     `db:"id"`
	Balance      MC        `db:"balance"`
	ReferralCode string    `db:"referral_code"`
	ReferrerID   *int64    `db:"referrer_id"`
	Language     *string   `db:"language"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

type OwnedProperty struct {
	ID              int64      `db:"id"`
	UserID          int64      `db:"user_id"`
	PropertyIndex   int        `db:"property_index"`
	Level           int        `db:"level"`
	AccumulatedMC   float64    `db:"accumulated_mc"`
	LastGeneratedAt time.Time  `db:"last_generated_at"`
	LastClaimedAt   *time.Time `db:"last_claimed_at"`
	PurchasedAt     time.Time  `db:"purchased_at"`
}

type OwnedService struct {
	ID           int64     `db:"id"`
	UserID       int64     `db:"user_id"`
	ServiceIndex int       `db:"service_index"`
	PurchasedAt  time.Time `db:"purchased_at"`
}

type DepositStatus string

const (
	DepositPending DepositStatus = "pending"
	DepositPaid    DepositStatus = "paid"
	DepositFailed  DepositStatus = "failed"
	DepositExpired DepositStatus = "expired"
)

// Terminal reports whether a deposit status can never change again.
func (s DepositStatus) Terminal() bool {
	return s == DepositPaid || s == DepositFailed || s == DepositExpired
}

type Deposit struct {
	ID          int64         `db:"id"`
	UserID      int64         `db:"user_id"`
	AmountUSD   float64       `db:"amount_usd"`
	AmountMC    MC            `db:"amount_mc"`
	PaymentID   string        `db:"payment_id"`
	OrderID     string        `db:"order_id"`
	Status      DepositStatus `db:"status"`
	PayAddress  string        `db:"pay_address"`
	PayAmount   float64       `db:"pay_amount"`
	PayCurrency string        `db:"pay_currency"`
	PaymentURL  string        `db:"payment_url"`
	CreatedAt   time.Time     `db:"created_at"`
	UpdatedAt   time.Time     `db:"updated_at"`
	PaidAt      *time.Time    `db:"paid_at"`
}

type WithdrawalStatus string

const (
	WithdrawalPending   WithdrawalStatus = "pending"
	WithdrawalProcessed WithdrawalStatus = "processed"
	WithdrawalCancelled WithdrawalStatus = "cancelled"
	WithdrawalRefunded  WithdrawalStatus = "refunded"
)

type Withdrawal struct {
	ID            int64            `db:"id"`
	UserID        int64            `db:"user_id"`
	AmountMC      MC               `db:"amount_mc"`
	Currency      string           `db:"currency"`
	WalletAddress string           `db:"wallet_address"`
	Status        WithdrawalStatus `db:"status"`
	TxHash        *string          `db:"tx_hash"`
	ProcessedBy   *int64           `db:"processed_by"`
	CreatedAt     time.Time        `db:"created_at"`
	ProcessedAt   *time.Time       `db:"processed_at"`
}

type TransactionType string

const (
	TxPurchase         TransactionType = "purchase"
	TxUpgrade          TransactionType = "upgrade"
	TxClaim            TransactionType = "claim"
	TxDeposit          TransactionType = "deposit"
	TxWithdrawal       TransactionType = "withdrawal"
	TxWithdrawalRefund TransactionType = "withdrawal_refund"
	TxReferralBonus    TransactionType = "referral_bonus"
)

// Transaction is an append-only audit record. Exactly one row accompanies
// every balance mutation; rows are never updated or deleted.
type Transaction struct {
	ID          int64           `db:"id"`
	UserID      int64           `db:"user_id"`
	Type        TransactionType `db:"type"`
	Amount      MC              `db:"amount"`
	Description string          `db:"description"`
	Metadata    map[string]any  `db:"metadata"`
	CreatedAt   time.Time       `db:"created_at"`
}
