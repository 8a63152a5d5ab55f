package models

import "time"

const (
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
)

// Account holds one cardholder's credit line. Exactly one row exists per
// cardholder_id; the account_number is generated once at creation and never
// changes afterwards.
type Account struct {
	ID            int64     `json:"id" db:"id"`
	CardholderID  string    `json:"cardholder_id" db:"cardholder_id"`
	AccountNumber string    `json:"account_number" db:"account_number"`
	Balance       int64     `json:"balance" db:"balance"` // settled funds, minor units; managed by external settlement
	CreditBalance int64     `json:"credit_balance" db:"credit_balance"`
	Status        string    `json:"status" db:"status"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}
