package models

import "time"

const (
	TypeCredit = "CREDIT"
	TypeDebit  = "DEBIT"
)

// CreditLog is one adjustment event. Rows are append-only: every change to
// an account's credit_balance writes exactly one log entry, and entries are
// never updated or deleted. CreditAmount is always positive; the direction
// is carried by Type.
type CreditLog struct {
	ID           int64     `json:"id" db:"id"`
	CardholderID string    `json:"cardholder_id" db:"cardholder_id"`
	CreditAmount int64     `json:"credit_amount" db:"credit_amount"`
	Type         string    `json:"type" db:"type"`
	AdjustedAt   string    `json:"adjusted_at" db:"adjusted_at"` // Jalaali timestamp string
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
