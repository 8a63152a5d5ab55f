package models

import "time"

// Payment is one simulated draw-down against a credit line. Settled stays
// false; flipping it belongs to a settlement process outside this service.
type Payment struct {
	ID           int64     `json:"id" db:"id"`
	CardholderID string    `json:"cardholder_id" db:"cardholder_id"`
	PayID        string    `json:"pay_id" db:"pay_id"`
	Amount       int64     `json:"amount" db:"amount"`
	PaidAt       string    `json:"paid_at" db:"paid_at"` // Jalaali timestamp string
	Settled      bool      `json:"settled" db:"settled"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
