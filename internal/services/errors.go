package services

import "errors"

// Domain errors surfaced by the credit ledger core. The HTTP layer maps
// each one to a distinct response status.
var (
	// ErrAccountNotFound: no account exists for the cardholder. 404.
	ErrAccountNotFound = errors.New("user not found")

	// ErrAlreadyRegistered: the cardholder already has an account. 422.
	ErrAlreadyRegistered = errors.New("user already registered")

	// ErrInvalidAmount: the amount is unparsable or not positive. 422.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidType: the adjustment type is neither CREDIT nor DEBIT. 422.
	ErrInvalidType = errors.New("invalid type")

	// ErrInvalidStatus: the status is neither ACTIVE nor INACTIVE. 422.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrInsufficientCredit: a payment exceeds the available credit. 400.
	ErrInsufficientCredit = errors.New("insufficient credit")
)
