// Package store owns persistence for accounts, credit logs and payments.
// The LedgerStore contract is the only way the service layer touches
// storage; balance updates and their matching log entries are persisted in
// one transaction so the ledger invariant (balance == signed sum of logs)
// cannot be broken by a partial write.
package store

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/ravandpay/creditmock/internal/models"
)

var (
	// ErrNotFound is returned when no account exists for a cardholder.
	ErrNotFound = errors.New("account not found")

	// ErrDuplicate is returned when an account already exists for the
	// cardholder being created.
	ErrDuplicate = errors.New("account already exists")
)

// accountNumberPrefix is the fixed display prefix of generated account
// numbers.
const accountNumberPrefix = "1013"

// LedgerStore is the storage contract consumed by the credit ledger core.
type LedgerStore interface {
	// GetAccount returns the account for a cardholder, or ErrNotFound.
	GetAccount(cardholderID string) (*models.Account, error)

	// ListAccounts returns every account in creation order.
	ListAccounts() ([]models.Account, error)

	// CreateAccount creates an account with the given opening credit
	// balance, applying the generated account number exactly once. When
	// initialLog is non-nil it is appended in the same transaction.
	// Returns ErrDuplicate when the cardholder already has an account.
	CreateAccount(cardholderID string, creditBalance int64, initialLog *models.CreditLog) (*models.Account, error)

	// SaveBalance sets the account's credit balance and appends the
	// matching log entry in one transaction.
	SaveBalance(cardholderID string, newBalance int64, log models.CreditLog) error

	// UpdateStatus sets the account status, or returns ErrNotFound.
	UpdateStatus(cardholderID, status string) error

	// ListCreditLogs returns one cardholder's log entries, newest first.
	ListCreditLogs(cardholderID string) ([]models.CreditLog, error)

	// ListRecentCreditLogs returns the most recent log entries across all
	// cardholders, newest first, capped at limit.
	ListRecentCreditLogs(limit int) ([]models.CreditLog, error)

	// RecordPayment sets the account's credit balance and writes the
	// payment together with its mirroring log entry in one transaction.
	RecordPayment(cardholderID string, newBalance int64, payment models.Payment, log models.CreditLog) error

	// ListPayments returns one cardholder's payments in creation order.
	ListPayments(cardholderID string) ([]models.Payment, error)

	// ListAllPayments returns every payment in creation order.
	ListAllPayments() ([]models.Payment, error)
}

// newAccountNumber generates a display account number: the fixed prefix
// followed by a 14-digit random suffix.
func newAccountNumber() string {
	return fmt.Sprintf("%s%014d", accountNumberPrefix, rand.Int64N(100_000_000_000_000))
}
