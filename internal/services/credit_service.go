package services

import (
	"errors"

	"github.com/google/uuid"

	"github.com/ravandpay/creditmock/internal/jalaali"
	"github.com/ravandpay/creditmock/internal/models"
	"github.com/ravandpay/creditmock/internal/numerals"
	"github.com/ravandpay/creditmock/internal/store"
)

// globalHistoryLimit caps the cross-cardholder credit history listing.
const globalHistoryLimit = 50

// CreditService is the credit ledger core. Every balance mutation goes
// through the injected store, which persists the balance and its log entry
// together; the service itself holds no state.
type CreditService struct {
	store store.LedgerStore
}

func NewCreditService(st store.LedgerStore) *CreditService {
	return &CreditService{store: st}
}

// Register creates the cardholder's account. A bad amount never fails the
// registration; it degrades to an opening credit of zero. A duplicate
// cardholder is a hard failure.
func (s *CreditService) Register(cardholderID string, rawAmount any) (int64, error) {
	amount, ok := numerals.ToNumber(rawAmount)
	if !ok || amount <= 0 {
		amount = 0
	}

	var initialLog *models.CreditLog
	if amount > 0 {
		initialLog = &models.CreditLog{
			CardholderID: cardholderID,
			CreditAmount: amount,
			Type:         models.TypeCredit,
			AdjustedAt:   jalaali.Now(),
		}
	}

	account, err := s.store.CreateAccount(cardholderID, amount, initialLog)
	if errors.Is(err, store.ErrDuplicate) {
		return 0, ErrAlreadyRegistered
	}
	if err != nil {
		return 0, err
	}
	return account.CreditBalance, nil
}

// Adjust applies a single signed adjustment. Unlike Register it rejects bad
// amounts outright. DEBIT may push the balance negative: the account is a
// line of credit and Adjust deliberately has no floor (payments do, see
// SimulatePayment).
func (s *CreditService) Adjust(cardholderID string, rawAmount any, adjType string) (int64, error) {
	account, err := s.store.GetAccount(cardholderID)
	if errors.Is(err, store.ErrNotFound) {
		return 0, ErrAccountNotFound
	}
	if err != nil {
		return 0, err
	}

	amount, ok := numerals.ToNumber(rawAmount)
	if !ok || amount <= 0 {
		return 0, ErrInvalidAmount
	}

	var newBalance int64
	switch adjType {
	case models.TypeCredit:
		newBalance = account.CreditBalance + amount
	case models.TypeDebit:
		newBalance = account.CreditBalance - amount
	default:
		return 0, ErrInvalidType
	}

	err = s.store.SaveBalance(cardholderID, newBalance, models.CreditLog{
		CardholderID: cardholderID,
		CreditAmount: amount,
		Type:         adjType,
		AdjustedAt:   jalaali.Now(),
	})
	if err != nil {
		return 0, err
	}
	return newBalance, nil
}

// BatchAdjust processes each item independently and in order. A failing
// item fills its own result slot and never rolls back or blocks the others.
// Result items carry the original fields plus has_error, error and
// credit_balance, and the list always matches the input in order and length.
func (s *CreditService) BatchAdjust(items []map[string]any) []map[string]any {
	results := make([]map[string]any, 0, len(items))
	for _, item := range items {
		cardholderID, _ := item["cardholder_id"].(string)
		adjType, _ := item["type"].(string)

		newBalance, err := s.Adjust(cardholderID, item["credit_amount"], adjType)
		if err != nil {
			results = append(results, batchResult(item, nil, err))
			continue
		}
		results = append(results, batchResult(item, newBalance, nil))
	}
	return results
}

func batchResult(item map[string]any, newBalance any, err error) map[string]any {
	result := make(map[string]any, len(item)+3)
	for k, v := range item {
		result[k] = v
	}
	if err != nil {
		result["has_error"] = true
		result["error"] = map[string]any{"message": batchMessage(err)}
		result["credit_balance"] = nil
		return result
	}
	result["has_error"] = false
	result["error"] = nil
	result["credit_balance"] = newBalance
	return result
}

// batchMessage maps domain errors to the per-item message contract;
// storage errors pass through verbatim.
func batchMessage(err error) string {
	switch {
	case errors.Is(err, ErrAccountNotFound):
		return "User not found"
	case errors.Is(err, ErrInvalidAmount):
		return "Invalid amount"
	case errors.Is(err, ErrInvalidType):
		return "Invalid type"
	}
	return err.Error()
}

// SimulatePayment draws down the credit balance. Unlike Adjust it enforces
// a floor: the balance can never go negative through a payment.
func (s *CreditService) SimulatePayment(cardholderID string, rawAmount any) (int64, error) {
	account, err := s.store.GetAccount(cardholderID)
	if errors.Is(err, store.ErrNotFound) {
		return 0, ErrAccountNotFound
	}
	if err != nil {
		return 0, err
	}

	amount, ok := numerals.ToNumber(rawAmount)
	if !ok || amount <= 0 {
		return 0, ErrInvalidAmount
	}
	if account.CreditBalance < amount {
		return 0, ErrInsufficientCredit
	}

	newBalance := account.CreditBalance - amount
	now := jalaali.Now()
	err = s.store.RecordPayment(cardholderID, newBalance,
		models.Payment{
			CardholderID: cardholderID,
			PayID:        uuid.NewString(),
			Amount:       amount,
			PaidAt:       now,
			Settled:      false,
		},
		models.CreditLog{
			CardholderID: cardholderID,
			CreditAmount: amount,
			Type:         models.TypeDebit,
			AdjustedAt:   now,
		})
	if err != nil {
		return 0, err
	}
	return newBalance, nil
}

// UpdateStatus toggles the account between ACTIVE and INACTIVE.
func (s *CreditService) UpdateStatus(cardholderID, status string) (string, error) {
	if status != models.StatusActive && status != models.StatusInactive {
		return "", ErrInvalidStatus
	}

	err := s.store.UpdateStatus(cardholderID, status)
	if errors.Is(err, store.ErrNotFound) {
		return "", ErrAccountNotFound
	}
	if err != nil {
		return "", err
	}
	return status, nil
}

// ListAccounts returns the full account snapshot.
func (s *CreditService) ListAccounts() ([]models.Account, error) {
	return s.store.ListAccounts()
}

// CreditHistory returns one cardholder's adjustments, newest first.
func (s *CreditService) CreditHistory(cardholderID string) ([]models.CreditLog, error) {
	return s.store.ListCreditLogs(cardholderID)
}

// GlobalCreditHistory returns the latest adjustments across all
// cardholders, newest first, capped at 50.
func (s *CreditService) GlobalCreditHistory() ([]models.CreditLog, error) {
	return s.store.ListRecentCreditLogs(globalHistoryLimit)
}

// Payments returns one cardholder's payments along with the account number
// used to enrich the listing. A missing account yields "N/A" rather than an
// error, matching the listing contract.
func (s *CreditService) Payments(cardholderID string) ([]models.Payment, string, error) {
	payments, err := s.store.ListPayments(cardholderID)
	if err != nil {
		return nil, "", err
	}

	accountNumber := "N/A"
	if account, err := s.store.GetAccount(cardholderID); err == nil {
		accountNumber = account.AccountNumber
	}
	return payments, accountNumber, nil
}

// AllPayments returns every payment on record.
func (s *CreditService) AllPayments() ([]models.Payment, error) {
	return s.store.ListAllPayments()
}
