package store

import (
	"sort"
	"sync"
	"time"

	"github.com/ravandpay/creditmock/internal/models"
)

// MemoryStore is a map-backed LedgerStore. It mirrors the SQL store's
// behavior (uniqueness, ordering, not-found semantics) and backs service
// and handler tests.
type MemoryStore struct {
	mu       sync.RWMutex
	accounts map[string]*models.Account
	logs     []models.CreditLog
	payments []models.Payment
	nextID   int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		accounts: make(map[string]*models.Account),
		nextID:   1,
	}
}

func (s *MemoryStore) GetAccount(cardholderID string) (*models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accounts[cardholderID]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *account
	return &copied, nil
}

func (s *MemoryStore) ListAccounts() ([]models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	accounts := make([]models.Account, 0, len(s.accounts))
	for _, account := range s.accounts {
		accounts = append(accounts, *account)
	}
	// creation order
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].ID < accounts[j].ID })
	return accounts, nil
}

func (s *MemoryStore) CreateAccount(cardholderID string, creditBalance int64, initialLog *models.CreditLog) (*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[cardholderID]; exists {
		return nil, ErrDuplicate
	}

	now := time.Now()
	account := &models.Account{
		ID:            s.nextSeq(),
		CardholderID:  cardholderID,
		AccountNumber: newAccountNumber(),
		Balance:       0,
		CreditBalance: creditBalance,
		Status:        models.StatusActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	s.accounts[cardholderID] = account
	if initialLog != nil {
		s.appendLog(*initialLog)
	}
	copied := *account
	return &copied, nil
}

func (s *MemoryStore) SaveBalance(cardholderID string, newBalance int64, log models.CreditLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[cardholderID]
	if !ok {
		return ErrNotFound
	}
	account.CreditBalance = newBalance
	account.UpdatedAt = time.Now()
	s.appendLog(log)
	return nil
}

func (s *MemoryStore) UpdateStatus(cardholderID, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[cardholderID]
	if !ok {
		return ErrNotFound
	}
	account.Status = status
	account.UpdatedAt = time.Now()
	return nil
}

func (s *MemoryStore) ListCreditLogs(cardholderID string) ([]models.CreditLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	logs := []models.CreditLog{}
	for i := len(s.logs) - 1; i >= 0; i-- {
		if s.logs[i].CardholderID == cardholderID {
			logs = append(logs, s.logs[i])
		}
	}
	return logs, nil
}

func (s *MemoryStore) ListRecentCreditLogs(limit int) ([]models.CreditLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	logs := []models.CreditLog{}
	for i := len(s.logs) - 1; i >= 0 && len(logs) < limit; i-- {
		logs = append(logs, s.logs[i])
	}
	return logs, nil
}

func (s *MemoryStore) RecordPayment(cardholderID string, newBalance int64, payment models.Payment, log models.CreditLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[cardholderID]
	if !ok {
		return ErrNotFound
	}
	account.CreditBalance = newBalance
	account.UpdatedAt = time.Now()

	payment.ID = s.nextSeq()
	payment.CreatedAt = time.Now()
	s.payments = append(s.payments, payment)
	s.appendLog(log)
	return nil
}

func (s *MemoryStore) ListPayments(cardholderID string) ([]models.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	payments := []models.Payment{}
	for _, payment := range s.payments {
		if payment.CardholderID == cardholderID {
			payments = append(payments, payment)
		}
	}
	return payments, nil
}

func (s *MemoryStore) ListAllPayments() ([]models.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	payments := make([]models.Payment, len(s.payments))
	copy(payments, s.payments)
	return payments, nil
}

func (s *MemoryStore) appendLog(log models.CreditLog) {
	log.ID = s.nextSeq()
	log.CreatedAt = time.Now()
	s.logs = append(s.logs, log)
}

func (s *MemoryStore) nextSeq() int64 {
	id := s.nextID
	s.nextID++
	return id
}
