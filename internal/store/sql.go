package store

import (
	"database/sql"
	"strings"
	"time"

	"github.com/ravandpay/creditmock/internal/models"
)

// SQLStore implements LedgerStore on a database/sql handle.
type SQLStore struct {
	db *sql.DB
}

// NewSQLStore wraps an open database handle. The caller owns the handle's
// lifecycle.
func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) GetAccount(cardholderID string) (*models.Account, error) {
	var account models.Account
	err := s.db.QueryRow(`
		SELECT id, cardholder_id, account_number, balance, credit_balance, status, created_at, updated_at
		FROM accounts
		WHERE cardholder_id = ?`, cardholderID).
		Scan(&account.ID, &account.CardholderID, &account.AccountNumber,
			&account.Balance, &account.CreditBalance, &account.Status,
			&account.CreatedAt, &account.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (s *SQLStore) ListAccounts() ([]models.Account, error) {
	rows, err := s.db.Query(`
		SELECT id, cardholder_id, account_number, balance, credit_balance, status, created_at, updated_at
		FROM accounts
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := []models.Account{}
	for rows.Next() {
		var account models.Account
		if err := rows.Scan(&account.ID, &account.CardholderID, &account.AccountNumber,
			&account.Balance, &account.CreditBalance, &account.Status,
			&account.CreatedAt, &account.UpdatedAt); err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	return accounts, rows.Err()
}

func (s *SQLStore) CreateAccount(cardholderID string, creditBalance int64, initialLog *models.CreditLog) (*models.Account, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	now := time.Now()
	accountNumber := newAccountNumber()

	result, err := tx.Exec(`
		INSERT INTO accounts (cardholder_id, account_number, balance, credit_balance, status, created_at, updated_at)
		VALUES (?, ?, 0, ?, ?, ?, ?)`,
		cardholderID, accountNumber, creditBalance, models.StatusActive, now, now)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	if initialLog != nil {
		if err := insertCreditLog(tx, *initialLog); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &models.Account{
		ID:            id,
		CardholderID:  cardholderID,
		AccountNumber: accountNumber,
		Balance:       0,
		CreditBalance: creditBalance,
		Status:        models.StatusActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

func (s *SQLStore) SaveBalance(cardholderID string, newBalance int64, log models.CreditLog) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := updateBalance(tx, cardholderID, newBalance); err != nil {
		return err
	}
	if err := insertCreditLog(tx, log); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *SQLStore) UpdateStatus(cardholderID, status string) error {
	result, err := s.db.Exec(`
		UPDATE accounts SET status = ?, updated_at = ? WHERE cardholder_id = ?`,
		status, time.Now(), cardholderID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLStore) ListCreditLogs(cardholderID string) ([]models.CreditLog, error) {
	rows, err := s.db.Query(`
		SELECT id, cardholder_id, credit_amount, type, adjusted_at, created_at
		FROM credit_logs
		WHERE cardholder_id = ?
		ORDER BY created_at DESC, id DESC`, cardholderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCreditLogs(rows)
}

func (s *SQLStore) ListRecentCreditLogs(limit int) ([]models.CreditLog, error) {
	rows, err := s.db.Query(`
		SELECT id, cardholder_id, credit_amount, type, adjusted_at, created_at
		FROM credit_logs
		ORDER BY created_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCreditLogs(rows)
}

func (s *SQLStore) RecordPayment(cardholderID string, newBalance int64, payment models.Payment, log models.CreditLog) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := updateBalance(tx, cardholderID, newBalance); err != nil {
		return err
	}

	if _, err := tx.Exec(`
		INSERT INTO payments (cardholder_id, pay_id, amount, paid_at, settled, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		payment.CardholderID, payment.PayID, payment.Amount, payment.PaidAt, payment.Settled, time.Now()); err != nil {
		return err
	}

	if err := insertCreditLog(tx, log); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *SQLStore) ListPayments(cardholderID string) ([]models.Payment, error) {
	rows, err := s.db.Query(`
		SELECT id, cardholder_id, pay_id, amount, paid_at, settled, created_at
		FROM payments
		WHERE cardholder_id = ?
		ORDER BY id`, cardholderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPayments(rows)
}

func (s *SQLStore) ListAllPayments() ([]models.Payment, error) {
	rows, err := s.db.Query(`
		SELECT id, cardholder_id, pay_id, amount, paid_at, settled, created_at
		FROM payments
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPayments(rows)
}

func updateBalance(tx *sql.Tx, cardholderID string, newBalance int64) error {
	result, err := tx.Exec(`
		UPDATE accounts SET credit_balance = ?, updated_at = ? WHERE cardholder_id = ?`,
		newBalance, time.Now(), cardholderID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func insertCreditLog(tx *sql.Tx, log models.CreditLog) error {
	_, err := tx.Exec(`
		INSERT INTO credit_logs (cardholder_id, credit_amount, type, adjusted_at, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		log.CardholderID, log.CreditAmount, log.Type, log.AdjustedAt, time.Now())
	return err
}

func scanCreditLogs(rows *sql.Rows) ([]models.CreditLog, error) {
	logs := []models.CreditLog{}
	for rows.Next() {
		var log models.CreditLog
		if err := rows.Scan(&log.ID, &log.CardholderID, &log.CreditAmount,
			&log.Type, &log.AdjustedAt, &log.CreatedAt); err != nil {
			return nil, err
		}
		logs = append(logs, log)
	}
	return logs, rows.Err()
}

func scanPayments(rows *sql.Rows) ([]models.Payment, error) {
	payments := []models.Payment{}
	for rows.Next() {
		var payment models.Payment
		if err := rows.Scan(&payment.ID, &payment.CardholderID, &payment.PayID,
			&payment.Amount, &payment.PaidAt, &payment.Settled, &payment.CreatedAt); err != nil {
			return nil, err
		}
		payments = append(payments, payment)
	}
	return payments, rows.Err()
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
