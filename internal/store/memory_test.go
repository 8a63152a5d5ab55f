package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ravandpay/creditmock/internal/models"
)

func TestMemoryStore_MatchesContract(t *testing.T) {
	s := NewMemoryStore()

	t.Run("get before create", func(t *testing.T) {
		_, err := s.GetAccount("c1")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("create applies defaults once", func(t *testing.T) {
		account, err := s.CreateAccount("c1", 100, &models.CreditLog{
			CardholderID: "c1", CreditAmount: 100, Type: models.TypeCredit, AdjustedAt: "1404/01/01 09:00:00",
		})
		assert.NoError(t, err)
		assert.Regexp(t, `^1013\d{14}$`, account.AccountNumber)
		assert.Equal(t, models.StatusActive, account.Status)

		again, err := s.GetAccount("c1")
		assert.NoError(t, err)
		assert.Equal(t, account.AccountNumber, again.AccountNumber)
	})

	t.Run("duplicate cardholder", func(t *testing.T) {
		_, err := s.CreateAccount("c1", 10, nil)
		assert.ErrorIs(t, err, ErrDuplicate)
	})

	t.Run("save balance appends log", func(t *testing.T) {
		err := s.SaveBalance("c1", 70, models.CreditLog{
			CardholderID: "c1", CreditAmount: 30, Type: models.TypeDebit, AdjustedAt: "1404/01/01 09:01:00",
		})
		assert.NoError(t, err)

		account, _ := s.GetAccount("c1")
		assert.Equal(t, int64(70), account.CreditBalance)

		logs, err := s.ListCreditLogs("c1")
		assert.NoError(t, err)
		assert.Len(t, logs, 2)
		// newest first
		assert.Equal(t, models.TypeDebit, logs[0].Type)
		assert.Equal(t, models.TypeCredit, logs[1].Type)
	})

	t.Run("recent logs honor the cap", func(t *testing.T) {
		logs, err := s.ListRecentCreditLogs(1)
		assert.NoError(t, err)
		assert.Len(t, logs, 1)
		assert.Equal(t, models.TypeDebit, logs[0].Type)
	})

	t.Run("list accounts in creation order", func(t *testing.T) {
		for _, id := range []string{"c3", "c2", "c4"} {
			_, err := s.CreateAccount(id, 10, nil)
			assert.NoError(t, err)
		}

		accounts, err := s.ListAccounts()
		assert.NoError(t, err)

		ids := make([]string, 0, len(accounts))
		for _, account := range accounts {
			ids = append(ids, account.CardholderID)
		}
		assert.Equal(t, []string{"c1", "c3", "c2", "c4"}, ids)
	})

	t.Run("returned accounts are copies", func(t *testing.T) {
		account, _ := s.GetAccount("c1")
		account.CreditBalance = 9999

		fresh, _ := s.GetAccount("c1")
		assert.Equal(t, int64(70), fresh.CreditBalance)
	})
}
