package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ravandpay/creditmock/internal/models"
	"github.com/ravandpay/creditmock/internal/store"
)

func TestCreditService_Register(t *testing.T) {
	t.Run("persian digit amount", func(t *testing.T) {
		svc := NewCreditService(store.NewMemoryStore())

		balance, err := svc.Register("c1", "۱۰۰")
		require.NoError(t, err)
		assert.Equal(t, int64(100), balance)

		logs, err := svc.CreditHistory("c1")
		require.NoError(t, err)
		require.Len(t, logs, 1)
		assert.Equal(t, models.TypeCredit, logs[0].Type)
		assert.Equal(t, int64(100), logs[0].CreditAmount)
	})

	t.Run("bad amount degrades to zero with no log", func(t *testing.T) {
		for _, raw := range []any{"garbage", "", nil, -50, "۰"} {
			svc := NewCreditService(store.NewMemoryStore())
			balance, err := svc.Register("c1", raw)
			require.NoError(t, err, "amount %v", raw)
			assert.Equal(t, int64(0), balance, "amount %v", raw)

			logs, err := svc.CreditHistory("c1")
			require.NoError(t, err)
			assert.Empty(t, logs, "amount %v", raw)
		}
	})

	t.Run("duplicate registration leaves the first untouched", func(t *testing.T) {
		st := store.NewMemoryStore()
		svc := NewCreditService(st)

		_, err := svc.Register("c1", 100)
		require.NoError(t, err)

		_, err = svc.Register("c1", 500)
		assert.ErrorIs(t, err, ErrAlreadyRegistered)

		account, err := st.GetAccount("c1")
		require.NoError(t, err)
		assert.Equal(t, int64(100), account.CreditBalance)

		logs, _ := svc.CreditHistory("c1")
		assert.Len(t, logs, 1)
	})
}

func TestCreditService_Adjust(t *testing.T) {
	newAccount := func(t *testing.T, opening int64) (*CreditService, *store.MemoryStore) {
		t.Helper()
		st := store.NewMemoryStore()
		svc := NewCreditService(st)
		_, err := svc.Register("c1", opening)
		require.NoError(t, err)
		return svc, st
	}

	t.Run("balance equals the signed sum of adjustments", func(t *testing.T) {
		svc, _ := newAccount(t, 100)

		steps := []struct {
			amount any
			typ    string
			want   int64
		}{
			{50, models.TypeCredit, 150},
			{"۳۰", models.TypeDebit, 120},
			{200, models.TypeDebit, -80}, // no floor on plain adjustments
			{100, models.TypeCredit, 20},
		}
		for _, step := range steps {
			balance, err := svc.Adjust("c1", step.amount, step.typ)
			require.NoError(t, err)
			assert.Equal(t, step.want, balance)
		}

		// one opening log plus one per successful adjustment
		logs, err := svc.CreditHistory("c1")
		require.NoError(t, err)
		assert.Len(t, logs, 5)
	})

	t.Run("unknown cardholder", func(t *testing.T) {
		svc := NewCreditService(store.NewMemoryStore())
		_, err := svc.Adjust("ghost", 10, models.TypeCredit)
		assert.ErrorIs(t, err, ErrAccountNotFound)
	})

	t.Run("invalid amount is rejected outright", func(t *testing.T) {
		svc, st := newAccount(t, 100)

		for _, raw := range []any{0, -5, "abc", "", nil} {
			_, err := svc.Adjust("c1", raw, models.TypeCredit)
			assert.ErrorIs(t, err, ErrInvalidAmount, "amount %v", raw)
		}

		account, _ := st.GetAccount("c1")
		assert.Equal(t, int64(100), account.CreditBalance)
	})

	t.Run("invalid type leaves balance and logs unchanged", func(t *testing.T) {
		svc, st := newAccount(t, 100)

		_, err := svc.Adjust("c1", 10, "TRANSFER")
		assert.ErrorIs(t, err, ErrInvalidType)

		account, _ := st.GetAccount("c1")
		assert.Equal(t, int64(100), account.CreditBalance)

		logs, _ := svc.CreditHistory("c1")
		assert.Len(t, logs, 1)
	})
}

func TestCreditService_BatchAdjust(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewCreditService(st)
	_, err := svc.Register("c1", 100)
	require.NoError(t, err)
	_, err = svc.Register("c2", 50)
	require.NoError(t, err)

	items := []map[string]any{
		{"cardholder_id": "c1", "credit_amount": float64(40), "type": "CREDIT", "ref": "a"},
		{"cardholder_id": "ghost", "credit_amount": float64(10), "type": "CREDIT"},
		{"cardholder_id": "c2", "credit_amount": "bogus", "type": "DEBIT"},
		{"cardholder_id": "c2", "credit_amount": float64(20), "type": "TRANSFER"},
		{"cardholder_id": "c2", "credit_amount": "۲۵", "type": "DEBIT"},
	}

	results := svc.BatchAdjust(items)
	require.Len(t, results, len(items))

	t.Run("successful item", func(t *testing.T) {
		assert.Equal(t, false, results[0]["has_error"])
		assert.Nil(t, results[0]["error"])
		assert.Equal(t, int64(140), results[0]["credit_balance"])
		// passthrough field survives
		assert.Equal(t, "a", results[0]["ref"])
	})

	t.Run("failing items carry their own message", func(t *testing.T) {
		wantMessages := map[int]string{
			1: "User not found",
			2: "Invalid amount",
			3: "Invalid type",
		}
		for i, want := range wantMessages {
			assert.Equal(t, true, results[i]["has_error"], "item %d", i)
			assert.Nil(t, results[i]["credit_balance"], "item %d", i)
			errField := results[i]["error"].(map[string]any)
			assert.Equal(t, want, errField["message"], "item %d", i)
		}
	})

	t.Run("later items are unaffected by earlier failures", func(t *testing.T) {
		assert.Equal(t, false, results[4]["has_error"])
		assert.Equal(t, int64(25), results[4]["credit_balance"])
	})

	t.Run("earlier successes are not rolled back", func(t *testing.T) {
		account, err := st.GetAccount("c1")
		require.NoError(t, err)
		assert.Equal(t, int64(140), account.CreditBalance)
	})

	t.Run("empty batch yields an empty result list", func(t *testing.T) {
		results := svc.BatchAdjust(nil)
		assert.NotNil(t, results)
		assert.Empty(t, results)
	})
}

func TestCreditService_SimulatePayment(t *testing.T) {
	newAccount := func(t *testing.T, opening int64) (*CreditService, *store.MemoryStore) {
		t.Helper()
		st := store.NewMemoryStore()
		svc := NewCreditService(st)
		_, err := svc.Register("c1", opening)
		require.NoError(t, err)
		return svc, st
	}

	t.Run("draw-down", func(t *testing.T) {
		svc, st := newAccount(t, 100)

		balance, err := svc.SimulatePayment("c1", 40)
		require.NoError(t, err)
		assert.Equal(t, int64(60), balance)

		payments, _, err := svc.Payments("c1")
		require.NoError(t, err)
		require.Len(t, payments, 1)
		assert.Equal(t, int64(40), payments[0].Amount)
		assert.NotEmpty(t, payments[0].PayID)
		assert.False(t, payments[0].Settled)

		logs, _ := svc.CreditHistory("c1")
		require.Len(t, logs, 2)
		assert.Equal(t, models.TypeDebit, logs[0].Type)

		account, _ := st.GetAccount("c1")
		assert.Equal(t, int64(60), account.CreditBalance)
	})

	t.Run("insufficient credit leaves no trace", func(t *testing.T) {
		svc, st := newAccount(t, 70)

		_, err := svc.SimulatePayment("c1", 80)
		assert.ErrorIs(t, err, ErrInsufficientCredit)

		account, _ := st.GetAccount("c1")
		assert.Equal(t, int64(70), account.CreditBalance)

		payments, _, _ := svc.Payments("c1")
		assert.Empty(t, payments)

		logs, _ := svc.CreditHistory("c1")
		assert.Len(t, logs, 1) // only the opening credit
	})

	t.Run("unknown cardholder and bad amounts", func(t *testing.T) {
		svc, _ := newAccount(t, 100)

		_, err := svc.SimulatePayment("ghost", 10)
		assert.ErrorIs(t, err, ErrAccountNotFound)

		for _, raw := range []any{0, -1, "nope"} {
			_, err := svc.SimulatePayment("c1", raw)
			assert.ErrorIs(t, err, ErrInvalidAmount, "amount %v", raw)
		}
	})
}

func TestCreditService_UpdateStatus(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewCreditService(st)
	_, err := svc.Register("c1", 10)
	require.NoError(t, err)

	t.Run("toggle", func(t *testing.T) {
		status, err := svc.UpdateStatus("c1", models.StatusInactive)
		require.NoError(t, err)
		assert.Equal(t, models.StatusInactive, status)

		account, _ := st.GetAccount("c1")
		assert.Equal(t, models.StatusInactive, account.Status)
	})

	t.Run("invalid status is rejected", func(t *testing.T) {
		_, err := svc.UpdateStatus("c1", "SUSPENDED")
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("unknown cardholder", func(t *testing.T) {
		_, err := svc.UpdateStatus("ghost", models.StatusActive)
		assert.ErrorIs(t, err, ErrAccountNotFound)
	})
}

// Mirrors the documented end-to-end scenario: register with non-Latin
// digits, debit, then overdraw via payment.
func TestCreditService_LedgerScenario(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewCreditService(st)

	balance, err := svc.Register("c1", "۱۰۰")
	require.NoError(t, err)
	assert.Equal(t, int64(100), balance)

	balance, err = svc.Adjust("c1", 30, models.TypeDebit)
	require.NoError(t, err)
	assert.Equal(t, int64(70), balance)

	_, err = svc.SimulatePayment("c1", 80)
	assert.ErrorIs(t, err, ErrInsufficientCredit)

	account, err := st.GetAccount("c1")
	require.NoError(t, err)
	assert.Equal(t, int64(70), account.CreditBalance)
}

func TestCreditService_Payments_MissingAccountNumber(t *testing.T) {
	svc := NewCreditService(store.NewMemoryStore())

	payments, accountNumber, err := svc.Payments("ghost")
	require.NoError(t, err)
	assert.Empty(t, payments)
	assert.Equal(t, "N/A", accountNumber)
}
