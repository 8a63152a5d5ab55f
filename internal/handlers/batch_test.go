package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeBatch(t *testing.T) {
	t.Run("top-level array", func(t *testing.T) {
		items := normalizeBatch([]byte(`[{"cardholder_id":"c1","credit_amount":10,"type":"CREDIT"},{"cardholder_id":"c2"}]`))
		assert.Len(t, items, 2)
		assert.Equal(t, "c1", items[0]["cardholder_id"])
		assert.Equal(t, "c2", items[1]["cardholder_id"])
	})

	t.Run("single object with cardholder_id", func(t *testing.T) {
		items := normalizeBatch([]byte(`{"cardholder_id":"c1","credit_amount":10,"type":"CREDIT"}`))
		assert.Len(t, items, 1)
		assert.Equal(t, "c1", items[0]["cardholder_id"])
	})

	t.Run("wrapped credits field", func(t *testing.T) {
		items := normalizeBatch([]byte(`{"credits":[{"cardholder_id":"c1"},{"cardholder_id":"c2"}]}`))
		assert.Len(t, items, 2)
	})

	t.Run("single object wins over wrapped field", func(t *testing.T) {
		items := normalizeBatch([]byte(`{"cardholder_id":"c1","credits":[{"cardholder_id":"c2"},{"cardholder_id":"c3"}]}`))
		assert.Len(t, items, 1)
		assert.Equal(t, "c1", items[0]["cardholder_id"])
	})

	t.Run("json-encoded string", func(t *testing.T) {
		items := normalizeBatch([]byte(`"[{\"cardholder_id\":\"c1\"}]"`))
		assert.Len(t, items, 1)
		assert.Equal(t, "c1", items[0]["cardholder_id"])

		items = normalizeBatch([]byte(`"{\"credits\":[{\"cardholder_id\":\"c1\"}]}"`))
		assert.Len(t, items, 1)
	})

	t.Run("doubly encoded strings do not recurse", func(t *testing.T) {
		items := normalizeBatch([]byte(`"\"[{\\\"cardholder_id\\\":\\\"c1\\\"}]\""`))
		assert.Empty(t, items)
	})

	t.Run("non-object array elements keep their slots", func(t *testing.T) {
		items := normalizeBatch([]byte(`[{"cardholder_id":"c1"},42,"x"]`))
		assert.Len(t, items, 3)
		assert.Empty(t, items[1])
		assert.Empty(t, items[2])
	})

	t.Run("unrecognized bodies", func(t *testing.T) {
		for _, body := range []string{``, `null`, `42`, `{"something":"else"}`, `{"credits":"not-an-array"}`, `not json`} {
			items := normalizeBatch([]byte(body))
			assert.NotNil(t, items, "body %q", body)
			assert.Empty(t, items, "body %q", body)
		}
	})
}
