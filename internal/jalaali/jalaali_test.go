package jalaali

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	t.Run("nowruz boundary", func(t *testing.T) {
		// 2025-03-21 is 1404/01/01.
		got := Format(time.Date(2025, 3, 21, 13, 5, 9, 0, time.UTC))
		assert.Equal(t, "1404/01/01 13:05:09", got)
	})

	t.Run("zero padding", func(t *testing.T) {
		// 2025-08-27 is 1404/06/05.
		got := Format(time.Date(2025, 8, 27, 0, 0, 0, 0, time.UTC))
		assert.Equal(t, "1404/06/05 00:00:00", got)
	})
}

func TestNow(t *testing.T) {
	got := Now()
	assert.Regexp(t, `^\d{4}/\d{2}/\d{2} \d{2}:\d{2}:\d{2}$`, got)
}
