package numerals

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToNumber(t *testing.T) {
	t.Run("native numbers pass through", func(t *testing.T) {
		tests := []struct {
			name string
			in   any
			want int64
		}{
			{"int", 42, 42},
			{"int64", int64(-7), -7},
			{"json float", float64(100), 100},
			{"json.Number", json.Number("2500"), 2500},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				got, ok := ToNumber(tt.in)
				assert.True(t, ok)
				assert.Equal(t, tt.want, got)
			})
		}
	})

	t.Run("digit script folding", func(t *testing.T) {
		tests := []struct {
			name string
			in   string
			want int64
		}{
			{"persian digits", "۱۰۰", 100},
			{"arabic-indic digits", "٢٥٠", 250},
			{"mixed scripts", "۱٢3", 123},
			{"ascii digits", "5000", 5000},
			{"stray characters stripped", "۱,۵۰۰ ریال", 1500},
			{"negative", "-۵", -5},
			{"zero parses", "۰", 0},
			{"trailing minus stripped", "100-", 100},
			{"trailing minus after persian digits", "۱۰۰-", 100},
			{"minus in the middle stripped", "12-3", 123},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				got, ok := ToNumber(tt.in)
				assert.True(t, ok)
				assert.Equal(t, tt.want, got)
			})
		}
	})

	t.Run("sentinel cases", func(t *testing.T) {
		tests := []struct {
			name string
			in   any
		}{
			{"empty string", ""},
			{"bare minus", "-"},
			{"no digits at all", "abc"},
			{"nil", nil},
			{"bool", true},
			{"object", map[string]any{"amount": 10}},
			{"float above int64 range", float64(1e19)},
			{"float below int64 range", float64(-1e19)},
			{"NaN", math.NaN()},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, ok := ToNumber(tt.in)
				assert.False(t, ok)
			})
		}
	})
}
