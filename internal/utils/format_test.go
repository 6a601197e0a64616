package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatDebt(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		expected string
	}{
		{name: "Exact millions", amount: "2000000", expected: "2.0000"},
		{name: "Fractional millions", amount: "1234567", expected: "1.2346"},
		{name: "Below one million", amount: "50000", expected: "0.0500"},
		{name: "Zero", amount: "0", expected: "0.0000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatDebt(decimal.RequireFromString(tt.amount))
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestFormatRatio(t *testing.T) {
	assert.Equal(t, "0.5000", FormatRatio(decimal.RequireFromString("0.5")))
	assert.Equal(t, "0.9877", FormatRatio(decimal.RequireFromString("0.98765")))
	assert.Equal(t, "1.0000", FormatRatio(decimal.NewFromInt(1)))
}

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		shouldError bool
	}{
		{name: "Plain decimal", input: "0.98765", shouldError: false},
		{name: "Exponent inside range", input: "2e6", shouldError: false},
		{name: "Smallest allowed exponent", input: "1e-64", shouldError: false},
		{name: "Exponent below range", input: "1e-200000000", shouldError: true},
		{name: "Exponent above range", input: "1e65", shouldError: true},
		{name: "Not a number", input: "n/a", shouldError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDecimal(tt.input)
			if tt.shouldError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
