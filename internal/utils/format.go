package utils

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// maxExponent bounds the decimal exponent; comparisons rescale to the
// smaller exponent, so larger values make them arbitrarily slow.
const maxExponent = 64

// debtUnit converts smallest-denomination debt into millions for display.
var debtUnit = decimal.NewFromInt(1000000)

// ParseDecimal parses s and rejects exponents outside ±maxExponent.
func ParseDecimal(s string) (decimal.Decimal, error) {
	value, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, err
	}
	if exp := value.Exponent(); exp > maxExponent || exp < -maxExponent {
		return decimal.Zero, fmt.Errorf("can't convert %s to decimal: exponent %d out of range", s, exp)
	}
	return value, nil
}

// FormatRatio renders a health factor with four decimal places.
func FormatRatio(value decimal.Decimal) string {
	return value.StringFixed(4)
}

// FormatDebt renders raw debt divided by one million with four decimal places.
func FormatDebt(amount decimal.Decimal) string {
	return amount.Div(debtUnit).StringFixed(4)
}
