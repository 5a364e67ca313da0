package models

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("invalid amount")

const minorDigits = 2

var (
	maxMinor = decimal.NewFromInt(math.MaxInt64)
	minMinor = decimal.NewFromInt(math.MinInt64)
)

// ToMinor converts a wire amount into cents. Amounts with more than two
// decimals are rejected rather than rounded, as are amounts whose cents do
// not fit in an int64.
func ToMinor(amount float64) (int64, error) {
	d := decimal.NewFromFloat(amount)
	if !d.Equal(d.Round(minorDigits)) {
		return 0, fmt.Errorf("%w: supports up to %d decimals", ErrInvalidAmount, minorDigits)
	}

	minor := d.Shift(minorDigits)
	if minor.GreaterThan(maxMinor) || minor.LessThan(minMinor) {
		return 0, fmt.Errorf("%w: out of range", ErrInvalidAmount)
	}

	return minor.IntPart(), nil
}

// FromMinor converts cents back into the wire representation.
func FromMinor(minor int64) float64 {
	return decimal.New(minor, -minorDigits).InexactFloat64()
}

// ParseAmount parses user input such as "100" or "12.50".
func ParseAmount(s string) (float64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	return d.InexactFloat64(), nil
}

// TotalBalance sums the balances of accounts without accumulating float error.
func TotalBalance(accounts []Account) float64 {
	total := decimal.Zero
	for _, a := range accounts {
		total = total.Add(decimal.NewFromFloat(a.Balance))
	}

	return total.InexactFloat64()
}
