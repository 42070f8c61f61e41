// Package amount converts between base units and decimal coin amounts.
package amount

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// Decimals is the number of fractional digits of one coin.
	Decimals = 8
	// UnitsPerCoin is the number of base units in one coin.
	UnitsPerCoin uint64 = 100_000_000
)

var (
	ErrEmpty    = errors.New("amount is empty")
	ErrNegative = errors.New("amount is negative")
	ErrOverflow = errors.New("amount overflows base units")
)

var maxUnits = decimal.NewFromBigInt(new(big.Int).SetUint64(^uint64(0)), 0)

// Format renders base units with exactly eight fractional digits.
func Format(units uint64) string {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(units), -Decimals).StringFixed(Decimals)
}

// FormatWithCurrency appends the currency symbol to the formatted amount.
func FormatWithCurrency(units uint64, currency string) string {
	return Format(units) + " " + currency
}

// Parse converts a decimal coin amount into base units. Digits beyond the
// eighth fractional place are truncated.
func Parse(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrEmpty
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", s, err)
	}
	if d.IsNegative() {
		return 0, ErrNegative
	}
	units := d.Shift(Decimals).Truncate(0)
	if units.GreaterThan(maxUnits) {
		return 0, ErrOverflow
	}
	return units.BigInt().Uint64(), nil
}

// ParseUnits parses an integer amount of base units.
func ParseUnits(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrEmpty
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("parse base units %q: %w", s, err)
	}
	if d.IsNegative() {
		return 0, ErrNegative
	}
	if !d.Equal(d.Truncate(0)) {
		return 0, fmt.Errorf("base units %q must be an integer", s)
	}
	if d.GreaterThan(maxUnits) {
		return 0, ErrOverflow
	}
	return d.BigInt().Uint64(), nil
}
