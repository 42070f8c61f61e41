// Package safe provides overflow checked arithmetic for base unit amounts.
package safe

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrOverflow  = errors.New("uint64 overflow")
	ErrUnderflow = errors.New("uint64 underflow")
)

// Add returns a+b or ErrOverflow.
func Add(a, b uint64) (uint64, error) {
	if a > math.MaxUint64-b {
		return 0, fmt.Errorf("%d + %d: %w", a, b, ErrOverflow)
	}
	return a + b, nil
}

// Sub returns a-b or ErrUnderflow when b is larger.
func Sub(a, b uint64) (uint64, error) {
	if b > a {
		return 0, fmt.Errorf("%d - %d: %w", a, b, ErrUnderflow)
	}
	return a - b, nil
}

// Sum adds value(item) over items, failing on the first overflow.
func Sum[T any](items []T, value func(T) uint64) (uint64, error) {
	var total uint64
	for _, item := range items {
		next, err := Add(total, value(item))
		if err != nil {
			return 0, err
		}
		total = next
	}
	return total, nil
}

// Uint16 narrows signed or unsigned integers to uint16 with range validation.
func Uint16[T ~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64](v T) (uint16, error) {
	if v < 0 || uint64(v) > math.MaxUint16 {
		return 0, fmt.Errorf("value %d out of uint16 range", v)
	}
	return uint16(v), nil
}
